package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spacefold/core/event"
	"github.com/dmitrymomot/spacefold/core/lifecycle"
	"github.com/dmitrymomot/spacefold/core/logger"
)

// recordingHost counts teardown registrations.
type recordingHost struct {
	seen     map[any]bool
	cleanups []func()
}

func (h *recordingHost) Once(key any, fn func()) {
	if h.seen == nil {
		h.seen = make(map[any]bool)
	}
	if h.seen[key] {
		return
	}
	h.seen[key] = true
	fn()
}

func (h *recordingHost) OnUnmount(fn func()) {
	h.cleanups = append(h.cleanups, fn)
}

func TestUse_RegistersOffOnce(t *testing.T) {
	t.Parallel()

	s := event.NewSubscriber()
	h := &recordingHost{}

	first := event.Use(h, s)
	second := event.Use(h, s)
	event.Use(h, s)

	assert.Same(t, s, first)
	assert.Same(t, first, second, "handle must be stable across calls")
	assert.Len(t, h.cleanups, 1)
}

func TestUse_DistinctSubscribersOnSameHost(t *testing.T) {
	t.Parallel()

	h := &recordingHost{}
	event.Use(h, event.NewSubscriber())
	event.Use(h, event.NewSubscriber())

	assert.Len(t, h.cleanups, 2)
}

func TestUse_UnmountDetaches(t *testing.T) {
	t.Parallel()

	inc := event.NewPublisher[int](event.WithPublisherLogger(logger.Discard()))
	dec := event.NewPublisher[int](event.WithPublisherLogger(logger.Discard()))
	counterSub := event.NewSubscriber(
		event.Register(inc, dec),
		event.WithSubscriberLogger(logger.Discard()),
	)

	state := 0
	c := lifecycle.New("counter", lifecycle.WithLogger(logger.Discard()))

	require.NoError(t, c.Mount(func(c *lifecycle.Component) {
		sub := event.Use(c, counterSub)
		event.MustOn(sub, inc, func(n int) { state += n })
		event.MustOn(sub, dec, func(n int) { state -= n })
	}))

	// Re-rendering must not register teardown again or add listeners.
	for range 3 {
		require.NoError(t, c.Render(func(c *lifecycle.Component) {
			event.Use(c, counterSub)
		}))
	}

	inc.Send(2)
	inc.Send(2)
	dec.Send(2)
	inc.Send(2)
	inc.Send(2)
	assert.Equal(t, 6, state)
	assert.Equal(t, 1, inc.Len())

	c.Unmount()

	inc.Send(100)
	assert.Equal(t, 6, state, "no delivery after unmount")
	assert.Zero(t, counterSub.Len())
	assert.Zero(t, inc.Len())
	assert.Zero(t, dec.Len())
}

func TestUse_UnauthorizedInsideComponent(t *testing.T) {
	t.Parallel()

	inc := event.NewPublisher[int]()
	stray := event.NewSignal()
	counterSub := event.NewSubscriber(event.Register(inc))

	c := lifecycle.New("app", lifecycle.WithLogger(logger.Discard()))
	defer c.Unmount()

	assert.PanicsWithError(t, event.ErrUnauthorizedPublisher.Error(), func() {
		_ = c.Mount(func(c *lifecycle.Component) {
			sub := event.Use(c, counterSub)
			event.MustOn(sub, stray, func(struct{}) {})
		})
	})
	assert.Zero(t, stray.Len())
}
