package event_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/spacefold/core/event"
)

func TestDecorate(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) event.Decorator[int] {
		return func(next event.Listener[int]) event.Listener[int] {
			return func(n int) {
				order = append(order, name)
				next(n)
			}
		}
	}

	fn := event.Decorate(func(int) { order = append(order, "listener") }, tag("outer"), tag("inner"))
	fn(1)

	assert.Equal(t, []string{"outer", "inner", "listener"}, order)
}

func TestDecorate_NoDecorators(t *testing.T) {
	t.Parallel()

	called := false
	fn := event.Decorate(func(int) { called = true })
	fn(0)
	assert.True(t, called)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("isolates a panicking listener", func(t *testing.T) {
		t.Parallel()

		p := event.NewPublisher[int]()
		var recovered any
		after := false

		p.Subscribe(event.Decorate(
			func(int) { panic("bad listener") },
			event.Recover[int](func(v any) { recovered = v }),
		))
		p.Subscribe(func(int) { after = true })

		assert.NotPanics(t, func() { p.Send(1) })
		assert.Equal(t, "bad listener", recovered)
		assert.True(t, after, "later listeners still receive the event")
	})

	t.Run("nil callback swallows", func(t *testing.T) {
		t.Parallel()

		fn := event.Decorate(func(int) { panic("x") }, event.Recover[int](nil))
		assert.NotPanics(t, func() { fn(1) })
	})

	t.Run("passes payload through", func(t *testing.T) {
		t.Parallel()

		got := 0
		fn := event.Decorate(func(n int) { got = n }, event.Recover[int](nil))
		fn(42)
		assert.Equal(t, 42, got)
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	log, buf := newBufferLogger(slog.LevelDebug)
	got := 0
	fn := event.Decorate(func(n int) { got = n }, event.Logging[int](log, "counter"))

	fn(3)

	assert.Equal(t, 3, got)
	assert.Contains(t, buf.String(), "listener invoked")
	assert.Contains(t, buf.String(), "component=counter")
}
