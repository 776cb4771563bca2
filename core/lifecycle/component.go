package lifecycle

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/spacefold/core/logger"
)

type state int

const (
	idle state = iota
	mounted
	unmounted
)

// Component is a minimal in-process stand-in for a UI component lifecycle:
// a setup run on mount, a body that may re-run while mounted, and cleanups
// that run once on unmount. It implements event.Host.
type Component struct {
	name   string
	logger *slog.Logger

	mu       sync.Mutex
	state    state
	renders  int
	memo     map[any]any
	seen     map[any]struct{}
	cleanups []func()
}

// Option configures a Component.
type Option func(*Component)

// WithLogger sets the component logger. If not set, slog.Default() is used.
func WithLogger(log *slog.Logger) Option {
	return func(c *Component) {
		if log != nil {
			c.logger = log
		}
	}
}

// New creates an unmounted component.
func New(name string, opts ...Option) *Component {
	c := &Component{
		name:   name,
		logger: slog.Default(),
		memo:   make(map[any]any),
		seen:   make(map[any]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the component name.
func (c *Component) Name() string {
	return c.name
}

// Mounted reports whether the component is currently mounted.
func (c *Component) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == mounted
}

// Renders returns how many times the body ran, the mount included.
func (c *Component) Renders() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renders
}

// Mount marks the component mounted and runs setup with it.
// A component mounts once; it cannot be re-mounted after Unmount.
func (c *Component) Mount(setup func(*Component)) error {
	c.mu.Lock()
	switch c.state {
	case mounted:
		c.mu.Unlock()
		return ErrAlreadyMounted
	case unmounted:
		c.mu.Unlock()
		return ErrUnmounted
	}
	c.state = mounted
	c.renders++
	c.mu.Unlock()

	c.logger.Debug("component mounted", logger.Component(c.name))

	if setup != nil {
		setup(c)
	}
	return nil
}

// Render runs fn again while the component is mounted, the way a UI
// framework re-renders a component body. Values obtained through Constant
// and Once keys survive across renders.
func (c *Component) Render(fn func(*Component)) error {
	c.mu.Lock()
	switch c.state {
	case idle:
		c.mu.Unlock()
		return ErrNotMounted
	case unmounted:
		c.mu.Unlock()
		return ErrUnmounted
	}
	c.renders++
	c.mu.Unlock()

	if fn != nil {
		fn(c)
	}
	return nil
}

// OnUnmount registers fn to run on Unmount. Cleanups run in reverse
// registration order. Registering on an unmounted component runs fn now.
func (c *Component) OnUnmount(fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.state == unmounted {
		c.mu.Unlock()
		fn()
		return
	}
	c.cleanups = append(c.cleanups, fn)
	c.mu.Unlock()
}

// Once runs fn the first time key is passed on this component.
func (c *Component) Once(key any, fn func()) {
	c.mu.Lock()
	if _, ok := c.seen[key]; ok {
		c.mu.Unlock()
		return
	}
	c.seen[key] = struct{}{}
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Unmount runs the registered cleanups exactly once. Later calls do nothing.
func (c *Component) Unmount() {
	c.mu.Lock()
	if c.state == unmounted {
		c.mu.Unlock()
		return
	}
	c.state = unmounted
	cleanups := c.cleanups
	c.cleanups = nil
	c.mu.Unlock()

	for _, fn := range slices.Backward(cleanups) {
		fn()
	}

	c.logger.Debug("component unmounted",
		logger.Component(c.name),
		logger.Count("cleanups", len(cleanups)),
	)
}

// Constant returns the value stored under key on c, calling init to create
// it on first use. The same key must always be used with the same T.
//
// Example:
//
//	c.Render(func(c *lifecycle.Component) {
//	    sub := lifecycle.Constant(c, "sub", func() *event.Subscriber {
//	        return event.NewSubscriber(event.Register(inc))
//	    })
//	})
func Constant[T any](c *Component, key any, init func() T) T {
	c.mu.Lock()
	if v, ok := c.memo[key]; ok {
		c.mu.Unlock()
		return v.(T)
	}
	c.mu.Unlock()

	v := init()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.memo[key]; ok {
		return existing.(T)
	}
	c.memo[key] = v
	return v
}
