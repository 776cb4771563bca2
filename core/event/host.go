package event

import "github.com/google/uuid"

// Host is the lifecycle of the component that owns a subscriber.
// lifecycle.Component implements it.
type Host interface {
	// Once runs fn the first time key is seen by this host.
	Once(key any, fn func())
	// OnUnmount registers fn to run when the host is torn down.
	OnUnmount(fn func())
}

type useKey struct {
	subscriber uuid.UUID
}

// Use ties s to the host's teardown: s.Off runs when the host unmounts.
// Calling Use again on the same host (for example on every render) does not
// register Off a second time. Use returns s for chaining.
//
// Example:
//
//	c.Mount(func(c *lifecycle.Component) {
//	    counter := event.Use(c, counterSub)
//	    event.MustOn(counter, inc, func(n int) { state += n })
//	})
func Use(h Host, s *Subscriber) *Subscriber {
	h.Once(useKey{subscriber: s.id}, func() {
		h.OnUnmount(s.Off)
	})
	return s
}
