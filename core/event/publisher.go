package event

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/spacefold/core/logger"
)

// Publisher is a typed event source. Listeners are called synchronously,
// in registration order, on the goroutine that calls Send.
//
// Example:
//
//	inc := event.NewPublisher[int](event.WithName("inc"))
//	sub := inc.Subscribe(func(n int) { total += n })
//	defer sub.Unsubscribe()
//
//	inc.Send(2)
type Publisher[T any] struct {
	id     uuid.UUID
	name   string
	logger *slog.Logger

	mu        sync.RWMutex
	listeners []*registration[T]
}

type registration[T any] struct {
	fn Listener[T]
}

// NewPublisher creates a publisher with a fresh identity and no listeners.
func NewPublisher[T any](opts ...PublisherOption) *Publisher[T] {
	o := publisherOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Publisher[T]{
		id:     uuid.New(),
		name:   o.name,
		logger: o.logger,
	}
}

// NewSignal creates a publisher for events that carry no payload.
//
// Example:
//
//	reset := event.NewSignal(event.WithName("reset"))
//	reset.Send(struct{}{})
func NewSignal(opts ...PublisherOption) *Publisher[struct{}] {
	return NewPublisher[struct{}](opts...)
}

// ID returns the publisher identity. It is stable for the publisher's lifetime.
// A nil publisher reports uuid.Nil.
func (p *Publisher[T]) ID() uuid.UUID {
	if p == nil {
		return uuid.Nil
	}
	return p.id
}

// Name returns the label set with WithName, or an empty string.
func (p *Publisher[T]) Name() string {
	return p.name
}

// Len returns the number of registered listeners.
func (p *Publisher[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.listeners)
}

// Subscribe appends fn to the listener list and returns the handle that removes it.
// Every call creates a separate registration, even for the same function.
// A nil fn registers nothing and returns a no-op Subscription.
func (p *Publisher[T]) Subscribe(fn Listener[T]) Subscription {
	if fn == nil {
		return noopSubscription{}
	}

	r := &registration[T]{fn: fn}

	p.mu.Lock()
	p.listeners = append(p.listeners, r)
	p.mu.Unlock()

	return &subscription{cancel: func() { p.remove(r) }}
}

// Send calls every listener registered at the moment Send begins, in
// registration order. Listeners added or removed during the dispatch take
// effect from the next Send.
//
// Panics are not recovered: a panicking listener stops delivery to the
// listeners after it and the panic reaches the caller of Send.
func (p *Publisher[T]) Send(payload T) {
	p.mu.RLock()
	snapshot := slices.Clone(p.listeners)
	p.mu.RUnlock()

	p.logger.Debug("event dispatched",
		logger.PublisherID(p.id),
		logger.Publisher(p.name),
		logger.Listeners(len(snapshot)),
	)

	for _, r := range snapshot {
		r.fn(payload)
	}
}

func (p *Publisher[T]) remove(r *registration[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := slices.Index(p.listeners, r); i >= 0 {
		p.listeners = slices.Delete(p.listeners, i, i+1)
	}
}
