package event

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Listener receives payloads sent to a publisher.
type Listener[T any] func(T)

// AsyncListener is a listener body that runs on its own goroutine.
// A returned error is reported to the subscriber's error handler.
type AsyncListener[T any] func(context.Context, T) error

// Registrable is anything that carries a publisher identity.
// Every *Publisher[T] satisfies it regardless of T.
type Registrable interface {
	ID() uuid.UUID
}

// Subscription cancels one listener registration.
type Subscription interface {
	// Unsubscribe removes the registration. Calling it again is a no-op.
	Unsubscribe()
}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}
