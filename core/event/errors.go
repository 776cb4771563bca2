package event

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnauthorizedPublisher is returned by On when the publisher is not in
	// the subscriber's allow-list. It signals a wiring bug: fix the Register
	// list rather than handling it at runtime.
	ErrUnauthorizedPublisher = errors.New("this publisher is not registered on your subscriber")

	// ErrNilListener is returned when On or OnAsync receives a nil callback.
	ErrNilListener = errors.New("listener must not be nil")
)

// ListenerError carries an error returned by an asynchronous listener,
// together with the publisher and subscriber it was bound through.
type ListenerError struct {
	PublisherID   uuid.UUID
	PublisherName string
	SubscriberID  uuid.UUID
	Err           error
}

func (e *ListenerError) Error() string {
	pub := e.PublisherID.String()
	if e.PublisherName != "" {
		pub = e.PublisherName
	}
	return fmt.Sprintf("async listener on publisher %s (subscriber %s): %v", pub, e.SubscriberID, e.Err)
}

func (e *ListenerError) Unwrap() error {
	return e.Err
}
