package event

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/spacefold/core/logger"
	"github.com/dmitrymomot/spacefold/pkg/async"
)

// Subscriber binds listeners to a fixed set of publishers and removes them
// all at once with Off. A UI component typically owns one subscriber and
// calls Off on teardown (see Use).
//
// Example:
//
//	inc := event.NewPublisher[int]()
//	dec := event.NewPublisher[int]()
//
//	counter := event.NewSubscriber(event.Register(inc, dec))
//	if err := event.On(counter, inc, func(n int) { state += n }); err != nil {
//	    return err
//	}
//	defer counter.Off()
type Subscriber struct {
	id      uuid.UUID
	allowed map[uuid.UUID]struct{}
	ctx     context.Context
	onError func(context.Context, error)
	logger  *slog.Logger

	mu      sync.Mutex
	subs    []Subscription
	pending []*async.ExecFuture
}

// NewSubscriber creates a subscriber. Publishers passed through Register form
// its allow-list.
func NewSubscriber(opts ...SubscriberOption) *Subscriber {
	s := &Subscriber{
		id:      uuid.New(),
		allowed: make(map[uuid.UUID]struct{}),
		ctx:     context.Background(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ID returns the subscriber identity.
func (s *Subscriber) ID() uuid.UUID {
	return s.id
}

// Allows reports whether p is in the allow-list.
func (s *Subscriber) Allows(p Registrable) bool {
	if p == nil {
		return false
	}
	id := p.ID()
	if id == uuid.Nil {
		return false
	}
	_, ok := s.allowed[id]
	return ok
}

// Len returns the number of active subscriptions.
func (s *Subscriber) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Off removes every listener bound through this subscriber.
// Calling it on a subscriber with no active subscriptions does nothing.
// Asynchronous listeners that are already running are not interrupted.
func (s *Subscriber) Off() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}

	if len(subs) > 0 {
		s.logger.Debug("subscriber detached",
			logger.SubscriberID(s.id),
			logger.Count("subscriptions", len(subs)),
		)
	}
}

// On binds fn to p. It fails with ErrUnauthorizedPublisher when p was not
// registered on s. Each call adds an independent registration.
func On[T any](s *Subscriber, p *Publisher[T], fn Listener[T]) error {
	if fn == nil {
		return ErrNilListener
	}
	if p == nil || !s.Allows(p) {
		return ErrUnauthorizedPublisher
	}

	s.track(p.Subscribe(fn))
	return nil
}

// MustOn is On that panics on error.
func MustOn[T any](s *Subscriber, p *Publisher[T], fn Listener[T]) {
	if err := On(s, p, fn); err != nil {
		panic(err)
	}
}

// OnAsync binds an asynchronous listener to p. Each delivery starts fn on a
// new goroutine with the subscriber's context, so Send returns without
// waiting. Errors returned by fn are wrapped in *ListenerError and passed to
// the subscriber's error handler.
//
// Once the subscriber's context is done, deliveries are dropped and the
// context's own error is not reported.
func OnAsync[T any](s *Subscriber, p *Publisher[T], fn AsyncListener[T]) error {
	if fn == nil {
		return ErrNilListener
	}
	if p == nil || !s.Allows(p) {
		return ErrUnauthorizedPublisher
	}

	pubID, pubName := p.ID(), p.Name()
	report := func(err error) {
		if ctxErr := s.ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return
		}
		s.reportError(&ListenerError{
			PublisherID:   pubID,
			PublisherName: pubName,
			SubscriberID:  s.id,
			Err:           err,
		})
	}

	s.track(p.Subscribe(func(payload T) {
		if s.ctx.Err() != nil {
			return
		}
		s.trackFuture(async.Go[T](s.ctx, payload, fn, report))
	}))
	return nil
}

// Wait blocks until every asynchronous listener started so far has returned,
// or ctx is done. It returns ctx's error in the latter case. Listener errors
// go to the error handler, not to Wait.
func (s *Subscriber) Wait(ctx context.Context) error {
	s.mu.Lock()
	pending := slices.Clone(s.pending)
	s.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	if err := async.ExecAllContext(ctx, pending...); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

func (s *Subscriber) track(sub Subscription) {
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
}

func (s *Subscriber) trackFuture(f *async.ExecFuture) {
	s.mu.Lock()
	s.pending = slices.DeleteFunc(s.pending, (*async.ExecFuture).IsComplete)
	s.pending = append(s.pending, f)
	s.mu.Unlock()
}

func (s *Subscriber) reportError(err *ListenerError) {
	if s.onError != nil {
		s.onError(s.ctx, err)
		return
	}

	s.logger.ErrorContext(s.ctx, "async listener failed",
		logger.Error(err.Err),
		logger.PublisherID(err.PublisherID),
		logger.Publisher(err.PublisherName),
		logger.SubscriberID(err.SubscriberID),
	)
}
