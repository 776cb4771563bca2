package broadcast

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/spacefold/core/logger"
)

// Subject pairs a producer-facing sink with a consumer-facing source.
// T is the value type and E the payload type of the terminal event.
//
// The subject starts active. The first Error or Complete moves it to a
// terminal state for good: current observers get the terminal event and are
// dropped, and every later subscriber receives the same terminal event, with
// the same payload, immediately instead of being registered.
type Subject[T, E any] struct {
	Sink   Sink[T, E]
	Source Source[T, E]

	core *subject[T, E]
}

type kind int

const (
	kindError kind = iota + 1
	kindComplete
)

type terminal[E any] struct {
	kind    kind
	payload E
}

type entry[T, E any] struct {
	obs Funcs[T, E]
}

type subject[T, E any] struct {
	logger *slog.Logger

	mu        sync.Mutex
	observers []*entry[T, E]
	done      *terminal[E]
}

// Option configures a subject.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger. If not set, slog.Default() is used.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// NewSubject creates an active subject.
func NewSubject[T, E any](opts ...Option) Subject[T, E] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &subject[T, E]{logger: o.logger}
	return Subject[T, E]{Sink: s, Source: s, core: s}
}

// Done reports whether the subject reached a terminal state.
func (s Subject[T, E]) Done() bool {
	return s.core != nil && s.core.terminated() != nil
}

// Failed reports whether the subject ended with Error.
func (s Subject[T, E]) Failed() bool {
	if s.core == nil {
		return false
	}
	t := s.core.terminated()
	return t != nil && t.kind == kindError
}

// Payload returns the payload of the terminal event and whether the subject
// is terminal. An active subject returns the zero value and false.
func (s Subject[T, E]) Payload() (E, bool) {
	if s.core != nil {
		if t := s.core.terminated(); t != nil {
			return t.payload, true
		}
	}
	var zero E
	return zero, false
}

func (s *subject[T, E]) Next(v T) {
	s.mu.Lock()
	if s.done != nil {
		s.mu.Unlock()
		return
	}
	snapshot := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, e := range snapshot {
		e.obs.Next(v)
	}
}

func (s *subject[T, E]) Error(payload E) {
	s.terminate(terminal[E]{kind: kindError, payload: payload})
}

func (s *subject[T, E]) Complete(payload E) {
	s.terminate(terminal[E]{kind: kindComplete, payload: payload})
}

// terminate commits the terminal state before delivering it, so observers
// reacting to the event cannot push more values or change the outcome.
func (s *subject[T, E]) terminate(t terminal[E]) {
	s.mu.Lock()
	if s.done != nil {
		s.mu.Unlock()
		return
	}
	s.done = &t
	observers := s.observers
	s.observers = nil
	s.mu.Unlock()

	s.logger.Debug("subject terminated",
		logger.Event(t.kind.String()),
		logger.Observers(len(observers)),
		slog.Any("payload", t.payload),
	)

	for _, e := range observers {
		replay(e.obs, t)
	}
}

func (s *subject[T, E]) Subscribe(o Observer[T]) Subscription {
	if o == nil {
		return noopSubscription{}
	}
	return s.subscribe(normalize[T, E](o))
}

func (s *subject[T, E]) SubscribeFunc(next func(T), err func(E), complete func(E)) Subscription {
	return s.subscribe(Funcs[T, E]{NextFunc: next, ErrorFunc: err, CompleteFunc: complete})
}

func (s *subject[T, E]) subscribe(obs Funcs[T, E]) Subscription {
	s.mu.Lock()
	if t := s.done; t != nil {
		s.mu.Unlock()
		replay(obs, *t)
		return noopSubscription{}
	}

	e := &entry[T, E]{obs: obs}
	s.observers = append(s.observers, e)
	s.mu.Unlock()

	return &subscription{cancel: func() { s.remove(e) }}
}

func (s *subject[T, E]) remove(e *entry[T, E]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.observers, e); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

func (s *subject[T, E]) terminated() *terminal[E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func replay[T, E any](obs Funcs[T, E], t terminal[E]) {
	switch t.kind {
	case kindError:
		obs.Error(t.payload)
	case kindComplete:
		obs.Complete(t.payload)
	}
}

func (k kind) String() string {
	switch k {
	case kindError:
		return "error"
	case kindComplete:
		return "complete"
	default:
		return "active"
	}
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
