package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type publisherOptions struct {
	name   string
	logger *slog.Logger
}

// PublisherOption configures a Publisher.
type PublisherOption func(*publisherOptions)

// WithName gives the publisher a label used in logs and errors.
//
// Example:
//
//	inc := event.NewPublisher[int](event.WithName("inc"))
func WithName(name string) PublisherOption {
	return func(o *publisherOptions) {
		o.name = name
	}
}

// WithPublisherLogger sets the logger for the publisher.
// If not set, slog.Default() is used.
func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(o *publisherOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// Register adds publishers to the subscriber's allow-list.
// It may be passed more than once; the allow-list is the union.
// The list cannot change after NewSubscriber returns.
//
// Example:
//
//	counter := event.NewSubscriber(event.Register(inc, dec))
func Register(pubs ...Registrable) SubscriberOption {
	return func(s *Subscriber) {
		for _, p := range pubs {
			if p == nil {
				continue
			}
			// typed nil publishers report uuid.Nil
			if id := p.ID(); id != uuid.Nil {
				s.allowed[id] = struct{}{}
			}
		}
	}
}

// WithSubscriberLogger sets the logger for the subscriber.
// If not set, slog.Default() is used.
func WithSubscriberLogger(logger *slog.Logger) SubscriberOption {
	return func(s *Subscriber) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContext sets the context passed to asynchronous listeners.
// Off does not cancel it; cancel it yourself to stop in-flight work.
func WithContext(ctx context.Context) SubscriberOption {
	return func(s *Subscriber) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithErrorHandler receives errors returned by asynchronous listeners.
// Errors are *ListenerError values. The default handler logs them at error level.
func WithErrorHandler(fn func(context.Context, error)) SubscriberOption {
	return func(s *Subscriber) {
		if fn != nil {
			s.onError = fn
		}
	}
}
