package event

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/spacefold/core/logger"
)

// Decorator wraps a listener to add cross-cutting behaviour.
type Decorator[T any] func(Listener[T]) Listener[T]

// Decorate applies decorators to fn. The first decorator becomes the
// outermost wrapper and runs first.
//
// Example:
//
//	fn := event.Decorate(update,
//	    event.Logging[int](log, "counter"),
//	    event.Recover[int](nil),
//	)
//
// Execution order: Logging -> Recover -> update
func Decorate[T any](fn Listener[T], decorators ...Decorator[T]) Listener[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// Logging logs every delivery at debug level with its duration.
func Logging[T any](log *slog.Logger, name string) Decorator[T] {
	if log == nil {
		log = slog.Default()
	}
	return func(next Listener[T]) Listener[T] {
		return func(payload T) {
			start := time.Now()
			next(payload)
			log.Debug("listener invoked",
				logger.Component(name),
				logger.Duration(time.Since(start)),
			)
		}
	}
}

// Recover stops a panic inside the listener from reaching Send, so the
// listeners after it still receive the event. onPanic receives the recovered
// value; nil drops it silently.
//
// Publishers do not isolate listeners on their own; use this where a
// listener is allowed to fail.
func Recover[T any](onPanic func(any)) Decorator[T] {
	return func(next Listener[T]) Listener[T] {
		return func(payload T) {
			defer func() {
				if r := recover(); r != nil && onPanic != nil {
					onPanic(r)
				}
			}()
			next(payload)
		}
	}
}
