package async

import (
	"context"
	"sync"
)

// ExecFuture represents the result of an asynchronous computation that only returns an error.
type ExecFuture struct {
	err  error
	once sync.Once
	done chan struct{}
}

// Done returns a channel closed once the function has returned.
func (f *ExecFuture) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Go runs fn(ctx, param) on a new goroutine and returns its future.
// onErr runs on the worker goroutine after fn returns a non-nil error
// (or the context was already done). A nil onErr is allowed.
//
// Panics raised by fn are not recovered.
func Go[T any](ctx context.Context, param T, fn func(context.Context, T) error, onErr func(error)) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Pre-canceled context: skip the work entirely
		if err := ctx.Err(); err != nil {
			f.complete(err, onErr)
			return
		}

		f.complete(fn(ctx, param), onErr)
	}()

	return f
}

func (f *ExecFuture) complete(err error, onErr func(error)) {
	f.once.Do(func() {
		f.err = err
	})
	if err != nil && onErr != nil {
		onErr(err)
	}
}

// ExecAllContext waits for all futures to complete and returns the first
// error in argument order, if any. It gives up with ctx.Err() when ctx ends.
// Returns ErrNoFutures when called without futures.
func ExecAllContext(ctx context.Context, futures ...*ExecFuture) error {
	if len(futures) == 0 {
		return ErrNoFutures
	}

	var first error
	for _, future := range futures {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-future.Done():
			if future.err != nil && first == nil {
				first = future.err
			}
		}
	}
	return first
}
