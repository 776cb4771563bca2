// Package async runs error-returning functions on their own goroutine and
// exposes the outcome as a future.
//
// The event package uses it to run asynchronous listeners: a publisher's
// Send starts the listener and moves on, while the listener's error (if any)
// is routed to a callback.
//
// # Usage
//
//	future := async.Go(ctx, payload, handle, func(err error) {
//		log.Error("handler failed", logger.Error(err))
//	})
//
//	// Do other work...
//
//	if err := async.ExecAllContext(ctx, future); err != nil {
//		return err
//	}
//
// # Coordination
//
// ExecAllContext waits for every future and returns the first error in
// argument order, or the context's error if it ends first. Done and
// IsComplete inspect a single future without blocking on its result.
//
// # Context Support
//
// If the context is already cancelled when the goroutine starts, the function
// is not called and the future resolves to the context's error. Cancelling the
// context later is up to the function to observe.
//
// # Panics
//
// Panics are not recovered. A panicking function crashes the program, the
// same as any other goroutine.
package async
