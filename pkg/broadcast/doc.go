// Package broadcast provides a subject: a multicast channel with a terminal
// state that is replayed to late subscribers.
//
// A Subject[T, E] carries values of type T. Its terminal event, Error or
// Complete, carries a payload of type E. The payload is data chosen by the
// producer: a Go error, a reason string, a final summary struct.
//
// # Architecture
//
// NewSubject returns a Subject with two halves:
//   - Sink: the producer side (Next, Error, Complete)
//   - Source: the consumer side (Subscribe, SubscribeFunc)
//
// Hand the sink to whoever produces values and the source to whoever reads
// them.
//
// # Usage
//
//	s := broadcast.NewSubject[string, string]()
//
//	sub := s.Source.SubscribeFunc(
//		func(msg string) { fmt.Println("got", msg) },
//		func(reason string) { fmt.Println("failed:", reason) },
//		func(reason string) { fmt.Println("done:", reason) },
//	)
//	defer sub.Unsubscribe()
//
//	s.Sink.Next("hello")
//	s.Sink.Complete("eof")
//
// # Observers
//
// Subscribe takes any Observer[T]. Error and Complete are optional: an
// observer receives them only if it also implements ErrorObserver[E] or
// CompleteObserver[E]. Funcs adapts plain functions; nil fields are no-ops.
//
// # Terminal State
//
// The first Error or Complete ends the subject:
//
//	s.Sink.Error("upstream closed")
//	s.Sink.Next("ignored")      // no-op
//	s.Sink.Complete("eof")      // no-op, still failed
//
//	// Late subscriber: Error("upstream closed") is delivered before
//	// Subscribe returns, and the returned Subscription does nothing.
//	s.Source.SubscribeFunc(nil, func(reason string) { ... }, nil)
//
// Done, Failed and Payload report the terminal state.
//
// The terminal state is recorded before observers are notified, so an
// observer that calls back into the sink during Error or Complete changes
// nothing.
//
// # Delivery
//
// Next, Error and Complete run observers synchronously on the caller's
// goroutine, in subscription order, over a snapshot taken when the call
// starts. Panics in observers are not recovered.
//
// Every Subscribe call creates its own registration, so the same observer
// subscribed twice receives each value twice; each Subscription removes only
// its own registration.
//
// # Thread Safety
//
// Subjects are safe for concurrent use.
package broadcast
