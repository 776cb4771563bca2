// Package event lets independent parts of a component tree talk through
// typed publishers instead of passing callbacks down the tree or sharing a
// store.
//
// # Core Components
//
// Publisher[T] is an event source with an identity and an ordered list of
// listeners. Send calls each listener synchronously, in registration order,
// on the caller's goroutine.
//
// Subscriber is a binding restricted to the publishers it was created with.
// On and OnAsync attach listeners through it; Off removes all of them.
// Binding a publisher outside the allow-list fails with
// ErrUnauthorizedPublisher.
//
// Use connects a subscriber to a Host (a UI component lifecycle) so that
// Off runs exactly once when the component unmounts.
//
// # Basic Usage
//
//	inc := event.NewPublisher[int](event.WithName("inc"))
//	dec := event.NewPublisher[int](event.WithName("dec"))
//
//	counter := event.NewSubscriber(event.Register(inc, dec))
//
//	state := 0
//	event.MustOn(counter, inc, func(n int) { state += n })
//	event.MustOn(counter, dec, func(n int) { state -= n })
//
//	inc.Send(2)
//	dec.Send(1) // state == 1
//
//	counter.Off()
//	inc.Send(5) // no listener left, state == 1
//
// # Unregistered Publishers
//
//	other := event.NewSignal()
//	err := event.On(counter, other, func(struct{}) {})
//	// errors.Is(err, event.ErrUnauthorizedPublisher) == true
//
// The allow-list is checked when a listener is bound, never on Send.
//
// # Asynchronous Listeners
//
// OnAsync runs the listener on its own goroutine for each delivery. Send does
// not wait for it, and Off does not interrupt a run that already started.
// Returned errors are wrapped in *ListenerError and handed to the error
// handler set with WithErrorHandler; by default they are logged.
//
//	event.OnAsync(counter, inc, func(ctx context.Context, n int) error {
//		return store.Save(ctx, n)
//	})
//
// Wait blocks until the listeners started so far have returned, e.g. on
// shutdown. After the context given with WithContext is done, deliveries are
// dropped and that context's error is not reported.
//
// # Failure Semantics
//
// Panics inside synchronous listeners are not recovered: the panic escapes
// Send and the listeners after the failing one miss that event. Wrap a
// listener with Recover where isolation is wanted:
//
//	event.MustOn(counter, inc, event.Decorate(update, event.Recover[int](nil)))
//
// # Dispatch Order
//
// Send iterates over a snapshot of the listeners taken when it starts.
// Listeners subscribed during a dispatch first receive the next Send;
// listeners removed during a dispatch still receive the current one.
//
// # Thread Safety
//
// Publishers and subscribers are safe for concurrent use. Listeners run on
// the goroutine that called Send (or a fresh goroutine for OnAsync) and must
// protect any state they share.
package event
