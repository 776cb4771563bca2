package broadcast

// Observer receives values from a subject.
type Observer[T any] interface {
	Next(T)
}

// ErrorObserver is implemented by observers that want the error terminal event.
// The payload is plain data chosen by the producer, not necessarily a Go error.
type ErrorObserver[E any] interface {
	Error(E)
}

// CompleteObserver is implemented by observers that want the completion event.
type CompleteObserver[E any] interface {
	Complete(E)
}

// Sink is the producer side of a subject.
type Sink[T, E any] interface {
	Observer[T]
	ErrorObserver[E]
	CompleteObserver[E]
}

// Subscription cancels one observer registration.
type Subscription interface {
	Unsubscribe()
}

// Source is the consumer side of a subject.
type Source[T, E any] interface {
	// Subscribe registers o. Error and Complete are delivered only if o
	// implements ErrorObserver[E] or CompleteObserver[E].
	Subscribe(o Observer[T]) Subscription
	// SubscribeFunc registers callbacks. Nil callbacks are no-ops.
	SubscribeFunc(next func(T), err func(E), complete func(E)) Subscription
}

// Funcs adapts plain functions to an observer. Nil fields are no-ops.
type Funcs[T, E any] struct {
	NextFunc     func(T)
	ErrorFunc    func(E)
	CompleteFunc func(E)
}

func (f Funcs[T, E]) Next(v T) {
	if f.NextFunc != nil {
		f.NextFunc(v)
	}
}

func (f Funcs[T, E]) Error(payload E) {
	if f.ErrorFunc != nil {
		f.ErrorFunc(payload)
	}
}

func (f Funcs[T, E]) Complete(payload E) {
	if f.CompleteFunc != nil {
		f.CompleteFunc(payload)
	}
}

// normalize fills missing optional methods with no-ops.
func normalize[T, E any](o Observer[T]) Funcs[T, E] {
	if f, ok := o.(Funcs[T, E]); ok {
		return f
	}

	f := Funcs[T, E]{NextFunc: o.Next}
	if eo, ok := o.(ErrorObserver[E]); ok {
		f.ErrorFunc = eo.Error
	}
	if co, ok := o.(CompleteObserver[E]); ok {
		f.CompleteFunc = co.Complete
	}
	return f
}
