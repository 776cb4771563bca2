package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/spacefold/core/event"
	"github.com/dmitrymomot/spacefold/core/lifecycle"
	"github.com/dmitrymomot/spacefold/core/logger"
	"github.com/dmitrymomot/spacefold/pkg/broadcast"
)

var errUnknownButton = errors.New("unknown button")

// counterApp holds the publishers shared by the buttons and the counter view.
type counterApp struct {
	log     *slog.Logger
	step    int
	initial int

	inc   *event.Publisher[int]
	dec   *event.Publisher[int]
	reset *event.Publisher[struct{}]

	counterSub *event.Subscriber
	view       *lifecycle.Component
	changes    broadcast.Subject[int, int]

	mu    sync.Mutex
	value int
}

func newCounterApp(cfg Config, log *slog.Logger) *counterApp {
	inc := event.NewPublisher[int](event.WithName("inc"), event.WithPublisherLogger(log))
	dec := event.NewPublisher[int](event.WithName("dec"), event.WithPublisherLogger(log))
	reset := event.NewSignal(event.WithName("reset"), event.WithPublisherLogger(log))

	return &counterApp{
		log:     log,
		step:    cfg.Step,
		initial: cfg.Initial,
		inc:     inc,
		dec:     dec,
		reset:   reset,
		counterSub: event.NewSubscriber(
			event.Register(inc, dec, reset),
			event.WithSubscriberLogger(log),
		),
		view:    lifecycle.New("counter", lifecycle.WithLogger(log)),
		changes: broadcast.NewSubject[int, int](broadcast.WithLogger(log)),
		value:   cfg.Initial,
	}
}

// mount attaches the counter view to the publishers.
func (a *counterApp) mount() error {
	return a.view.Mount(func(c *lifecycle.Component) {
		sub := event.Use(c, a.counterSub)
		event.MustOn(sub, a.inc, func(n int) { a.apply(n) })
		event.MustOn(sub, a.dec, func(n int) { a.apply(-n) })
		event.MustOn(sub, a.reset, func(struct{}) { a.set(a.initial) })
	})
}

func (a *counterApp) apply(delta int) {
	a.mu.Lock()
	a.value += delta
	v := a.value
	a.mu.Unlock()
	a.changes.Sink.Next(v)
}

func (a *counterApp) set(v int) {
	a.mu.Lock()
	a.value = v
	a.mu.Unlock()
	a.changes.Sink.Next(v)
}

func (a *counterApp) state() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// press plays the role of the increment, decrement and reset buttons.
func (a *counterApp) press(button string) error {
	switch button {
	case "inc":
		a.inc.Send(a.step)
	case "dec":
		a.dec.Send(a.step)
	case "reset":
		a.reset.Send(struct{}{})
	default:
		return fmt.Errorf("%w: %q", errUnknownButton, button)
	}
	return nil
}

// run mounts the view, presses the buttons in order and unmounts.
// The change stream completes with the final value when the view goes away.
func (a *counterApp) run(buttons []string) (int, error) {
	if err := a.mount(); err != nil {
		return 0, err
	}

	history := a.changes.Source.SubscribeFunc(
		func(v int) { a.log.Debug("counter changed", logger.Key("value", v)) },
		nil,
		func(final int) { a.log.Info("counter closed", logger.Key("value", final)) },
	)
	defer history.Unsubscribe()

	a.view.OnUnmount(func() { a.changes.Sink.Complete(a.state()) })
	defer a.view.Unmount()

	for _, b := range buttons {
		if err := a.press(b); err != nil {
			return a.state(), err
		}
	}

	return a.state(), nil
}
