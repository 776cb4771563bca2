// Package lifecycle models the host side of a UI component: mount, re-render
// and unmount, plus values that stay the same across renders.
//
// Subscribers in the event package need two things from their host: a
// handle that is not recreated on every render, and a teardown hook that runs
// exactly once. Component provides both and satisfies event.Host.
//
//	c := lifecycle.New("counter")
//
//	_ = c.Mount(func(c *lifecycle.Component) {
//		sub := event.Use(c, counterSub)
//		event.MustOn(sub, inc, func(n int) { state += n })
//	})
//
//	_ = c.Render(func(c *lifecycle.Component) {
//		event.Use(c, counterSub) // Off is still registered only once
//	})
//
//	c.Unmount() // counterSub.Off() runs here
package lifecycle
