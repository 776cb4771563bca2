package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spacefold/core/logger"
)

func newTestApp(initial, step int) *counterApp {
	return newCounterApp(Config{Initial: initial, Step: step}, logger.Discard())
}

func TestCounterApp_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial int
		step    int
		buttons []string
		want    int
	}{
		{name: "initial state", step: 2, want: 0},
		{name: "inc inc dec inc inc", step: 2, buttons: []string{"inc", "inc", "dec", "inc", "inc"}, want: 6},
		{name: "starts from configured value", initial: 10, step: 1, buttons: []string{"dec", "dec"}, want: 8},
		{name: "reset returns to initial", initial: 3, step: 5, buttons: []string{"inc", "reset", "inc"}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestApp(tt.initial, tt.step).run(tt.buttons)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounterApp_UnknownButton(t *testing.T) {
	t.Parallel()

	got, err := newTestApp(0, 2).run([]string{"inc", "explode", "inc"})
	require.ErrorIs(t, err, errUnknownButton)
	assert.Contains(t, err.Error(), `"explode"`)
	assert.Equal(t, 2, got, "presses before the failure are applied")
}

func TestCounterApp_DetachesOnUnmount(t *testing.T) {
	t.Parallel()

	app := newTestApp(0, 2)
	_, err := app.run([]string{"inc"})
	require.NoError(t, err)

	assert.False(t, app.view.Mounted())
	assert.Zero(t, app.counterSub.Len())
	assert.Zero(t, app.inc.Len())
	assert.True(t, app.changes.Done(), "change stream completes with the view")
	final, _ := app.changes.Payload()
	assert.Equal(t, 2, final)

	require.NoError(t, app.press("inc"))
	assert.Equal(t, 2, app.state(), "buttons no longer reach the counter")
}

func TestCounterApp_ChangeStream(t *testing.T) {
	t.Parallel()

	app := newTestApp(0, 1)
	var values []int
	completed := -1
	app.changes.Source.SubscribeFunc(
		func(v int) { values = append(values, v) },
		nil,
		func(final int) { completed = final },
	)

	_, err := app.run([]string{"inc", "inc", "dec"})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 1}, values)
	assert.Equal(t, 1, completed)

	// A late reader sees only the completion, with the same final value.
	late := -1
	app.changes.Source.SubscribeFunc(func(int) { t.Fatal("next after completion") }, nil, func(final int) { late = final })
	assert.Equal(t, 1, late)
}

func TestCounterApp_MountTwice(t *testing.T) {
	t.Parallel()

	app := newTestApp(0, 1)
	require.NoError(t, app.mount())
	assert.Error(t, app.mount())
	app.view.Unmount()
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, newLogger(Config{Env: "production", LogLevel: "warn"}))
	assert.NotNil(t, newLogger(Config{Env: "development", LogLevel: "debug"}))
}
