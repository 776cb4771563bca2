package lifecycle

import "errors"

var (
	// ErrAlreadyMounted is returned by Mount on a mounted component.
	ErrAlreadyMounted = errors.New("lifecycle: component already mounted")

	// ErrNotMounted is returned by Render before Mount.
	ErrNotMounted = errors.New("lifecycle: component not mounted")

	// ErrUnmounted is returned by Mount and Render after Unmount.
	ErrUnmounted = errors.New("lifecycle: component unmounted")
)
