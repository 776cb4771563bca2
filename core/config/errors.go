package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")

	// ErrParse wraps environment parsing failures (missing required vars, bad values).
	ErrParse = errors.New("config: failed to parse environment")

	// ErrDotEnv wraps failures reading an existing .env file.
	ErrDotEnv = errors.New("config: failed to read .env file")
)
