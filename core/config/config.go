package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache   sync.Map // reflect.Type -> loaded value
	mu      sync.Mutex
	dotOnce sync.Once
)

// Load fills cfg from the environment. The first call for a type parses
// the environment; later calls for the same type copy the cached value.
// A .env file in the working directory is read once, before the first parse,
// and never overrides variables that are already set.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	typ := reflect.TypeFor[T]()
	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have loaded it while we waited
	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	if err := loadDotEnv(); err != nil {
		return err
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParse, typ, err)
	}

	cache.Store(typ, loaded)
	*cfg = loaded
	return nil
}

// MustLoad is Load that panics on failure. Meant for program start-up.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

var dotErr error

func loadDotEnv() error {
	dotOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotErr = fmt.Errorf("%w: %w", ErrDotEnv, err)
		}
	})
	return dotErr
}
