// Command counter runs the inc/dec counter wired through spacefold publishers.
//
// Each argument is a button press: "inc", "dec" or "reset".
//
//	COUNTER_STEP=2 counter inc inc dec inc inc   # prints 6
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/spacefold/core/config"
	"github.com/dmitrymomot/spacefold/core/logger"
)

// Config is read from the environment (and .env).
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Initial  int    `env:"COUNTER_INITIAL" envDefault:"0"`
	Step     int    `env:"COUNTER_STEP" envDefault:"2"`
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	app := newCounterApp(cfg, log)
	state, err := app.run(os.Args[1:])
	if err != nil {
		log.Error("counter failed", logger.Error(err))
		os.Exit(1)
	}

	fmt.Println(state)
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithOutput(os.Stderr)}
	if cfg.Env == "production" {
		opts = append(opts, logger.WithProduction("counter"))
	} else {
		opts = append(opts, logger.WithDevelopment("counter"))
	}
	// Explicit level wins over the environment preset
	opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	return logger.New(opts...)
}
