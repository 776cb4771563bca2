// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with caarlos0/env tags. A .env file in the working
// directory is read once through godotenv before the first parse; variables
// already present in the environment win over the file.
//
//	type CounterConfig struct {
//		Initial int    `env:"COUNTER_INITIAL" envDefault:"0"`
//		Step    int    `env:"COUNTER_STEP" envDefault:"2"`
//		Level   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CounterConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during start-up
//	config.MustLoad(&cfg)
//
// # Caching
//
// Each configuration type is parsed once per process. Later Load calls for
// the same type return the cached value even if the environment changed in
// between. Different types are cached independently.
//
// # Errors
//
// Parsing failures wrap ErrParse, unreadable .env files wrap ErrDotEnv.
// Failed loads are not cached.
package config
