package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spacefold/core/config"
)

// Each test uses its own type because values are cached per type.

type defaultsConfig struct {
	Step  int    `env:"SPACEFOLD_TEST_DEFAULT_STEP" envDefault:"2"`
	Level string `env:"SPACEFOLD_TEST_DEFAULT_LEVEL" envDefault:"info"`
}

type overrideConfig struct {
	Step int `env:"SPACEFOLD_TEST_OVERRIDE_STEP" envDefault:"2"`
}

type requiredConfig struct {
	Name string `env:"SPACEFOLD_TEST_REQUIRED_NAME,required"`
}

type cachedConfig struct {
	Value string `env:"SPACEFOLD_TEST_CACHED_VALUE"`
}

type badValueConfig struct {
	Count int `env:"SPACEFOLD_TEST_BAD_COUNT"`
}

type mustConfig struct {
	Port int `env:"SPACEFOLD_TEST_MUST_PORT" envDefault:"8080"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 2, cfg.Step)
	assert.Equal(t, "info", cfg.Level)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("SPACEFOLD_TEST_OVERRIDE_STEP", "5")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 5, cfg.Step)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("SPACEFOLD_TEST_BAD_COUNT", "not-a-number")

	var cfg badValueConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParse)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("SPACEFOLD_TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("SPACEFOLD_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "second load must come from cache")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}

func TestMustLoad(t *testing.T) {
	var cfg mustConfig
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, 8080, cfg.Port)

	assert.Panics(t, func() {
		var bad requiredConfig
		config.MustLoad(&bad)
	})
}
