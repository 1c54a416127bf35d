package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderguard/pkg/config"
)

type testConfig struct {
	Addr    string `env:"TEST_ADDR" envDefault:":8080"`
	Retries int    `env:"TEST_RETRIES" envDefault:"3"`
	Token   string `env:"TEST_TOKEN"`
}

type requiredConfig struct {
	Must string `env:"TEST_MUST_BE_SET,required"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3, cfg.Retries)
	assert.Empty(t, cfg.Token)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_ADDR", ":9090")
	t.Setenv("TEST_RETRIES", "7")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 7, cfg.Retries)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
