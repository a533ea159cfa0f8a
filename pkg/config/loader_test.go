package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlabs/pushkit/pkg/config"
)

type inboxConfig struct {
	Cap      int    `env:"TEST_INBOX_CAP" envDefault:"100"`
	RedisURL string `env:"TEST_INBOX_REDIS_URL"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env unset", func(t *testing.T) {
		var cfg inboxConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 100, cfg.Cap)
		assert.Empty(t, cfg.RedisURL)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_INBOX_CAP", "25")
		t.Setenv("TEST_INBOX_REDIS_URL", "redis://localhost:6379/1")

		var cfg inboxConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 25, cfg.Cap)
		assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("TEST_INBOX_CAP", "not-a-number")

		var cfg inboxConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[inboxConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns populated config", func(t *testing.T) {
		t.Setenv("TEST_INBOX_CAP", "50")

		var cfg inboxConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, 50, cfg.Cap)
	})

	t.Run("panics on failure", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
