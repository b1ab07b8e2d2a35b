package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:     "test-secret-key-for-unit-tests-only",
		Port:          "8460",
		Env:           "test",
		DeletionGrace: "2m",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("malformed deletion grace", func(t *testing.T) {
		cfg := validConfig()
		cfg.DeletionGrace = "two minutes"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		cfg.DBPassword = "strong-enough-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "strong-enough-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}

func TestDeletionGraceDuration(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, 2*time.Minute, cfg.DeletionGraceDuration())

	cfg.DeletionGrace = "30s"
	assert.Equal(t, 30*time.Second, cfg.DeletionGraceDuration())

	// Unparseable or nonpositive values fall back to the default.
	cfg.DeletionGrace = "garbage"
	assert.Equal(t, 2*time.Minute, cfg.DeletionGraceDuration())
	cfg.DeletionGrace = "-1m"
	assert.Equal(t, 2*time.Minute, cfg.DeletionGraceDuration())
}
