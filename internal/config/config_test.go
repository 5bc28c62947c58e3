package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "HTTP_ADDR", "PUBLIC_BASE_URL", "JWT_SECRET", "JWT_ISSUER", "TOKEN_TTL",
	"STORAGE_DRIVER", "STORAGE_FILE", "REDIS_URL", "DATABASE_URL", "SESSION_KEY",
	"AUTH_MODE", "DEMO_EMAIL", "DEMO_PASSWORD", "DEMO_USER_ID", "DEMO_USER_NAME", "AUTH_DELAY",
	"RABBIT_URL", "RABBIT_EXCHANGE", "RL_ENABLED", "RL_AUTH_LIMIT", "RL_AUTH_WINDOW",
	"SEED_FILE", "LOG_LEVEL", "LOG_FORMAT",
	"HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT",
}

// clearEnv blanks every key so a stray .env or shell value cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, StorageFile, cfg.StorageDriver)
	assert.Equal(t, "auth", cfg.SessionKey)
	assert.Equal(t, "organizer@example.com", cfg.DemoEmail)
	assert.Equal(t, "password", cfg.DemoPassword)
	assert.Equal(t, "org1", cfg.DemoUserID)
	assert.Equal(t, time.Second, cfg.AuthDelay)
	assert.Equal(t, "discovery.events", cfg.RabbitExchange)
	assert.True(t, cfg.RLEnabled)
	assert.Equal(t, 10, cfg.RLAuthLimit)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("AUTH_DELAY", "250ms")
	t.Setenv("RL_ENABLED", "false")
	t.Setenv("RL_AUTH_LIMIT", "3")
	t.Setenv("PUBLIC_BASE_URL", "https://events.example.com/")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, StorageRedis, cfg.StorageDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.AuthDelay)
	assert.False(t, cfg.RLEnabled)
	assert.Equal(t, 3, cfg.RLAuthLimit)
	assert.Equal(t, "https://events.example.com", cfg.PublicBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"jwt_secret_required_outside_dev", map[string]string{"APP_ENV": "prod"}},
		{"unknown_storage_driver", map[string]string{"STORAGE_DRIVER": "s3"}},
		{"postgres_needs_dsn", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"unsupported_auth_mode", map[string]string{"AUTH_MODE": "oauth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	// t.Setenv registered "" for every key; godotenv only fills unset ones.
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT"} {
		require.NoError(t, os.Unsetenv(k))
	}
	require.NoError(t, os.WriteFile(".env", []byte("HTTP_ADDR=:9999\nLOG_LEVEL=debug\nLOG_FORMAT=json\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}
