package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("AUTH_MIN_PASSWORD_LENGTH", "")
	t.Setenv("DIRECTORY_LATENCY_MS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Zero(t, cfg.Directory.Latency())
	assert.True(t, cfg.Directory.SeedDemoData)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("DIRECTORY_LATENCY_MS", "250")
	t.Setenv("DIRECTORY_SEED_DEMO_DATA", "false")
	t.Setenv("POSTGRES_MAX_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 250*time.Millisecond, cfg.Directory.Latency())
	assert.False(t, cfg.Directory.SeedDemoData)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "x")
	_, err := Load()
	assert.Error(t, err)
}
