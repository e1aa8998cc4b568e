package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example ,")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("COUNTDOWN_TICK", "250ms")
	t.Setenv("SHIFT_REDETECT_INTERVAL", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.CountdownTick)
	assert.Equal(t, time.Minute, cfg.ShiftRedetectInterval)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RATE_LIMIT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, time.Second, cfg.CountdownTick)
}
