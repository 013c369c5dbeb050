package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "icebreaker", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 4, cfg.MaxInterestTags)
	assert.Equal(t, 200, cfg.MessageWindow)
	assert.True(t, cfg.SeedActivities)
	assert.False(t, cfg.Production())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MAX_INTEREST_TAGS", "6")
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.Production())
	assert.Equal(t, 6, cfg.MaxInterestTags)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Parse()
	assert.Error(t, err, "JWT_SECRET is required")

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MESSAGE_WINDOW", "0")
	_, err = Parse()
	assert.Error(t, err)
}
