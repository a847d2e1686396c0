package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "UTC", cfg.ClinicTimezone)
	assert.Equal(t, 10*time.Second, cfg.BookingLockTTL)
	assert.Equal(t, 200, cfg.RateLimitPerMin)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("BOOKING_LOCK_TTL", "3s")
	t.Setenv("REDIS_DB", "4")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3*time.Second, cfg.BookingLockTTL)
	assert.Equal(t, 4, cfg.RedisDB)
}
