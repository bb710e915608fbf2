package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.True(t, cfg.Sim.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Sim.Interval)
	assert.InDelta(t, 0.05, cfg.Sim.ExcursionChance, 0.0001)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WMS_APP_PORT", "9090")
	t.Setenv("WMS_SIM_INTERVAL", "250ms")
	t.Setenv("WMS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Sim.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.App.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Sim.Interval = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Sim.ExcursionChance = 1.5
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.App.Env = "production"
	cfg.JWT.Secret = ""
	assert.Error(t, cfg.Validate())
}
