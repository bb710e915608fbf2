package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App  AppConfig
	JWT  JWTConfig
	Log  LogConfig
	Sim  SimConfig
	Seed SeedConfig
}

// AppConfig holds application-specific settings.
type AppConfig struct {
	Name string
	Env  string
	Port int
}

// JWTConfig holds JWT settings.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// SimConfig holds the telemetry simulator settings.
type SimConfig struct {
	Enabled         bool
	Interval        time.Duration
	ExcursionChance float64
}

// SeedConfig holds the seed loader settings.
type SeedConfig struct {
	RandomSeed int64
}

// Load reads configuration from WMS_-prefixed environment variables with
// development defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "coldmart")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("jwt.secret", "coldmart-dev-secret")
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("jwt.issuer", "coldmart")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("sim.enabled", true)
	v.SetDefault("sim.interval", "5s")
	v.SetDefault("sim.excursion_chance", 0.05)
	v.SetDefault("seed.random_seed", 20240501)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetInt("app.port"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetDuration("jwt.expiration"),
			Issuer:     v.GetString("jwt.issuer"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Sim: SimConfig{
			Enabled:         v.GetBool("sim.enabled"),
			Interval:        v.GetDuration("sim.interval"),
			ExcursionChance: v.GetFloat64("sim.excursion_chance"),
		},
		Seed: SeedConfig{
			RandomSeed: v.GetInt64("seed.random_seed"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.App.Port)
	}
	if c.Sim.Interval <= 0 {
		return fmt.Errorf("simulator interval must be positive, got %s", c.Sim.Interval)
	}
	if c.Sim.ExcursionChance < 0 || c.Sim.ExcursionChance > 1 {
		return fmt.Errorf("excursion chance must be in [0,1], got %f", c.Sim.ExcursionChance)
	}
	if c.App.Env == "production" && c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required in production")
	}
	return nil
}
