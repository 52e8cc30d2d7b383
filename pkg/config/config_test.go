package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Origin)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, "portal.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 0, cfg.Storage.Redis.DB)
	assert.Equal(t, "standard", cfg.Log.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORTAL_ORIGIN", "https://portal.example.com")
	t.Setenv("PORTAL_STORAGE", "redis")
	t.Setenv("PORTAL_REDIS_DB", "3")
	t.Setenv("PORTAL_LOG_BACKEND", "logrus")

	cfg, err := LoadFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "https://portal.example.com", cfg.Origin)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, 3, cfg.Storage.Redis.DB)
	assert.Equal(t, "logrus", cfg.Log.Backend)
}

func TestLoadFromEnv_BadIntFallsBack(t *testing.T) {
	t.Setenv("PORTAL_REDIS_DB", "not-a-number")

	cfg, err := LoadFromEnv()

	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.Storage.Redis.DB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty origin", func(c *Config) { c.Origin = "" }, true},
		{"unknown storage type", func(c *Config) { c.Storage.Type = "etcd" }, true},
		{"unknown log backend", func(c *Config) { c.Log.Backend = "zap" }, true},
		{"sqlite storage", func(c *Config) { c.Storage.Type = "sqlite" }, false},
		{"logrus backend", func(c *Config) { c.Log.Backend = "logrus" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := LoadFromEnv()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
