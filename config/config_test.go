package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, "Snowfall", cfg.Window.Title)
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.False(t, cfg.Profile.Enabled)
	assert.Equal(t, 45.0, cfg.Profile.FPSThreshold)
	assert.Equal(t, 5*time.Second, cfg.Profile.Duration)
	assert.Equal(t, 10*time.Second, cfg.Profile.Cooldown)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	yaml := []byte(`
window:
  width: 640
  fullscreen: true
logger:
  level: debug
  format: json
profile:
  enabled: true
  duration: 250ms
`)
	require.NoError(t, v.ReadConfig(bytes.NewBuffer(yaml)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "unset keys keep defaults")
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Profile.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Profile.Duration)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window.width"},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, "window.height"},
		{"bad level", func(c *Config) { c.Logger.Level = "loud" }, "logger.level"},
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }, "logger.format"},
		{"bad threshold", func(c *Config) {
			c.Profile.Enabled = true
			c.Profile.FPSThreshold = 0
		}, "profile.fps_threshold"},
		{"bad duration", func(c *Config) {
			c.Profile.Enabled = true
			c.Profile.Duration = 0
		}, "profile.duration"},
		{"missing dir", func(c *Config) {
			c.Profile.Enabled = true
			c.Profile.Dir = ""
		}, "profile.dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("disabled profile ignores its fields", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Profile.FPSThreshold = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadRejectsInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("window.width", 0)
	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
