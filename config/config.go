package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config is the root configuration, loaded from file, environment and flags
type Config struct {
	Window  WindowConfig  `mapstructure:"window" yaml:"window"`
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Debug   DebugConfig   `mapstructure:"debug" yaml:"debug"`
	Profile ProfileConfig `mapstructure:"profile" yaml:"profile"`
}

// WindowConfig describes the host window. Sizes are logical pixels.
type WindowConfig struct {
	Width      int    `mapstructure:"width" yaml:"width"`
	Height     int    `mapstructure:"height" yaml:"height"`
	Title      string `mapstructure:"title" yaml:"title"`
	Fullscreen bool   `mapstructure:"fullscreen" yaml:"fullscreen"`
	Resizable  bool   `mapstructure:"resizable" yaml:"resizable"`
}

// LoggerConfig controls the zap logger
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// DebugConfig holds debug toggles that can also be flipped at runtime
type DebugConfig struct {
	Overlay bool `mapstructure:"overlay" yaml:"overlay"`
}

// ProfileConfig controls automatic CPU profiling on frame rate drops
type ProfileConfig struct {
	Enabled      bool          `mapstructure:"enabled" yaml:"enabled"`
	Dir          string        `mapstructure:"dir" yaml:"dir"`
	FPSThreshold float64       `mapstructure:"fps_threshold" yaml:"fps_threshold"`
	Duration     time.Duration `mapstructure:"duration" yaml:"duration"`
	Cooldown     time.Duration `mapstructure:"cooldown" yaml:"cooldown"`
	Grace        time.Duration `mapstructure:"grace" yaml:"grace"`
}

// NewDefaultConfig creates a configuration populated with default values
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults registers every default value on v
func SetDefaults(v *viper.Viper) {
	// -- Window --
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("window.title", "Snowfall")
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.resizable", true)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "snowfall")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Debug --
	v.SetDefault("debug.overlay", false)

	// -- Profile --
	v.SetDefault("profile.enabled", false)
	v.SetDefault("profile.dir", "profiles")
	v.SetDefault("profile.fps_threshold", 45.0)
	v.SetDefault("profile.duration", "5s")
	v.SetDefault("profile.cooldown", "10s")
	v.SetDefault("profile.grace", "3s")
}

// Load unmarshals v into a Config and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window.width and window.height must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if c.Profile.Enabled {
		if c.Profile.FPSThreshold <= 0 {
			return fmt.Errorf("profile.fps_threshold must be positive")
		}
		if c.Profile.Duration <= 0 {
			return fmt.Errorf("profile.duration must be positive")
		}
		if c.Profile.Dir == "" {
			return fmt.Errorf("profile.dir is required when profiling is enabled")
		}
	}
	return nil
}
