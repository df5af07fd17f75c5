package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the fetch CLI configuration loaded from environment
// variables (with configs/.env as an optional local override).
type Config struct {
	AppName        string        `mapstructure:"app_name"`
	LogLevel       string        `mapstructure:"log_level"`
	TimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	Streaming      bool          `mapstructure:"streaming"`
	RecordPath     string        `mapstructure:"record_path"`
	ReplayOnly     bool          `mapstructure:"replay_only"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "anyhttp-fetch")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout_seconds", 15)
	v.SetDefault("streaming", false)
	v.SetDefault("record_path", "")
	v.SetDefault("replay_only", false)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	if cfg.ReplayOnly && cfg.RecordPath == "" {
		return nil, fmt.Errorf("replay_only requires record_path")
	}

	return &cfg, nil
}
