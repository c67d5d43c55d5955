package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the tool settings that can come from a file or the environment.
type Config struct {
	Capacity int    `mapstructure:"capacity"`
	Strict   bool   `mapstructure:"strict"`
	LogLevel string `mapstructure:"log_level"`
	Generic  bool   `mapstructure:"generic"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Capacity: 16,
		LogLevel: "warn",
	}
}

// LoadConfig layers STRBUF_* environment variables and the config file over
// the defaults. An explicit path must exist; the default strbuf.yaml lookup
// is optional.
func LoadConfig(path string) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("capacity", def.Capacity)
	v.SetDefault("strict", def.Strict)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("generic", def.Generic)

	v.SetEnvPrefix("STRBUF")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("strbuf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/strbuf")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Capacity < 0 {
		return nil, fmt.Errorf("capacity must not be negative, got %d", cfg.Capacity)
	}
	return cfg, nil
}
