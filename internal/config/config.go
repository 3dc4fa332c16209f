// Package config loads application settings from a config file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application settings loaded from config.yaml and
// MATHDASH_* environment variables.
type Config struct {
	RosterPath    string  `mapstructure:"roster_path"`    // gradebook CSV export
	DBPath        string  `mapstructure:"db_path"`        // sqlite database; empty means the default data dir
	AdminPassword string  `mapstructure:"-"`              // gates the admin screen, loaded from environment
	WeakThreshold float64 `mapstructure:"weak_threshold"` // mastery fraction below which a standard is a focus area
}

// Load reads configuration from config.yaml (working directory or
// ./config) and the environment. A missing config file is fine; the
// defaults cover local use.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("roster_path", "standards.csv")
	v.SetDefault("db_path", "")
	v.SetDefault("weak_threshold", 0.70)

	v.SetEnvPrefix("MATHDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("roster_path", "MATHDASH_ROSTER")
	_ = v.BindEnv("db_path", "MATHDASH_DB")
	_ = v.BindEnv("admin_password", "MATHDASH_ADMIN_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.AdminPassword = v.GetString("admin_password")

	if cfg.WeakThreshold <= 0 || cfg.WeakThreshold > 1 {
		return nil, fmt.Errorf("weak_threshold must be in (0, 1], got %v", cfg.WeakThreshold)
	}

	return &cfg, nil
}
