// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads couronne settings from ~/.couronne.yaml and
// COURONNE_* environment variables, with working defaults when neither
// exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime settings.
type Config struct {
	// DBPath is the SQLite database location for progress state.
	DBPath string `mapstructure:"db_path"`
	// DeckPath points at a YAML deck file; empty means the embedded deck.
	DeckPath string `mapstructure:"deck_path"`
	// Milestones are the reveal-count celebration thresholds.
	Milestones []int `mapstructure:"milestones"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".couronne")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetDefault("db_path", filepath.Join(home, ".couronne.db"))
	} else {
		v.SetDefault("db_path", ".couronne.db")
	}
	v.AddConfigPath(".")

	v.SetDefault("deck_path", "")
	v.SetDefault("milestones", []int{10, 25, 54})
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("COURONNE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
