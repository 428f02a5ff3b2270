// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/slangc/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Classpath lists the files and directories searched for dependencies.
	Classpath []string `toml:"classpath"`
	Format    string   `toml:"format"`

	LogFormat string `toml:"log_format"`
	LogLevel  string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Format:    string(render.FormatJSON),
		LogFormat: "text",
		LogLevel:  "warn",
	}
}

func NewConfig(cfg Config) (*Config, error) {
	cfg.Format = strings.ToLower(cfg.Format)
	if _, err := render.ParseFormat(cfg.Format); err != nil {
		return nil, err
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}

// LoadConfigFile reads a TOML file over base. Keys absent from the file keep
// the value from base; unknown keys are an error.
func LoadConfigFile(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
