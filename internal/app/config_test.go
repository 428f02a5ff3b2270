// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "upper case is normalized", mutate: func(c *Config) { c.Format = "YAML"; c.LogLevel = "DEBUG" }},
		{name: "bad format", mutate: func(c *Config) { c.Format = "xml" }, errContains: "unsupported format"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, errContains: "invalid log-format"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, errContains: "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			got, err := NewConfig(cfg)
			if tc.errContains != "" {
				require.ErrorContains(t, err, tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(got.Format), got.Format)
			assert.Equal(t, strings.ToLower(got.LogLevel), got.LogLevel)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slangc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
classpath = ["lib", "app"]
log_level = "debug"
`), 0o644))

	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"lib", "app"}, cfg.Classpath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format, "keys absent from the file keep the base value")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`workers = 4`), 0o644))
	_, err = LoadConfigFile(bad, DefaultConfig())
	require.ErrorContains(t, err, "unknown keys: workers")

	_, err = LoadConfigFile(filepath.Join(dir, "missing.toml"), DefaultConfig())
	require.ErrorContains(t, err, "failed to read config file")
}
