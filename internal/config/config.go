// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete quizdeck configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Server configuration
	Server ServerConfig `toml:"server" json:"server"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// ServerConfig describes the remote quiz service.
type ServerConfig struct {
	// BaseURL is the API root of the quiz service
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs bounds each request (default: 10)
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// StorageConfig describes client-side persistence locations.
type StorageConfig struct {
	// Dir is the quizdeck data directory (credential file, attempt history).
	// Empty means ~/.quizdeck.
	Dir string `toml:"dir" json:"dir"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme selects the color theme: "auto", "dark", "light"
	Theme string `toml:"theme" json:"theme"`
	// RenderMarkdown renders question text as markdown in the quiz view
	RenderMarkdown bool `toml:"render_markdown" json:"render_markdown"`
}

// Timeout returns the server timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSecs) * time.Second
}

// StorageDir returns the effective storage directory.
func (c *Config) StorageDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".quizdeck")
	}
	return filepath.Join(home, ".quizdeck")
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			BaseURL:     "http://localhost:5000/api/v1",
			TimeoutSecs: 10,
		},
		UI: UIConfig{
			Theme:          "auto",
			RenderMarkdown: true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the quizdeck configuration directory (~/.quizdeck).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".quizdeck"), nil
}

// ConfigPathTOML returns the TOML config file path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the JSON config file path.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration: defaults, then the first config file found
// (TOML preferred over JSON), then environment overrides, then validation.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
			return finish(cfg)
		}
	}

	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadJSON(cfg, path); err != nil {
				return nil, err
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML merges a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadJSON merges a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to the TOML config path, creating the directory if needed.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies QUIZDECK_* environment variables over the
// loaded values.
//
//	QUIZDECK_SERVER_URL   — server base URL
//	QUIZDECK_TIMEOUT_SECS — request timeout in seconds
//	QUIZDECK_STORAGE_DIR  — data directory
//	QUIZDECK_THEME        — ui theme
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("QUIZDECK_SERVER_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("QUIZDECK_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Server.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("QUIZDECK_STORAGE_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("QUIZDECK_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return errors.New("server.base_url must not be empty")
	}
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server.base_url %q is not a valid http(s) URL", c.Server.BaseURL)
	}
	if c.Server.TimeoutSecs <= 0 {
		return fmt.Errorf("server.timeout_secs must be positive, got %d", c.Server.TimeoutSecs)
	}
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.theme %q is not one of auto, dark, light", c.UI.Theme)
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// Global returns the process-wide configuration, loading it on first use.
// If loading fails the defaults are installed, so callers always get a
// usable config.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ReloadGlobal re-reads the configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// ResetGlobalForTesting clears the global config. Test helper only.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}
