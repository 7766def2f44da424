// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty base url", func(c *Config) { c.Server.BaseURL = "" }, true},
		{"bad scheme", func(c *Config) { c.Server.BaseURL = "ftp://example.com" }, true},
		{"no host", func(c *Config) { c.Server.BaseURL = "http://" }, true},
		{"zero timeout", func(c *Config) { c.Server.TimeoutSecs = 0 }, true},
		{"negative timeout", func(c *Config) { c.Server.TimeoutSecs = -5 }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"https url", func(c *Config) { c.Server.BaseURL = "https://quiz.example.com/api/v1" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[server]
base_url = "https://quiz.example.com/api/v1"
timeout_secs = 30

[ui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if cfg.Server.BaseURL != "https://quiz.example.com/api/v1" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("TimeoutSecs = %d, want 30", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.UI.Theme)
	}
	// Untouched fields keep their defaults.
	if !cfg.UI.RenderMarkdown {
		t.Error("RenderMarkdown default lost during merge")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("QUIZDECK_SERVER_URL", "http://10.0.0.5:8080/api/v1")
	t.Setenv("QUIZDECK_TIMEOUT_SECS", "42")
	t.Setenv("QUIZDECK_THEME", "light")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.BaseURL != "http://10.0.0.5:8080/api/v1" {
		t.Errorf("BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSecs != 42 {
		t.Errorf("TimeoutSecs = %d, want 42", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
}

func TestApplyEnvOverrides_IgnoresGarbageTimeout(t *testing.T) {
	t.Setenv("QUIZDECK_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if cfg.Server.TimeoutSecs != 10 {
		t.Errorf("TimeoutSecs = %d, want default 10", cfg.Server.TimeoutSecs)
	}
}

func TestGlobal_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
