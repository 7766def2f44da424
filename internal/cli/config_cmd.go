// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - 'quizdeck config'.

package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/quizdeck-tui/internal/config"
)

// HandleConfig shows or updates configuration.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "set":
		return configSet(args.ConfigKey, args.ConfigVal)
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s (want show, set, or path)", args.Subcommand)
	}
}

func configShow() error {
	cfg := config.Global()
	fmt.Printf("server.url          = %s\n", cfg.Server.BaseURL)
	fmt.Printf("server.timeout_secs = %d\n", cfg.Server.TimeoutSecs)
	fmt.Printf("storage.dir         = %s\n", cfg.StorageDir())
	fmt.Printf("ui.theme            = %s\n", cfg.UI.Theme)
	fmt.Printf("ui.render_markdown  = %t\n", cfg.UI.RenderMarkdown)
	return nil
}

func configSet(key, value string) error {
	if key == "" || value == "" {
		return fmt.Errorf("usage: quizdeck config set KEY VALUE")
	}

	cfg := config.Global()
	switch key {
	case "server.url":
		cfg.Server.BaseURL = value
	case "server.timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("server.timeout_secs must be a number: %q", value)
		}
		cfg.Server.TimeoutSecs = secs
	case "storage.dir":
		cfg.Storage.Dir = value
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.render_markdown":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.render_markdown must be true or false: %q", value)
		}
		cfg.UI.RenderMarkdown = enabled
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("Set %s.\n", key)
	return nil
}
