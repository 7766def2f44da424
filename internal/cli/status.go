// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - 'quizdeck status'.

package cli

import (
	"fmt"

	"github.com/jeranaias/quizdeck-tui/internal/config"
	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/session"
)

// HandleStatus prints the session and configuration state. It never talks to
// the server; the stored token's validity is only known once a request is
// made with it.
func HandleStatus(args Args) {
	cfg := config.Global()

	fmt.Printf("quizdeck %s\n\n", Version)

	sess := session.New(credstore.NewFileStore(cfg.StorageDir()))
	if sess.Restore() {
		fmt.Println("Session:  stored token present (validated on first request)")
	} else {
		fmt.Println("Session:  signed out")
	}

	fmt.Printf("Server:   %s\n", cfg.Server.BaseURL)
	fmt.Printf("Timeout:  %s\n", cfg.Timeout())
	fmt.Printf("Storage:  %s\n", cfg.StorageDir())
	fmt.Printf("Theme:    %s\n", cfg.UI.Theme)

	if path, err := config.ConfigPathTOML(); err == nil {
		fmt.Printf("Config:   %s\n", path)
	}
}
