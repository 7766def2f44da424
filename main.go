// quizdeck - a terminal client for the quiz service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/api"
	"github.com/jeranaias/quizdeck-tui/internal/app"
	"github.com/jeranaias/quizdeck-tui/internal/cli"
	"github.com/jeranaias/quizdeck-tui/internal/config"
	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/history"
	"github.com/jeranaias/quizdeck-tui/internal/session"
	"github.com/jeranaias/quizdeck-tui/internal/ui/styles"
	"github.com/jeranaias/quizdeck-tui/internal/ui/views"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdLogin:
		exitOnError(cli.HandleLogin(args))
	case cli.CmdLogout:
		exitOnError(cli.HandleLogout(args))
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdHistory:
		exitOnError(cli.HandleHistory(args))
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.Usage()
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(args cli.Args) {
	cfg := config.Global()
	_ = os.MkdirAll(cfg.StorageDir(), 0700)

	// Diagnostics go to a file; stderr belongs to the TUI.
	if logFile, err := os.OpenFile(filepath.Join(cfg.StorageDir(), "quizdeck.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600); err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	store := credstore.NewFileStore(cfg.StorageDir())
	sess := session.New(store)
	if sess.Restore() {
		log.Printf("main: restored stored session token")
	}

	client := api.NewClient(&api.Config{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Timeout(),
	}, sess)

	attempts, err := history.Open(cfg.StorageDir())
	if err != nil {
		// The TUI works without local history; scores just lose the
		// offline view.
		log.Printf("main: attempt history unavailable: %v", err)
		attempts = nil
	} else {
		defer attempts.Close()
	}

	deps := views.Deps{
		API:            client,
		Session:        sess,
		History:        attempts,
		Theme:          styles.NewTheme(cfg.UI.Theme),
		RenderMarkdown: cfg.UI.RenderMarkdown,
	}

	program := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
