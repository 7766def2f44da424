// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for quizdeck.
//
// The default invocation starts the TUI; subcommands cover the scriptable
// operations (auth, status, config, history).
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdLogout
	CmdStatus
	CmdConfig
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool

	// Command-specific
	Email      string
	ConfigKey  string
	ConfigVal  string
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `quizdeck - a terminal client for the quiz service

Quizdeck is a TUI for browsing subjects, taking quizzes, and reviewing
scores. Admins manage the content catalog from the same interface.

Usage:
  quizdeck                    Start TUI (default)
  quizdeck login [email]      Sign in and store the auth token
  quizdeck logout             Discard the stored auth token
  quizdeck status, s          Show session and server status
  quizdeck config [show|set|path]  Configuration
  quizdeck history [list|clear]    Local quiz attempt history
  quizdeck version, -v        Show version
  quizdeck help, -h           Show this help

Config Commands:
  quizdeck config show              Display current configuration
  quizdeck config set KEY VALUE    Set a configuration value
  quizdeck config path              Show the config file location

  Keys: server.url, server.timeout_secs, storage.dir, ui.theme,
  ui.render_markdown

Environment:
  QUIZDECK_SERVER_URL      Override the quiz service URL
  QUIZDECK_TIMEOUT_SECS    Override the request timeout
  QUIZDECK_STORAGE_DIR     Override the data directory
  QUIZDECK_THEME           Override the UI theme (auto, dark, light)

The stored auth token lives in the data directory (default ~/.quizdeck)
with owner-only permissions. 'logout' removes it.
`

// Usage prints the help text.
func Usage() {
	fmt.Print(usageText)
}

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, Args) {
	args := Args{}
	argv := os.Args[1:]

	// Pull out global flags first; everything else is positional.
	var rest []string
	for _, arg := range argv {
		switch arg {
		case "--quiet", "-q":
			args.Quiet = true
		case "--verbose":
			args.Verbose = true
		case "--help", "-h":
			return CmdHelp, args
		case "--version", "-v":
			return CmdVersion, args
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(rest[0])
	rest = rest[1:]
	args.Raw = rest

	switch cmd {
	case "login":
		if len(rest) > 0 {
			args.Email = rest[0]
		}
		return CmdLogin, args
	case "logout":
		return CmdLogout, args
	case "status", "s":
		return CmdStatus, args
	case "config":
		if len(rest) > 0 {
			args.Subcommand = strings.ToLower(rest[0])
		}
		if len(rest) > 1 {
			args.ConfigKey = rest[1]
		}
		if len(rest) > 2 {
			args.ConfigVal = strings.Join(rest[2:], " ")
		}
		return CmdConfig, args
	case "history":
		if len(rest) > 0 {
			args.Subcommand = strings.ToLower(rest[0])
		}
		return CmdHistory, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, args
	}
}

// HandleVersion prints version information.
func HandleVersion(args Args) {
	fmt.Printf("quizdeck %s\n", Version)
	if args.Verbose {
		fmt.Printf("  commit: %s\n", GitCommit)
		fmt.Printf("  built:  %s\n", BuildDate)
	}
}
