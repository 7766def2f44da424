// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func parseArgv(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"quizdeck"}, argv...)
	t.Cleanup(func() { os.Args = old })
	return Parse()
}

func TestParseDefaultIsTUI(t *testing.T) {
	cmd, _ := parseArgv(t)
	if cmd != CmdTUI {
		t.Errorf("expected CmdTUI, got %v", cmd)
	}
}

func TestParseLoginWithEmail(t *testing.T) {
	cmd, args := parseArgv(t, "login", "sam@example.com")
	if cmd != CmdLogin {
		t.Fatalf("expected CmdLogin, got %v", cmd)
	}
	if args.Email != "sam@example.com" {
		t.Errorf("expected email to be captured, got %q", args.Email)
	}
}

func TestParseConfigSet(t *testing.T) {
	cmd, args := parseArgv(t, "config", "set", "ui.theme", "dark")
	if cmd != CmdConfig {
		t.Fatalf("expected CmdConfig, got %v", cmd)
	}
	if args.Subcommand != "set" || args.ConfigKey != "ui.theme" || args.ConfigVal != "dark" {
		t.Errorf("unexpected parse: %+v", args)
	}
}

func TestParseStatusAlias(t *testing.T) {
	cmd, _ := parseArgv(t, "s")
	if cmd != CmdStatus {
		t.Errorf("expected CmdStatus, got %v", cmd)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseArgv(t, "--quiet", "logout")
	if cmd != CmdLogout {
		t.Fatalf("expected CmdLogout, got %v", cmd)
	}
	if !args.Quiet {
		t.Error("expected quiet flag to be set")
	}
}

func TestParseUnknownCommandShowsHelp(t *testing.T) {
	cmd, _ := parseArgv(t, "frobnicate")
	if cmd != CmdHelp {
		t.Errorf("expected CmdHelp, got %v", cmd)
	}
}

func TestParseVersionFlag(t *testing.T) {
	cmd, _ := parseArgv(t, "-v")
	if cmd != CmdVersion {
		t.Errorf("expected CmdVersion, got %v", cmd)
	}
}
