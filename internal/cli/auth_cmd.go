// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth_cmd.go - 'quizdeck login' and 'quizdeck logout'.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jeranaias/quizdeck-tui/internal/api"
	"github.com/jeranaias/quizdeck-tui/internal/config"
	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/session"
)

// HandleLogin signs in and stores the auth token for subsequent runs.
func HandleLogin(args Args) error {
	cfg := config.Global()

	email := args.Email
	if email == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	sess := session.New(credstore.NewFileStore(cfg.StorageDir()))
	client := api.NewClient(&api.Config{BaseURL: cfg.Server.BaseURL, Timeout: cfg.Timeout()}, sess)

	resp, err := client.Login(context.Background(), model.Credentials{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	if args.Quiet {
		return nil
	}
	fmt.Printf("Signed in as %s (%s).\n", resp.Username, resp.Role)
	return nil
}

// HandleLogout discards the stored auth token. Idempotent: logging out while
// logged out is not an error.
func HandleLogout(args Args) error {
	cfg := config.Global()
	store := credstore.NewFileStore(cfg.StorageDir())

	_, had := store.Load()
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear stored token: %w", err)
	}

	if args.Quiet {
		return nil
	}
	if had {
		fmt.Println("Signed out.")
	} else {
		fmt.Println("No stored session.")
	}
	return nil
}
