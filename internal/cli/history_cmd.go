// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - 'quizdeck history'.

package cli

import (
	"context"
	"fmt"

	"github.com/jeranaias/quizdeck-tui/internal/config"
	"github.com/jeranaias/quizdeck-tui/internal/history"
)

// HandleHistory lists or clears the locally recorded quiz attempts.
func HandleHistory(args Args) error {
	cfg := config.Global()

	store, err := history.Open(cfg.StorageDir())
	if err != nil {
		return fmt.Errorf("failed to open attempt history: %w", err)
	}
	defer store.Close()

	switch args.Subcommand {
	case "", "list":
		return historyList(store)
	case "clear":
		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("Attempt history cleared.")
		return nil
	default:
		return fmt.Errorf("unknown history subcommand: %s (want list or clear)", args.Subcommand)
	}
}

func historyList(store *history.Store) error {
	attempts, err := store.Recent(context.Background(), 50)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		return nil
	}

	fmt.Printf("%-32s %-10s %-6s %s\n", "QUIZ", "SCORE", "%", "WHEN")
	for _, attempt := range attempts {
		fmt.Printf("%-32s %-10s %-6s %s\n",
			attempt.QuizName,
			fmt.Sprintf("%d/%d", attempt.Scored, attempt.Total),
			fmt.Sprintf("%.0f%%", attempt.Percentage()),
			attempt.TakenAt.Format("2006-01-02 15:04"))
	}
	return nil
}
