// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// scores.go - score review. The server list is authoritative; the local
// attempt history adds quiz names and survives offline, so both are shown.

package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/history"
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
	"github.com/jeranaias/quizdeck-tui/internal/util"
)

// =============================================================================
// SCORES VIEW
// =============================================================================

type scoresLoadedMsg struct {
	scores []model.Score
	err    error
}

type attemptsLoadedMsg struct {
	attempts []history.Attempt
	err      error
}

type historyClearedMsg struct{}

// Scores shows recorded quiz attempts: the server's score list and the
// locally recorded attempt history.
type Scores struct {
	deps     Deps
	scores   []model.Score
	attempts []history.Attempt
	loaded   int
	errText  string
	width    int
	height   int
}

// NewScores creates the scores view.
func NewScores(deps Deps) *Scores {
	return &Scores{deps: deps}
}

// Init implements View.
func (s *Scores) Init() tea.Cmd {
	client := s.deps.API
	store := s.deps.History
	return tea.Batch(
		func() tea.Msg {
			scores, err := client.Scores(context.Background())
			return scoresLoadedMsg{scores: scores, err: err}
		},
		func() tea.Msg {
			if store == nil {
				return attemptsLoadedMsg{}
			}
			attempts, err := store.Recent(context.Background(), 25)
			return attemptsLoadedMsg{attempts: attempts, err: err}
		},
	)
}

// SetSize implements View.
func (s *Scores) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update implements View.
func (s *Scores) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case scoresLoadedMsg:
		s.loaded++
		if msg.err != nil {
			s.errText = msg.err.Error()
		} else {
			s.scores = msg.scores
		}
		return s, nil

	case attemptsLoadedMsg:
		s.loaded++
		if msg.err != nil {
			s.errText = msg.err.Error()
		} else {
			s.attempts = msg.attempts
		}
		return s, nil

	case historyClearedMsg:
		s.attempts = nil
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "x":
			store := s.deps.History
			if store == nil {
				return s, nil
			}
			return s, func() tea.Msg {
				if err := store.Clear(context.Background()); err != nil {
					return ErrMsg{Err: err}
				}
				return historyClearedMsg{}
			}
		case "esc":
			return s, Navigate(s.homeRoute())
		case "q", "ctrl+c":
			return s, tea.Quit
		}

	case ErrMsg:
		s.errText = msg.Err.Error()
		return s, nil
	}
	return s, nil
}

// homeRoute picks the dashboard matching the signed-in role.
func (s *Scores) homeRoute() nav.Route {
	if ident, ok := s.deps.Session.Identity(); ok {
		return nav.HomeFor(ident.Role)
	}
	return nav.RouteHome
}

// View implements View.
func (s *Scores) View() string {
	theme := s.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — scores")))
	b.WriteString("\n\n")

	if s.loaded < 2 {
		b.WriteString(theme.ListDim.Render("Loading scores..."))
		b.WriteString("\n\n")
		b.WriteString(theme.Shortcuts("esc", "back"))
		return theme.App.Render(b.String())
	}

	b.WriteString(theme.Title.Render("Recent attempts (this machine)"))
	b.WriteString("\n")
	if len(s.attempts) == 0 {
		b.WriteString(theme.ListDim.Render("No attempts recorded yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(theme.ListHeader.Render(util.PadWidth("Quiz", 30) +
			util.PadWidth("Score", 10) + util.PadWidth("%", 8) + "When"))
		b.WriteString("\n")
		for _, attempt := range s.attempts {
			row := util.PadWidth(util.TruncateWidth(attempt.QuizName, 28), 30) +
				util.PadWidth(fmt.Sprintf("%d/%d", attempt.Scored, attempt.Total), 10) +
				util.PadWidth(fmt.Sprintf("%.0f%%", attempt.Percentage()), 8) +
				attempt.TakenAt.Format("2006-01-02 15:04")
			b.WriteString(theme.ListRow.Render(row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Server records"))
	b.WriteString("\n")
	if len(s.scores) == 0 {
		b.WriteString(theme.ListDim.Render("No scores on the server."))
		b.WriteString("\n")
	} else {
		b.WriteString(theme.ListHeader.Render(util.PadWidth("Quiz ID", 10) +
			util.PadWidth("Scored", 10) + "When"))
		b.WriteString("\n")
		for _, score := range s.scores {
			when := "-"
			if !score.AttemptedAt.IsZero() {
				when = score.AttemptedAt.Format("2006-01-02 15:04")
			}
			row := util.PadWidth(fmt.Sprintf("%d", score.QuizID), 10) +
				util.PadWidth(fmt.Sprintf("%d", score.TotalScored), 10) + when
			b.WriteString(theme.ListRow.Render(row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if s.errText != "" {
		b.WriteString(theme.Error.Render(s.errText))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Shortcuts("x", "clear local history", "esc", "back", "q", "quit"))
	return theme.App.Render(b.String())
}
