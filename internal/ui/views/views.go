// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/api"
	"github.com/jeranaias/quizdeck-tui/internal/history"
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
	"github.com/jeranaias/quizdeck-tui/internal/session"
	"github.com/jeranaias/quizdeck-tui/internal/ui/styles"
)

// =============================================================================
// VIEW INTERFACE
// =============================================================================

// View is one screen of the TUI.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Deps carries the shared collaborators every view may need. The session is
// read-only from a view's perspective; only the API client mutates it.
type Deps struct {
	API            *api.Client
	Session        *session.Session
	History        *history.Store
	Theme          *styles.Theme
	RenderMarkdown bool
}

// =============================================================================
// CROSS-VIEW MESSAGES
// =============================================================================

// NavigateMsg asks the app model for a route transition. The optional
// payload fields parameterize the target view (which subject's chapters,
// which quiz to start, ...). The app model consults the navigation guard
// before honoring the request.
type NavigateMsg struct {
	Route   nav.Route
	Subject *model.Subject
	Chapter *model.Chapter
	Quiz    *model.Quiz

	// Flash is an optional status line shown by the target view.
	Flash string
}

// Navigate returns a command that requests a plain route transition.
func Navigate(route nav.Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

// ErrMsg reports a failed background operation to the active view.
type ErrMsg struct {
	Err error
}
