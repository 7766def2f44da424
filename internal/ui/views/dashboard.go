// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// dashboard.go - the role dashboards. Both are small menus; the admin one
// additionally shows a content summary fetched from the service.

package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
)

// =============================================================================
// ADMIN DASHBOARD
// =============================================================================

type subjectSummaryMsg struct {
	subjects []model.Subject
	err      error
}

// AdminDashboard is the admin landing view.
type AdminDashboard struct {
	deps     Deps
	items    []homeItem
	cursor   int
	subjects []model.Subject
	loaded   bool
	errText  string
	width    int
	height   int
}

// NewAdminDashboard creates the admin dashboard.
func NewAdminDashboard(deps Deps) *AdminDashboard {
	return &AdminDashboard{
		deps: deps,
		items: []homeItem{
			{label: "Manage subjects", route: nav.RouteManageSubjects},
			{label: "View scores", route: nav.RouteViewScores},
		},
	}
}

// Init implements View.
func (d *AdminDashboard) Init() tea.Cmd {
	client := d.deps.API
	return func() tea.Msg {
		subjects, err := client.Subjects(context.Background())
		return subjectSummaryMsg{subjects: subjects, err: err}
	}
}

// SetSize implements View.
func (d *AdminDashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update implements View.
func (d *AdminDashboard) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectSummaryMsg:
		d.loaded = true
		if msg.err != nil {
			d.errText = msg.err.Error()
		} else {
			d.subjects = msg.subjects
		}
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(d.items)-1 {
				d.cursor++
			}
		case "enter":
			return d, Navigate(d.items[d.cursor].route)
		case "l":
			return d, logoutCmd(d.deps)
		case "esc":
			return d, Navigate(nav.RouteHome)
		case "q", "ctrl+c":
			return d, tea.Quit
		}
	}
	return d, nil
}

// View implements View.
func (d *AdminDashboard) View() string {
	theme := d.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — admin dashboard")))
	b.WriteString("\n\n")

	if ident, ok := d.deps.Session.Identity(); ok {
		b.WriteString(theme.ListDim.Render("Signed in as " + ident.Username))
		b.WriteString("\n\n")
	}

	switch {
	case d.errText != "":
		b.WriteString(theme.Error.Render(d.errText))
		b.WriteString("\n\n")
	case d.loaded:
		b.WriteString(theme.Title.Render(fmt.Sprintf("%d subjects in the catalog", len(d.subjects))))
		b.WriteString("\n\n")
	}

	for i, item := range d.items {
		if i == d.cursor {
			b.WriteString(theme.MenuSelected.Render("> " + item.label))
		} else {
			b.WriteString(theme.MenuItem.Render(item.label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Shortcuts("enter", "select", "l", "log out", "q", "quit"))
	return theme.App.Render(b.String())
}

// =============================================================================
// USER DASHBOARD
// =============================================================================

// UserDashboard is the end-user landing view.
type UserDashboard struct {
	deps   Deps
	items  []homeItem
	cursor int
	width  int
	height int
}

// NewUserDashboard creates the user dashboard.
func NewUserDashboard(deps Deps) *UserDashboard {
	return &UserDashboard{
		deps: deps,
		items: []homeItem{
			{label: "Take a quiz", route: nav.RouteTakeQuiz},
			{label: "View scores", route: nav.RouteViewScores},
		},
	}
}

// Init implements View.
func (d *UserDashboard) Init() tea.Cmd { return nil }

// SetSize implements View.
func (d *UserDashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update implements View.
func (d *UserDashboard) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(d.items)-1 {
				d.cursor++
			}
		case "enter":
			return d, Navigate(d.items[d.cursor].route)
		case "l":
			return d, logoutCmd(d.deps)
		case "esc":
			return d, Navigate(nav.RouteHome)
		case "q", "ctrl+c":
			return d, tea.Quit
		}
	}
	return d, nil
}

// View implements View.
func (d *UserDashboard) View() string {
	theme := d.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — dashboard")))
	b.WriteString("\n\n")

	if ident, ok := d.deps.Session.Identity(); ok {
		b.WriteString(theme.ListDim.Render("Signed in as " + ident.Username))
		b.WriteString("\n\n")
	}

	for i, item := range d.items {
		if i == d.cursor {
			b.WriteString(theme.MenuSelected.Render("> " + item.label))
		} else {
			b.WriteString(theme.MenuItem.Render(item.label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Shortcuts("enter", "select", "l", "log out", "q", "quit"))
	return theme.App.Render(b.String())
}

// logoutCmd discards the session and returns to the landing view. Logout is
// purely client-side, so this is immediate.
func logoutCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if err := deps.API.Logout(); err != nil {
			return ErrMsg{Err: err}
		}
		return NavigateMsg{Route: nav.RouteHome, Flash: "Logged out."}
	}
}
