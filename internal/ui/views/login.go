// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
)

// =============================================================================
// LOGIN VIEW
// =============================================================================

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	resp model.LoginResponse
	err  error
}

// Login is the sign-in form. A successful login lands on the
// role-appropriate dashboard.
type Login struct {
	deps       Deps
	form       *editor
	spin       spinner.Model
	submitting bool
	errText    string
	flash      string
	width      int
	height     int
}

// NewLogin creates the login view. flash is an optional status line (e.g.
// after a successful registration).
func NewLogin(deps Deps, flash string) *Login {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Login{
		deps:  deps,
		flash: flash,
		spin:  sp,
		form: newEditor(deps.Theme, []field{
			{label: "Email", placeholder: "you@example.com"},
			{label: "Password", secret: true},
		}),
	}
}

// Init implements View.
func (l *Login) Init() tea.Cmd { return nil }

// SetSize implements View.
func (l *Login) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *Login) submit() tea.Cmd {
	values := l.form.values()
	creds := model.Credentials{Email: values[0], Password: values[1]}
	if creds.Email == "" || creds.Password == "" {
		l.errText = "Email and password are required."
		return nil
	}

	l.submitting = true
	l.errText = ""
	client := l.deps.API
	return tea.Batch(l.spin.Tick, func() tea.Msg {
		resp, err := client.Login(context.Background(), creds)
		return loginResultMsg{resp: resp, err: err}
	})
}

// Update implements View.
func (l *Login) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		l.submitting = false
		if msg.err != nil {
			l.errText = msg.err.Error()
			return l, nil
		}
		return l, Navigate(nav.HomeFor(msg.resp.Role))

	case spinner.TickMsg:
		if l.submitting {
			var cmd tea.Cmd
			l.spin, cmd = l.spin.Update(msg)
			return l, cmd
		}
		return l, nil

	case tea.KeyMsg:
		if l.submitting {
			return l, nil
		}
		switch msg.String() {
		case "esc":
			return l, Navigate(nav.RouteHome)
		case "tab", "down":
			l.form.next()
			return l, nil
		case "shift+tab", "up":
			l.form.prev()
			return l, nil
		case "enter":
			if l.form.atLastField() {
				return l, l.submit()
			}
			l.form.next()
			return l, nil
		}
	}

	return l, l.form.Update(msg)
}

// View implements View.
func (l *Login) View() string {
	theme := l.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — sign in")))
	b.WriteString("\n\n")

	if l.flash != "" {
		b.WriteString(theme.Success.Render(l.flash))
		b.WriteString("\n\n")
	}

	b.WriteString(l.form.View())
	b.WriteString("\n\n")

	switch {
	case l.submitting:
		b.WriteString(l.spin.View() + theme.ListDim.Render(" signing in..."))
	case l.errText != "":
		b.WriteString(theme.Error.Render(l.errText))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Shortcuts("tab", "next field", "enter", "submit", "esc", "back"))
	return theme.App.Render(b.String())
}
