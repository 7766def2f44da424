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
// REGISTER VIEW
// =============================================================================

type registerResultMsg struct {
	err error
}

// Register is the account-creation form. Registration does not sign the
// user in; on success the user is sent to the login view.
type Register struct {
	deps       Deps
	form       *editor
	spin       spinner.Model
	submitting bool
	errText    string
	width      int
	height     int
}

// NewRegister creates the registration view.
func NewRegister(deps Deps) *Register {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Register{
		deps: deps,
		spin: sp,
		form: newEditor(deps.Theme, []field{
			{label: "Username", placeholder: "username", limit: 80},
			{label: "Email", placeholder: "you@example.com"},
			{label: "Password", secret: true},
			{label: "Full name (optional)", limit: 100},
			{label: "Qualification (optional)", limit: 100},
			{label: "Date of birth (optional, YYYY-MM-DD)", limit: 10},
		}),
	}
}

// Init implements View.
func (r *Register) Init() tea.Cmd { return nil }

// SetSize implements View.
func (r *Register) SetSize(width, height int) {
	r.width = width
	r.height = height
}

func (r *Register) submit() tea.Cmd {
	values := r.form.values()
	reg := model.Registration{
		Username:      values[0],
		Email:         values[1],
		Password:      values[2],
		FullName:      values[3],
		Qualification: values[4],
		DOB:           values[5],
	}
	if reg.Username == "" || reg.Email == "" || reg.Password == "" {
		r.errText = "Username, email, and password are required."
		return nil
	}

	r.submitting = true
	r.errText = ""
	client := r.deps.API
	return tea.Batch(r.spin.Tick, func() tea.Msg {
		_, err := client.Register(context.Background(), reg)
		return registerResultMsg{err: err}
	})
}

// Update implements View.
func (r *Register) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		r.submitting = false
		if msg.err != nil {
			r.errText = msg.err.Error()
			return r, nil
		}
		return r, func() tea.Msg {
			return NavigateMsg{Route: nav.RouteLogin, Flash: "Account created — log in to get started."}
		}

	case spinner.TickMsg:
		if r.submitting {
			var cmd tea.Cmd
			r.spin, cmd = r.spin.Update(msg)
			return r, cmd
		}
		return r, nil

	case tea.KeyMsg:
		if r.submitting {
			return r, nil
		}
		switch msg.String() {
		case "esc":
			return r, Navigate(nav.RouteHome)
		case "tab", "down":
			r.form.next()
			return r, nil
		case "shift+tab", "up":
			r.form.prev()
			return r, nil
		case "enter":
			if r.form.atLastField() {
				return r, r.submit()
			}
			r.form.next()
			return r, nil
		}
	}

	return r, r.form.Update(msg)
}

// View implements View.
func (r *Register) View() string {
	theme := r.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — create an account")))
	b.WriteString("\n\n")
	b.WriteString(r.form.View())
	b.WriteString("\n\n")

	switch {
	case r.submitting:
		b.WriteString(r.spin.View() + theme.ListDim.Render(" creating account..."))
	case r.errText != "":
		b.WriteString(theme.Error.Render(r.errText))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Shortcuts("tab", "next field", "enter", "submit", "esc", "back"))
	return theme.App.Render(b.String())
}
