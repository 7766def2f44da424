// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/nav"
)

// =============================================================================
// HOME VIEW
// =============================================================================

type homeItem struct {
	label string
	route nav.Route
	quit  bool
}

// Home is the landing view: a short menu whose entries depend on whether a
// session is active.
type Home struct {
	deps   Deps
	items  []homeItem
	cursor int
	flash  string
	width  int
	height int
}

// NewHome creates the landing view.
func NewHome(deps Deps, flash string) *Home {
	h := &Home{deps: deps, flash: flash}
	h.rebuildMenu()
	return h
}

func (h *Home) rebuildMenu() {
	h.items = h.items[:0]
	if h.deps.Session.IsAuthenticated() {
		if ident, ok := h.deps.Session.Identity(); ok {
			h.items = append(h.items, homeItem{label: "Open dashboard", route: nav.HomeFor(ident.Role)})
		} else {
			// Restored token, unknown role: a fresh login re-establishes it.
			h.items = append(h.items, homeItem{label: "Log in again", route: nav.RouteLogin})
		}
		h.items = append(h.items,
			homeItem{label: "View scores", route: nav.RouteViewScores},
		)
	} else {
		h.items = append(h.items,
			homeItem{label: "Log in", route: nav.RouteLogin},
			homeItem{label: "Register", route: nav.RouteRegister},
		)
	}
	h.items = append(h.items, homeItem{label: "Quit", quit: true})
	if h.cursor >= len(h.items) {
		h.cursor = 0
	}
}

// Init implements View.
func (h *Home) Init() tea.Cmd { return nil }

// SetSize implements View.
func (h *Home) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Update implements View.
func (h *Home) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if h.cursor < len(h.items)-1 {
				h.cursor++
			}
		case "enter":
			item := h.items[h.cursor]
			if item.quit {
				return h, tea.Quit
			}
			return h, Navigate(item.route)
		case "q", "ctrl+c":
			return h, tea.Quit
		}
	}
	return h, nil
}

// View implements View.
func (h *Home) View() string {
	theme := h.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — quiz practice, in your terminal")))
	b.WriteString("\n\n")

	if ident, ok := h.deps.Session.Identity(); ok {
		b.WriteString(theme.ListDim.Render(fmt.Sprintf("Signed in as %s (%s)", ident.Username, ident.Role)))
		b.WriteString("\n\n")
	} else if h.deps.Session.IsAuthenticated() {
		b.WriteString(theme.Warning.Render("Signed in from a saved credential — log in again to restore your role."))
		b.WriteString("\n\n")
	}

	if h.flash != "" {
		b.WriteString(theme.Success.Render(h.flash))
		b.WriteString("\n\n")
	}

	for i, item := range h.items {
		if i == h.cursor {
			b.WriteString(theme.MenuSelected.Render("> " + item.label))
		} else {
			b.WriteString(theme.MenuItem.Render(item.label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Shortcuts("↑/↓", "move", "enter", "select", "q", "quit"))
	return theme.App.Render(b.String())
}
