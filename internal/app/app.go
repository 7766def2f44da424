// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the root Bubble Tea model. It owns the active view and
// is the single place where navigation happens: every NavigateMsg passes
// through the guard before a view swap, so no screen can be reached in a
// session state that does not permit it.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/nav"
	"github.com/jeranaias/quizdeck-tui/internal/ui/views"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the top-level program model.
type Model struct {
	deps   views.Deps
	guard  *nav.Guard
	route  nav.Route
	view   views.View
	width  int
	height int
}

// New creates the root model on the landing view.
func New(deps views.Deps) Model {
	return Model{
		deps:  deps,
		guard: nav.NewGuard(deps.Session),
		route: nav.RouteHome,
		view:  views.NewHome(deps, ""),
	}
}

// Route returns the currently active route.
func (m Model) Route() nav.Route {
	return m.route
}

// ActiveView returns the currently mounted view.
func (m Model) ActiveView() views.View {
	return m.view
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.view.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.SetSize(msg.Width, msg.Height)
		return m, nil

	case views.NavigateMsg:
		return m.navigate(msg)
	}

	view, cmd := m.view.Update(msg)
	m.view = view
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.view.View()
}

// navigate runs the guard and mounts the resulting view. A redirect drops
// the request's payload: the corrected destination is always a payload-free
// route (login or a dashboard).
func (m Model) navigate(msg views.NavigateMsg) (tea.Model, tea.Cmd) {
	decision := m.guard.Check(msg.Route)
	if !decision.Allowed() {
		msg = views.NavigateMsg{Route: decision.Target}
	}

	m.route = msg.Route
	m.view = m.buildView(msg)
	m.view.SetSize(m.width, m.height)
	return m, m.view.Init()
}

// buildView constructs the view for a (guard-approved) navigation request.
// Parameterized routes missing their payload fall back to the nearest list
// view rather than mounting a broken screen.
func (m Model) buildView(msg views.NavigateMsg) views.View {
	switch msg.Route {
	case nav.RouteLogin:
		return views.NewLogin(m.deps, msg.Flash)
	case nav.RouteRegister:
		return views.NewRegister(m.deps)
	case nav.RouteAdminDashboard:
		return views.NewAdminDashboard(m.deps)
	case nav.RouteManageSubjects:
		return views.NewManageSubjects(m.deps)
	case nav.RouteManageChapters:
		if msg.Subject == nil {
			return views.NewManageSubjects(m.deps)
		}
		return views.NewManageChapters(m.deps, *msg.Subject)
	case nav.RouteManageQuizzes:
		if msg.Chapter == nil {
			return views.NewManageSubjects(m.deps)
		}
		return views.NewManageQuizzes(m.deps, *msg.Chapter)
	case nav.RouteManageQuestions:
		if msg.Quiz == nil {
			return views.NewManageSubjects(m.deps)
		}
		return views.NewManageQuestions(m.deps, *msg.Quiz)
	case nav.RouteUserDashboard:
		return views.NewUserDashboard(m.deps)
	case nav.RouteTakeQuiz:
		return views.NewTakeQuiz(m.deps)
	case nav.RouteStartQuiz:
		if msg.Quiz == nil {
			return views.NewTakeQuiz(m.deps)
		}
		return views.NewPlayer(m.deps, *msg.Quiz)
	case nav.RouteViewScores:
		return views.NewScores(m.deps)
	default:
		return views.NewHome(m.deps, msg.Flash)
	}
}
