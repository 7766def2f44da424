// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/quizdeck-tui/internal/api"
	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
	"github.com/jeranaias/quizdeck-tui/internal/session"
	"github.com/jeranaias/quizdeck-tui/internal/ui/styles"
	"github.com/jeranaias/quizdeck-tui/internal/ui/views"
)

func testDeps(t *testing.T) (views.Deps, *session.Session) {
	t.Helper()
	sess := session.New(credstore.NewFileStore(t.TempDir()))
	deps := views.Deps{
		API:     api.NewClient(nil, sess),
		Session: sess,
		Theme:   styles.NewTheme("dark"),
	}
	return deps, sess
}

func navigateTo(t *testing.T, m Model, msg views.NavigateMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestAnonymousNavigationToProtectedRouteMountsLogin(t *testing.T) {
	deps, _ := testDeps(t)
	m := New(deps)

	m = navigateTo(t, m, views.NavigateMsg{Route: nav.RouteAdminDashboard})

	assert.Equal(t, nav.RouteLogin, m.Route())
	assert.IsType(t, &views.Login{}, m.ActiveView())
}

func TestAdminNavigationToAdminRouteMountsDashboard(t *testing.T) {
	deps, sess := testDeps(t)
	require.NoError(t, sess.Authenticate(model.Identity{ID: 1, Username: "root", Role: model.RoleAdmin}, "tok"))
	m := New(deps)

	m = navigateTo(t, m, views.NavigateMsg{Route: nav.RouteAdminDashboard})

	assert.Equal(t, nav.RouteAdminDashboard, m.Route())
	assert.IsType(t, &views.AdminDashboard{}, m.ActiveView())
}

func TestUserNavigationToAdminRouteRedirectsToOwnDashboard(t *testing.T) {
	deps, sess := testDeps(t)
	require.NoError(t, sess.Authenticate(model.Identity{ID: 2, Username: "sam", Role: model.RoleUser}, "tok"))
	m := New(deps)

	m = navigateTo(t, m, views.NavigateMsg{Route: nav.RouteManageSubjects})

	assert.Equal(t, nav.RouteUserDashboard, m.Route())
	assert.IsType(t, &views.UserDashboard{}, m.ActiveView())
}

func TestRestoredSessionRedirectedToLoginOnRoleGatedRoute(t *testing.T) {
	dir := t.TempDir()
	store := credstore.NewFileStore(dir)
	require.NoError(t, store.Save("restored-token"))

	sess := session.New(store)
	require.True(t, sess.Restore())

	deps := views.Deps{
		API:     api.NewClient(nil, sess),
		Session: sess,
		Theme:   styles.NewTheme("dark"),
	}
	m := New(deps)

	// Auth-only route: reachable on the restored token alone.
	m = navigateTo(t, m, views.NavigateMsg{Route: nav.RouteTakeQuiz})
	assert.Equal(t, nav.RouteTakeQuiz, m.Route())

	// Role-gated route: no identity, so back to login.
	m = navigateTo(t, m, views.NavigateMsg{Route: nav.RouteUserDashboard})
	assert.Equal(t, nav.RouteLogin, m.Route())
}

func TestParameterizedRouteWithoutPayloadFallsBack(t *testing.T) {
	deps, sess := testDeps(t)
	require.NoError(t, sess.Authenticate(model.Identity{ID: 1, Username: "root", Role: model.RoleAdmin}, "tok"))
	m := New(deps)

	m = navigateTo(t, m, views.NavigateMsg{Route: nav.RouteManageChapters})

	assert.Equal(t, nav.RouteManageChapters, m.Route())
	assert.IsType(t, &views.ManageSubjects{}, m.ActiveView())
}

func TestRedirectDropsPayload(t *testing.T) {
	deps, sess := testDeps(t)
	require.NoError(t, sess.Authenticate(model.Identity{ID: 2, Username: "sam", Role: model.RoleUser}, "tok"))
	m := New(deps)

	quiz := model.Quiz{ID: 9, Name: "Algebra"}
	m = navigateTo(t, m, views.NavigateMsg{Route: nav.RouteManageQuizzes, Quiz: &quiz})

	assert.Equal(t, nav.RouteUserDashboard, m.Route())
	assert.IsType(t, &views.UserDashboard{}, m.ActiveView())
}
