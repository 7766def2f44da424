// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/session"
)

func anonymousGuard(t *testing.T) *Guard {
	t.Helper()
	return NewGuard(session.New(credstore.NewFileStore(t.TempDir())))
}

func guardWithRole(t *testing.T, role model.Role) *Guard {
	t.Helper()
	sess := session.New(credstore.NewFileStore(t.TempDir()))
	require.NoError(t, sess.Authenticate(model.Identity{ID: 1, Username: "u", Role: role}, "tok"))
	return NewGuard(sess)
}

// Every protected route redirects an anonymous session to login.
func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	guard := anonymousGuard(t)

	protected := []Route{
		RouteAdminDashboard, RouteManageSubjects, RouteManageChapters,
		RouteManageQuizzes, RouteManageQuestions, RouteUserDashboard,
		RouteTakeQuiz, RouteStartQuiz, RouteViewScores,
	}
	for _, route := range protected {
		decision := guard.Check(route)
		assert.False(t, decision.Allowed(), "route %s should not be reachable anonymously", route)
		assert.Equal(t, RouteLogin, decision.Target, "route %s should bounce to login", route)
	}
}

// Public routes are allowed regardless of session contents.
func TestGuard_PublicRoutesAlwaysAllowed(t *testing.T) {
	guards := map[string]*Guard{
		"anonymous": anonymousGuard(t),
		"admin":     guardWithRole(t, model.RoleAdmin),
		"user":      guardWithRole(t, model.RoleUser),
	}

	for name, guard := range guards {
		for _, route := range []Route{RouteHome, RouteLogin, RouteRegister} {
			assert.True(t, guard.Check(route).Allowed(), "%s session should reach %s", name, route)
		}
	}
}

// A role mismatch redirects to the identity's own dashboard, never to login.
func TestGuard_RoleMismatchRedirectsToOwnHome(t *testing.T) {
	userGuard := guardWithRole(t, model.RoleUser)
	decision := userGuard.Check(RouteAdminDashboard)
	assert.False(t, decision.Allowed())
	assert.Equal(t, RouteUserDashboard, decision.Target)

	adminGuard := guardWithRole(t, model.RoleAdmin)
	decision = adminGuard.Check(RouteUserDashboard)
	assert.False(t, decision.Allowed())
	assert.Equal(t, RouteAdminDashboard, decision.Target)
}

func TestGuard_MatchingRoleAllowed(t *testing.T) {
	assert.True(t, guardWithRole(t, model.RoleAdmin).Check(RouteAdminDashboard).Allowed())
	assert.True(t, guardWithRole(t, model.RoleUser).Check(RouteUserDashboard).Allowed())
}

// Multi-role policies use the same membership test as single-role ones.
func TestGuard_MultiRolePolicy(t *testing.T) {
	assert.True(t, guardWithRole(t, model.RoleAdmin).Check(RouteViewScores).Allowed())
	assert.True(t, guardWithRole(t, model.RoleUser).Check(RouteViewScores).Allowed())
	assert.False(t, anonymousGuard(t).Check(RouteViewScores).Allowed())
}

// Auth-only routes admit any authenticated role.
func TestGuard_AuthOnlyRoutes(t *testing.T) {
	for _, role := range []model.Role{model.RoleAdmin, model.RoleUser} {
		guard := guardWithRole(t, role)
		assert.True(t, guard.Check(RouteTakeQuiz).Allowed())
		assert.True(t, guard.Check(RouteStartQuiz).Allowed())
	}
}

// A session restored from disk has a token but no identity: auth-only
// routes open, role-gated routes bounce to login.
func TestGuard_RestoredSessionHasNoRole(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, credstore.NewFileStore(dir).Save("persisted-token"))

	sess := session.New(credstore.NewFileStore(dir))
	require.True(t, sess.Restore())
	guard := NewGuard(sess)

	assert.True(t, guard.Check(RouteTakeQuiz).Allowed())

	decision := guard.Check(RouteAdminDashboard)
	assert.False(t, decision.Allowed())
	assert.Equal(t, RouteLogin, decision.Target)
}

// Logout closes the door again (scenario: logout then navigate).
func TestGuard_AfterLogout(t *testing.T) {
	sess := session.New(credstore.NewFileStore(t.TempDir()))
	require.NoError(t, sess.Authenticate(model.Identity{ID: 1, Role: model.RoleUser}, "tok"))
	guard := NewGuard(sess)

	require.True(t, guard.Check(RouteUserDashboard).Allowed())

	require.NoError(t, sess.Deauthenticate())
	decision := guard.Check(RouteUserDashboard)
	assert.False(t, decision.Allowed())
	assert.Equal(t, RouteLogin, decision.Target)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", RouteHome},
		{"/login", RouteLogin},
		{"/register", RouteRegister},
		{"/admin-dashboard", RouteAdminDashboard},
		{"/manage-subjects", RouteManageSubjects},
		{"/manage-subjects/4/chapters", RouteManageChapters},
		{"/manage-chapters/9/quizzes", RouteManageQuizzes},
		{"/manage-quizzes/2/questions", RouteManageQuestions},
		{"/start-quiz/17", RouteStartQuiz},
		{"/view-scores", RouteViewScores},
		// Unmatched paths fall through to home.
		{"/no-such-page", RouteHome},
		{"/manage-subjects/4", RouteHome},
		{"/start-quiz", RouteHome},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.path))
		})
	}
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, RouteAdminDashboard, HomeFor(model.RoleAdmin))
	assert.Equal(t, RouteUserDashboard, HomeFor(model.RoleUser))
	assert.Equal(t, RouteUserDashboard, HomeFor(model.Role("unknown")))
}

func TestPolicyFor_UndeclaredRouteIsPublic(t *testing.T) {
	policy := PolicyFor(Route("not-declared"))
	assert.False(t, policy.RequiresAuth)
	assert.Empty(t, policy.Roles)
}
