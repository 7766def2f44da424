// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"strings"

	"github.com/jeranaias/quizdeck-tui/internal/model"
)

// =============================================================================
// ROUTES
// =============================================================================

// Route identifies a navigable view.
type Route string

const (
	// Public routes
	RouteHome     Route = "home"
	RouteLogin    Route = "login"
	RouteRegister Route = "register"

	// Admin routes
	RouteAdminDashboard  Route = "admin-dashboard"
	RouteManageSubjects  Route = "manage-subjects"
	RouteManageChapters  Route = "manage-chapters"
	RouteManageQuizzes   Route = "manage-quizzes"
	RouteManageQuestions Route = "manage-questions"

	// User routes
	RouteUserDashboard Route = "user-dashboard"
	RouteTakeQuiz      Route = "take-quiz"
	RouteStartQuiz     Route = "start-quiz"
	RouteViewScores    Route = "view-scores"
)

// =============================================================================
// ACCESS POLICIES
// =============================================================================

// Policy is a route's static access rule. Roles is always a set: empty
// means unrestricted (any authenticated role); a single-role restriction is
// just a one-element set, checked with the same membership test as any
// other.
type Policy struct {
	RequiresAuth bool
	Roles        []model.Role
}

// policies is built once and never mutated. Routes absent from this table
// are public.
var policies = map[Route]Policy{
	RouteAdminDashboard:  {RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},
	RouteManageSubjects:  {RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},
	RouteManageChapters:  {RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},
	RouteManageQuizzes:   {RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},
	RouteManageQuestions: {RequiresAuth: true, Roles: []model.Role{model.RoleAdmin}},

	RouteUserDashboard: {RequiresAuth: true, Roles: []model.Role{model.RoleUser}},
	RouteTakeQuiz:      {RequiresAuth: true},
	RouteStartQuiz:     {RequiresAuth: true},
	RouteViewScores:    {RequiresAuth: true, Roles: []model.Role{model.RoleAdmin, model.RoleUser}},
}

// PolicyFor returns the access policy for a route. Routes without a
// declared policy are public.
func PolicyFor(route Route) Policy {
	return policies[route]
}

// HomeFor returns the role-appropriate landing route.
func HomeFor(role model.Role) Route {
	if role == model.RoleAdmin {
		return RouteAdminDashboard
	}
	return RouteUserDashboard
}

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// routePaths maps path patterns to routes. Segments of the form {x} match
// any single segment.
var routePaths = []struct {
	pattern string
	route   Route
}{
	{"/", RouteHome},
	{"/login", RouteLogin},
	{"/register", RouteRegister},
	{"/admin-dashboard", RouteAdminDashboard},
	{"/manage-subjects", RouteManageSubjects},
	{"/manage-subjects/{subjectId}/chapters", RouteManageChapters},
	{"/manage-chapters/{chapterId}/quizzes", RouteManageQuizzes},
	{"/manage-quizzes/{quizId}/questions", RouteManageQuestions},
	{"/user-dashboard", RouteUserDashboard},
	{"/take-quiz", RouteTakeQuiz},
	{"/start-quiz/{quizId}", RouteStartQuiz},
	{"/view-scores", RouteViewScores},
}

// Resolve maps a path to its route. Unmatched paths fall through to the
// home route rather than erroring (catch-all behavior).
func Resolve(path string) Route {
	for _, rp := range routePaths {
		if matchPath(rp.pattern, path) {
			return rp.route
		}
	}
	return RouteHome
}

// matchPath compares a pattern against a concrete path segment by segment.
func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	ts := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(ts) {
		return false
	}
	for i, seg := range ps {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if ts[i] == "" {
				return false
			}
			continue
		}
		if seg != ts[i] {
			return false
		}
	}
	return true
}
