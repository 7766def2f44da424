// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/session"
)

// =============================================================================
// DECISIONS
// =============================================================================

// Action is the outcome class of a guard evaluation.
type Action int

const (
	// ActionAllow lets the navigation proceed.
	ActionAllow Action = iota
	// ActionRedirect sends the navigation to Decision.Target instead.
	ActionRedirect
)

// Decision is the terminal result of evaluating one navigation attempt.
type Decision struct {
	Action Action
	Target Route // Destination when Action is ActionRedirect
}

// Allowed reports whether the navigation may proceed as requested.
func (d Decision) Allowed() bool {
	return d.Action == ActionAllow
}

func allow() Decision {
	return Decision{Action: ActionAllow}
}

func redirect(target Route) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

// =============================================================================
// GUARD
// =============================================================================

// Guard evaluates route access policies against the session. It is
// stateless across attempts and never errors: every evaluation terminates
// in allow or redirect.
type Guard struct {
	session *session.Session
}

// NewGuard creates a guard over the given session.
func NewGuard(sess *session.Session) *Guard {
	return &Guard{session: sess}
}

// Check evaluates a navigation attempt to the given route.
//
// Order of evaluation:
//  1. Public routes are always allowed, whatever the session holds.
//  2. Protected route + anonymous session: redirect to login. The attempt
//     is corrected, not rejected.
//  3. Role-restricted route + role not in the allowed set: redirect to the
//     identity's own dashboard. A session whose token was restored from
//     disk carries no identity, and therefore no role; it is bounced to
//     login so the role can be re-established.
//  4. Otherwise: allowed.
func (g *Guard) Check(route Route) Decision {
	policy := PolicyFor(route)

	if !policy.RequiresAuth {
		return allow()
	}

	if !g.session.IsAuthenticated() {
		return redirect(RouteLogin)
	}

	if len(policy.Roles) > 0 {
		ident, ok := g.session.Identity()
		if !ok {
			return redirect(RouteLogin)
		}
		if !roleAllowed(policy.Roles, ident.Role) {
			return redirect(HomeFor(ident.Role))
		}
	}

	return allow()
}

// CheckPath resolves a raw path and evaluates the resulting route.
func (g *Guard) CheckPath(path string) (Route, Decision) {
	route := Resolve(path)
	return route, g.Check(route)
}

// roleAllowed is a plain membership test; single-role and multi-role
// policies are checked identically.
func roleAllowed(allowed []model.Role, role model.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
