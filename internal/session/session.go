// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"sync"

	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/model"
)

// =============================================================================
// SESSION
// =============================================================================

// Session is the single source of truth for "who is using the client".
// It is constructed once at startup and passed to the API client and the
// navigation guard; there is no package-level global.
//
// Safe for concurrent use. The TUI event loop is single-threaded, but
// tea.Cmd goroutines and CLI handlers may read the session concurrently.
type Session struct {
	mu    sync.RWMutex
	token string
	ident *model.Identity

	store credstore.Store
}

// New creates an empty (anonymous) session backed by the given store.
func New(store credstore.Store) *Session {
	return &Session{store: store}
}

// =============================================================================
// MUTATION
// =============================================================================

// Authenticate installs the given identity and token as the current session
// and persists the token. The durable write happens before the in-memory
// state becomes observable; if persistence fails the session is left
// unchanged and the error is returned.
func (s *Session) Authenticate(ident model.Identity, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	identCopy := ident
	s.token = token
	s.ident = &identCopy
	return nil
}

// Deauthenticate resets the session to anonymous and removes the persisted
// token. Idempotent: deauthenticating an anonymous session is a no-op.
func (s *Session) Deauthenticate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	s.token = ""
	s.ident = nil
	return nil
}

// Restore pulls a previously persisted token into the session at startup.
// Identity stays absent: the restored session can attach the token to
// requests but carries no role until the user logs in again. Returns true
// if a token was recovered.
//
// Restore must only be called on an anonymous session; calling it after
// Authenticate would discard the confirmed identity.
func (s *Session) Restore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return false
	}
	token, ok := s.store.Load()
	if !ok {
		return false
	}
	s.token = token
	return true
}

// =============================================================================
// INSPECTION
// =============================================================================

// IsAuthenticated reports whether a bearer token is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// HasRole reports whether an identity is present and carries the given role.
// A restored session (token without identity) has no role.
func (s *Session) HasRole(role model.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ident != nil && s.ident.Role == role
}

// Token returns the current bearer token, or "" for an anonymous session.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the current identity, or ok=false if none is held
// (anonymous session, or token restored from disk without a login).
func (s *Session) Identity() (model.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ident == nil {
		return model.Identity{}, false
	}
	return *s.ident, true
}
