// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/model"
)

func newTestSession(t *testing.T) (*Session, credstore.Store) {
	t.Helper()
	store := credstore.NewFileStore(t.TempDir())
	return New(store), store
}

func adminIdentity() model.Identity {
	return model.Identity{ID: 7, Username: "root", Role: model.RoleAdmin}
}

func TestSession_AuthenticateSetsBothHalves(t *testing.T) {
	s, store := newTestSession(t)

	require.NoError(t, s.Authenticate(adminIdentity(), "T1"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "T1", s.Token())

	ident, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, ident.Role)
	assert.Equal(t, 7, ident.ID)

	// The durable store holds the same credential.
	stored, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "T1", stored)
}

func TestSession_DeauthenticateClearsBothHalves(t *testing.T) {
	s, store := newTestSession(t)
	require.NoError(t, s.Authenticate(adminIdentity(), "T1"))

	require.NoError(t, s.Deauthenticate())

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	_, ok := s.Identity()
	assert.False(t, ok)
	_, ok = store.Load()
	assert.False(t, ok, "store should be empty after deauthenticate")
}

func TestSession_DeauthenticateIdempotent(t *testing.T) {
	s, _ := newTestSession(t)

	// Logging out while anonymous raises no error and changes nothing.
	require.NoError(t, s.Deauthenticate())
	require.NoError(t, s.Deauthenticate())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_HasRole(t *testing.T) {
	s, _ := newTestSession(t)

	assert.False(t, s.HasRole(model.RoleAdmin), "anonymous session has no role")

	require.NoError(t, s.Authenticate(adminIdentity(), "T1"))
	assert.True(t, s.HasRole(model.RoleAdmin))
	assert.False(t, s.HasRole(model.RoleUser))
}

func TestSession_RestoreRecoversTokenOnly(t *testing.T) {
	store := credstore.NewFileStore(t.TempDir())
	first := New(store)
	require.NoError(t, first.Authenticate(adminIdentity(), "T1"))

	// Simulated restart: new session over the same store.
	second := New(store)
	assert.False(t, second.IsAuthenticated())

	require.True(t, second.Restore())
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "T1", second.Token())

	// Identity is not recoverable from disk: role stays unknown.
	_, ok := second.Identity()
	assert.False(t, ok)
	assert.False(t, second.HasRole(model.RoleAdmin))
}

func TestSession_RestoreOnEmptyStore(t *testing.T) {
	s, _ := newTestSession(t)
	assert.False(t, s.Restore())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_RestoreNeverClobbersLogin(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Authenticate(adminIdentity(), "T1"))

	assert.False(t, s.Restore())
	ident, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, ident.Role)
}

// failingStore rejects writes, for exercising the ordering requirement.
type failingStore struct{}

func (failingStore) Save(string) error { return errors.New("disk full") }

func (failingStore) Load() (string, bool) { return "", false }

func (failingStore) Clear() error { return nil }

func TestSession_AuthenticateFailedPersistLeavesSessionAnonymous(t *testing.T) {
	s := New(failingStore{})

	err := s.Authenticate(adminIdentity(), "T1")
	require.Error(t, err)

	// Durable write failed, so the in-memory half must not have flipped.
	assert.False(t, s.IsAuthenticated())
	_, ok := s.Identity()
	assert.False(t, ok)
}

func TestSession_ConcurrentReaders(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Authenticate(adminIdentity(), "T1"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.IsAuthenticated()
			_ = s.Token()
			_, _ = s.Identity()
			_ = s.HasRole(model.RoleAdmin)
		}()
	}
	wg.Wait()
}
