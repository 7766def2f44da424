// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/quizdeck-tui/internal/credstore"
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Session, credstore.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := credstore.NewFileStore(t.TempDir())
	sess := session.New(store)
	client := NewClient(&Config{BaseURL: server.URL}, sess)
	return client, sess, store
}

func TestLogin_CommitsSessionAndStore(t *testing.T) {
	client, sess, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var creds model.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "root@quizdeck.dev", creds.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Logged in successfully",
			"auth_token": "T1",
			"id":         7,
			"role":       "admin",
		})
	}))

	resp, err := client.Login(context.Background(), model.Credentials{
		Email:    "root@quizdeck.dev",
		Password: "hunter2A",
	})
	require.NoError(t, err)
	assert.Equal(t, "T1", resp.AuthToken)

	// Session holds both halves.
	assert.True(t, sess.IsAuthenticated())
	ident, ok := sess.Identity()
	require.True(t, ok)
	assert.Equal(t, 7, ident.ID)
	assert.Equal(t, model.RoleAdmin, ident.Role)

	// Durable store holds the same credential.
	stored, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "T1", stored)
}

func TestLogin_RejectionLeavesSessionUntouched(t *testing.T) {
	client, sess, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))

	_, err := client.Login(context.Background(), model.Credentials{Email: "x", Password: "y"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.True(t, apiErr.IsAuthError())

	// A failed login never partially authenticates.
	assert.False(t, sess.IsAuthenticated())
	_, ok := store.Load()
	assert.False(t, ok)
}

func TestLogin_MissingTokenIsAnError(t *testing.T) {
	client, sess, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))

	_, err := client.Login(context.Background(), model.Credentials{Email: "x", Password: "y"})
	require.ErrorIs(t, err, ErrNoToken)
	assert.False(t, sess.IsAuthenticated())
}

func TestBearerAttachment_AfterLogin(t *testing.T) {
	var sawAuth []string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			json.NewEncoder(w).Encode(map[string]any{"auth_token": "T1", "id": 7, "role": "admin"})
			return
		}
		sawAuth = append(sawAuth, r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))

	_, err := client.Login(context.Background(), model.Credentials{Email: "a", Password: "b"})
	require.NoError(t, err)

	// Every subsequent call carries the exact issued credential.
	_, err = client.Subjects(context.Background())
	require.NoError(t, err)
	_, err = client.Scores(context.Background())
	require.NoError(t, err)

	require.Len(t, sawAuth, 2)
	for _, got := range sawAuth {
		assert.Equal(t, "Bearer T1", got)
	}
}

func TestBearerAttachment_AbsentWhenAnonymous(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Absence of a credential is not a client-side error; the request
		// goes out unauthenticated and the server decides.
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))

	_, err := client.Subjects(context.Background())
	require.NoError(t, err)
}

func TestBearerAttachment_RestoredToken(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, credstore.NewFileStore(dir).Save("T-old"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T-old", r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)

	// Cold start: the session restores the persisted token before the first
	// request is made.
	sess := session.New(credstore.NewFileStore(dir))
	require.True(t, sess.Restore())
	client := NewClient(&Config{BaseURL: server.URL}, sess)

	_, err := client.Scores(context.Background())
	require.NoError(t, err)
}

func TestRegister_DoesNotMutateSession(t *testing.T) {
	client, sess, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": 12, "username": "newbie", "role": "user"})
	}))

	ident, err := client.Register(context.Background(), model.Registration{
		Username: "newbie",
		Email:    "n@quizdeck.dev",
		Password: "hunter2A",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, ident.ID)

	// Registration issues no credential.
	assert.False(t, sess.IsAuthenticated())
}

func TestLogout_ClearsSessionWithoutNetwork(t *testing.T) {
	requests := 0
	client, sess, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			json.NewEncoder(w).Encode(map[string]any{"auth_token": "T1", "id": 7, "role": "user"})
			return
		}
		requests++
	}))

	_, err := client.Login(context.Background(), model.Credentials{Email: "a", Password: "b"})
	require.NoError(t, err)

	require.NoError(t, client.Logout())
	assert.False(t, sess.IsAuthenticated())
	_, ok := store.Load()
	assert.False(t, ok)
	assert.Zero(t, requests, "logout must not hit the network")

	// Idempotent.
	require.NoError(t, client.Logout())
}

func TestDo_TransportErrorPropagates(t *testing.T) {
	store := credstore.NewFileStore(t.TempDir())
	sess := session.New(store)
	// Nothing listens here.
	client := NewClient(&Config{BaseURL: "http://127.0.0.1:1"}, sess)

	_, err := client.Subjects(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure must not masquerade as a rejection")
}

func TestDo_ErrorBodyShapes(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))

	_, err := client.Scores(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "boom", apiErr.Message)
	assert.False(t, apiErr.IsAuthError())
}

func TestQuizzes_QueryParameter(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quizzes", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("chapter_id"))
		json.NewEncoder(w).Encode([]model.Quiz{{ID: 1, ChapterID: 3, Name: "Algebra I"}})
	}))

	quizzes, err := client.Quizzes(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, "Algebra I", quizzes[0].Name)
}

func TestSubmitQuiz(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quizzes/9/submit", r.URL.Path)
		var sub QuizSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "B", sub.Answers["4"])
		json.NewEncoder(w).Encode(SubmissionResult{TotalScored: 1, TotalMarks: 2})
	}))

	result, err := client.SubmitQuiz(context.Background(), 9, QuizSubmission{
		Answers:   map[string]string{"4": "B"},
		TimeTaken: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalScored)
}
