// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/quizdeck-tui/internal/model"
)

// =============================================================================
// AUTH OPERATIONS
// =============================================================================

// Login authenticates against the quiz service. On success the issued token
// and identity are committed to the session (which persists the token) and
// the full response is returned. On failure the session is left untouched;
// the error is the server's rejection or the transport failure, unchanged.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.LoginResponse, error) {
	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, creds, &resp); err != nil {
		return model.LoginResponse{}, err
	}
	if resp.AuthToken == "" {
		return model.LoginResponse{}, ErrNoToken
	}

	if err := c.session.Authenticate(resp.Identity(), resp.AuthToken); err != nil {
		return model.LoginResponse{}, err
	}
	return resp, nil
}

// Register creates a new user account. It does not log the user in and does
// not touch the session.
func (c *Client) Register(ctx context.Context, reg model.Registration) (model.Identity, error) {
	var ident model.Identity
	if err := c.do(ctx, http.MethodPost, "/register", nil, reg, &ident); err != nil {
		return model.Identity{}, err
	}
	return ident, nil
}

// Logout discards the session and its persisted credential. Purely
// client-side: the bearer token is stateless, so no network call is made.
func (c *Client) Logout() error {
	return c.session.Deauthenticate()
}
