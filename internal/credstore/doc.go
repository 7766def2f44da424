// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package credstore provides durable storage for the single bearer token
// issued by the remote quiz service at login.
//
// Exactly one value is stored, under a fixed well-known file name. The token
// is opaque to the client and survives process restarts; it is the only
// state quizdeck persists about a session. Identity (user id, role) is
// deliberately NOT stored — it lives in memory only and is re-established by
// logging in again.
package credstore
