// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the process-wide authentication state: the bearer
// token and the identity it belongs to.
//
// A session is either fully authenticated (token + identity) or fully
// anonymous; Authenticate and Deauthenticate are the only mutation paths and
// each replaces the whole record, so "token without identity" is never
// observable mid-update. Every mutation also synchronizes the durable
// credential store, durable write first, so a reader never sees
// "authenticated in memory, nothing on disk".
//
// The one sanctioned exception is Restore, which at startup repopulates the
// token half from disk. Identity is not recoverable from the store, so a
// restored session is authenticated-but-role-unknown until the next login.
package session
