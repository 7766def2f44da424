// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the single outbound channel to the remote quiz service.
//
// Every request the client makes goes through Client.do, which attaches the
// session's bearer token (when one is held) as an Authorization header. The
// typed operations on Client are thin pass-throughs over that one path, so
// credential attachment and error logging apply uniformly to login,
// registration, and all content CRUD calls.
//
// Failures are never swallowed and never retried here: transport errors and
// non-2xx responses are logged and returned to the caller unchanged, and a
// failed login leaves the session untouched. The user retries explicitly.
package api
