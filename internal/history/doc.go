// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history keeps a local record of completed quiz attempts.
//
// The remote service is the authority for scores; this SQLite database is a
// client-side supplement so the score view can show the user's own attempts
// immediately, including while the service is unreachable.
package history
