// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav declares the client's route surface and enforces access to it.
//
// Every route carries a static access policy: whether it requires an
// authenticated session, and which roles (as a set; empty means any) may
// enter. The Guard evaluates a policy against the session synchronously
// before a view is allowed to render, and always terminates in a decision —
// allow, or redirect. A denial is a control-flow outcome, not an error:
// unauthenticated users are bounced to login, authenticated users with the
// wrong role are bounced to their own dashboard.
package nav
