// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package views contains the Bubble Tea views of the quizdeck TUI: the
// auth forms, the role dashboards, the admin content managers, the quiz
// player, and the score view.
//
// Views never navigate themselves. They emit a NavigateMsg and the app
// model runs the navigation guard before the target view is constructed,
// so every transition passes through the same access check.
package views
