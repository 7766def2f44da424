// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the domain types shared across quizdeck.
//
// The JSON field names mirror the remote quiz service's wire format
// exactly (auth_token, chapter_id, question_text, ...). These types are
// plain data carriers; behavior lives in the packages that use them.
package model
