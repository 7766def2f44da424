// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jeranaias/quizdeck-tui/internal/ui/styles"
)

func testEditor(fields ...field) *editor {
	return newEditor(styles.NewTheme("dark"), fields)
}

func TestEditorFocusCycling(t *testing.T) {
	e := testEditor(field{label: "a"}, field{label: "b"}, field{label: "c"})

	if e.focus != 0 {
		t.Fatalf("expected first field focused, got %d", e.focus)
	}
	if e.atLastField() {
		t.Error("should not be at last field initially")
	}

	e.next()
	e.next()
	if !e.atLastField() {
		t.Errorf("expected last field after two advances, got %d", e.focus)
	}

	// Wraps around.
	e.next()
	if e.focus != 0 {
		t.Errorf("expected wrap to first field, got %d", e.focus)
	}

	e.prev()
	if !e.atLastField() {
		t.Errorf("expected prev from first to wrap to last, got %d", e.focus)
	}
}

func TestEditorValuesAreTrimmed(t *testing.T) {
	e := testEditor(field{label: "name", value: "  Algebra  "}, field{label: "desc"})

	values := e.values()
	if values[0] != "Algebra" {
		t.Errorf("expected trimmed value, got %q", values[0])
	}
	if values[1] != "" {
		t.Errorf("expected empty second value, got %q", values[1])
	}
}

func TestEditorSecretFieldMasksInput(t *testing.T) {
	e := testEditor(field{label: "password", secret: true})

	if e.inputs[0].EchoMode != textinput.EchoPassword {
		t.Error("expected secret field to use password echo mode")
	}
}

func TestEditorDefaultCharLimit(t *testing.T) {
	e := testEditor(field{label: "a"}, field{label: "b", limit: 10})

	if e.inputs[0].CharLimit != 255 {
		t.Errorf("expected default limit 255, got %d", e.inputs[0].CharLimit)
	}
	if e.inputs[1].CharLimit != 10 {
		t.Errorf("expected explicit limit 10, got %d", e.inputs[1].CharLimit)
	}
}
