// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/ui/styles"
)

// =============================================================================
// SHARED FORM EDITOR
// =============================================================================

// editor is a vertical stack of labeled text inputs with focus handling,
// shared by the auth forms and the content managers.
type editor struct {
	theme  *styles.Theme
	labels []string
	inputs []textinput.Model
	focus  int
}

// field describes one editor input.
type field struct {
	label       string
	value       string
	placeholder string
	secret      bool
	limit       int
}

func newEditor(theme *styles.Theme, fields []field) *editor {
	e := &editor{theme: theme}
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.SetValue(f.value)
		in.CharLimit = f.limit
		if f.limit == 0 {
			in.CharLimit = 255
		}
		in.Prompt = ""
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		if i == 0 {
			in.Focus()
		}
		e.labels = append(e.labels, f.label)
		e.inputs = append(e.inputs, in)
	}
	return e
}

// atLastField reports whether focus sits on the final input.
func (e *editor) atLastField() bool {
	return e.focus == len(e.inputs)-1
}

// values returns the current input values in field order.
func (e *editor) values() []string {
	vals := make([]string, len(e.inputs))
	for i, in := range e.inputs {
		vals[i] = strings.TrimSpace(in.Value())
	}
	return vals
}

// next moves focus forward (wrapping); prev moves it backward.
func (e *editor) next() { e.setFocus((e.focus + 1) % len(e.inputs)) }

func (e *editor) prev() { e.setFocus((e.focus - 1 + len(e.inputs)) % len(e.inputs)) }

func (e *editor) setFocus(i int) {
	e.inputs[e.focus].Blur()
	e.focus = i
	e.inputs[e.focus].Focus()
}

// Update forwards key and other messages to the focused input.
func (e *editor) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range e.inputs {
		var cmd tea.Cmd
		e.inputs[i], cmd = e.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the labeled inputs.
func (e *editor) View() string {
	var b strings.Builder
	for i, in := range e.inputs {
		b.WriteString(e.theme.Label.Render(e.labels[i]))
		b.WriteString("\n")
		box := e.theme.InputBlurred
		if i == e.focus {
			box = e.theme.InputFocused
		}
		b.WriteString(box.Render(in.View()))
		if i < len(e.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
