// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
	"github.com/jeranaias/quizdeck-tui/internal/util"
)

// =============================================================================
// MANAGE SUBJECTS
// =============================================================================

// manageMode is the sub-state of a content manager view.
type manageMode int

const (
	modeList manageMode = iota
	modeCreate
	modeEdit
	modeConfirmDelete
)

type subjectsLoadedMsg struct {
	subjects []model.Subject
}

type subjectSavedMsg struct{}

type subjectDeletedMsg struct{}

// ManageSubjects is the admin subject manager: list, create, edit, delete,
// and drill into a subject's chapters.
type ManageSubjects struct {
	deps    Deps
	mode    manageMode
	list    []model.Subject
	cursor  int
	form    *editor
	loading bool
	errText string
	width   int
	height  int
}

// NewManageSubjects creates the subject manager.
func NewManageSubjects(deps Deps) *ManageSubjects {
	return &ManageSubjects{deps: deps, loading: true}
}

// Init implements View.
func (m *ManageSubjects) Init() tea.Cmd {
	return m.load()
}

// SetSize implements View.
func (m *ManageSubjects) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ManageSubjects) load() tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		subjects, err := client.Subjects(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return subjectsLoadedMsg{subjects: subjects}
	}
}

func (m *ManageSubjects) save() tea.Cmd {
	values := m.form.values()
	subject := model.Subject{Name: values[0], Description: values[1]}
	if subject.Name == "" {
		m.errText = "Name is required."
		return nil
	}

	client := m.deps.API
	if m.mode == modeEdit {
		subject.ID = m.list[m.cursor].ID
		return func() tea.Msg {
			if _, err := client.UpdateSubject(context.Background(), subject.ID, subject); err != nil {
				return ErrMsg{Err: err}
			}
			return subjectSavedMsg{}
		}
	}
	return func() tea.Msg {
		if _, err := client.CreateSubject(context.Background(), subject); err != nil {
			return ErrMsg{Err: err}
		}
		return subjectSavedMsg{}
	}
}

func (m *ManageSubjects) deleteSelected() tea.Cmd {
	id := m.list[m.cursor].ID
	client := m.deps.API
	return func() tea.Msg {
		if err := client.DeleteSubject(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return subjectDeletedMsg{}
	}
}

// Update implements View.
func (m *ManageSubjects) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case subjectsLoadedMsg:
		m.loading = false
		m.list = msg.subjects
		if m.cursor >= len(m.list) {
			m.cursor = 0
		}
		return m, nil

	case subjectSavedMsg, subjectDeletedMsg:
		m.mode = modeList
		m.form = nil
		m.errText = ""
		m.loading = true
		return m, m.load()

	case ErrMsg:
		m.loading = false
		m.errText = msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m *ManageSubjects) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch m.mode {
	case modeCreate, modeEdit:
		switch msg.String() {
		case "esc":
			m.mode = modeList
			m.form = nil
			m.errText = ""
			return m, nil
		case "tab", "down":
			m.form.next()
			return m, nil
		case "shift+tab", "up":
			m.form.prev()
			return m, nil
		case "enter":
			if m.form.atLastField() {
				return m, m.save()
			}
			m.form.next()
			return m, nil
		}
		return m, m.form.Update(msg)

	case modeConfirmDelete:
		switch msg.String() {
		case "y":
			m.mode = modeList
			return m, m.deleteSelected()
		case "n", "esc":
			m.mode = modeList
		}
		return m, nil
	}

	// List mode.
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.list)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeCreate
		m.errText = ""
		m.form = newEditor(m.deps.Theme, []field{
			{label: "Name", limit: 100},
			{label: "Description"},
		})
	case "e":
		if len(m.list) > 0 {
			selected := m.list[m.cursor]
			m.mode = modeEdit
			m.errText = ""
			m.form = newEditor(m.deps.Theme, []field{
				{label: "Name", value: selected.Name, limit: 100},
				{label: "Description", value: selected.Description},
			})
		}
	case "d":
		if len(m.list) > 0 {
			m.mode = modeConfirmDelete
		}
	case "enter":
		if len(m.list) > 0 {
			selected := m.list[m.cursor]
			return m, func() tea.Msg {
				return NavigateMsg{Route: nav.RouteManageChapters, Subject: &selected}
			}
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "esc":
		return m, Navigate(nav.RouteAdminDashboard)
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View implements View.
func (m *ManageSubjects) View() string {
	theme := m.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — manage subjects")))
	b.WriteString("\n\n")

	switch m.mode {
	case modeCreate:
		b.WriteString(theme.Title.Render("New subject"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeEdit:
		b.WriteString(theme.Title.Render("Edit subject"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeConfirmDelete:
		b.WriteString(theme.Warning.Render(fmt.Sprintf(
			"Delete %q and all of its chapters? (y/n)", m.list[m.cursor].Name)))
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(theme.Error.Render(m.errText))
		b.WriteString("\n\n")
	}

	if m.mode == modeList {
		b.WriteString(theme.Shortcuts("enter", "chapters", "a", "add", "e", "edit", "d", "delete", "esc", "back"))
	} else {
		b.WriteString(theme.Shortcuts("enter", "save", "esc", "cancel"))
	}
	return theme.App.Render(b.String())
}

func (m *ManageSubjects) renderList() string {
	theme := m.deps.Theme
	if m.loading {
		return theme.ListDim.Render("Loading subjects...")
	}
	if len(m.list) == 0 {
		return theme.ListDim.Render("No subjects yet. Press 'a' to add one.")
	}

	nameWidth := 28
	var b strings.Builder
	b.WriteString(theme.ListHeader.Render(util.PadWidth("Name", nameWidth) + "Description"))
	b.WriteString("\n")
	for i, subject := range m.list {
		row := util.PadWidth(util.TruncateWidth(subject.Name, nameWidth-2), nameWidth) +
			util.TruncateWidth(subject.Description, 40)
		if i == m.cursor {
			b.WriteString(theme.MenuSelected.Render("> " + row))
		} else {
			b.WriteString(theme.ListRow.Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
