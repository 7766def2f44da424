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
// MANAGE CHAPTERS
// =============================================================================

type chaptersLoadedMsg struct {
	chapters []model.Chapter
}

type chapterSavedMsg struct{}

type chapterDeletedMsg struct{}

// ManageChapters is the admin chapter manager for one subject.
type ManageChapters struct {
	deps    Deps
	subject model.Subject
	mode    manageMode
	list    []model.Chapter
	cursor  int
	form    *editor
	loading bool
	errText string
	width   int
	height  int
}

// NewManageChapters creates the chapter manager for the given subject.
func NewManageChapters(deps Deps, subject model.Subject) *ManageChapters {
	return &ManageChapters{deps: deps, subject: subject, loading: true}
}

// Init implements View.
func (m *ManageChapters) Init() tea.Cmd {
	return m.load()
}

// SetSize implements View.
func (m *ManageChapters) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ManageChapters) load() tea.Cmd {
	client := m.deps.API
	subjectID := m.subject.ID
	return func() tea.Msg {
		chapters, err := client.Chapters(context.Background(), subjectID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return chaptersLoadedMsg{chapters: chapters}
	}
}

func (m *ManageChapters) save() tea.Cmd {
	values := m.form.values()
	chapter := model.Chapter{SubjectID: m.subject.ID, Name: values[0], Description: values[1]}
	if chapter.Name == "" {
		m.errText = "Name is required."
		return nil
	}

	client := m.deps.API
	if m.mode == modeEdit {
		chapter.ID = m.list[m.cursor].ID
		return func() tea.Msg {
			if _, err := client.UpdateChapter(context.Background(), chapter.ID, chapter); err != nil {
				return ErrMsg{Err: err}
			}
			return chapterSavedMsg{}
		}
	}
	return func() tea.Msg {
		if _, err := client.CreateChapter(context.Background(), chapter); err != nil {
			return ErrMsg{Err: err}
		}
		return chapterSavedMsg{}
	}
}

func (m *ManageChapters) deleteSelected() tea.Cmd {
	id := m.list[m.cursor].ID
	client := m.deps.API
	return func() tea.Msg {
		if err := client.DeleteChapter(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return chapterDeletedMsg{}
	}
}

// Update implements View.
func (m *ManageChapters) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case chaptersLoadedMsg:
		m.loading = false
		m.list = msg.chapters
		if m.cursor >= len(m.list) {
			m.cursor = 0
		}
		return m, nil

	case chapterSavedMsg, chapterDeletedMsg:
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

func (m *ManageChapters) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
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
				return NavigateMsg{Route: nav.RouteManageQuizzes, Chapter: &selected}
			}
		}
	case "r":
		m.loading = true
		return m, m.load()
	case "esc":
		return m, Navigate(nav.RouteManageSubjects)
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// View implements View.
func (m *ManageChapters) View() string {
	theme := m.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") +
		theme.ListDim.Render("  — chapters of "+m.subject.Name)))
	b.WriteString("\n\n")

	switch m.mode {
	case modeCreate:
		b.WriteString(theme.Title.Render("New chapter"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeEdit:
		b.WriteString(theme.Title.Render("Edit chapter"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeConfirmDelete:
		b.WriteString(theme.Warning.Render(fmt.Sprintf(
			"Delete %q and all of its quizzes? (y/n)", m.list[m.cursor].Name)))
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(theme.Error.Render(m.errText))
		b.WriteString("\n\n")
	}

	if m.mode == modeList {
		b.WriteString(theme.Shortcuts("enter", "quizzes", "a", "add", "e", "edit", "d", "delete", "esc", "back"))
	} else {
		b.WriteString(theme.Shortcuts("enter", "save", "esc", "cancel"))
	}
	return theme.App.Render(b.String())
}

func (m *ManageChapters) renderList() string {
	theme := m.deps.Theme
	if m.loading {
		return theme.ListDim.Render("Loading chapters...")
	}
	if len(m.list) == 0 {
		return theme.ListDim.Render("No chapters yet. Press 'a' to add one.")
	}

	nameWidth := 28
	var b strings.Builder
	b.WriteString(theme.ListHeader.Render(util.PadWidth("Name", nameWidth) + "Description"))
	b.WriteString("\n")
	for i, chapter := range m.list {
		row := util.PadWidth(util.TruncateWidth(chapter.Name, nameWidth-2), nameWidth) +
			util.TruncateWidth(chapter.Description, 40)
		if i == m.cursor {
			b.WriteString(theme.MenuSelected.Render("> " + row))
		} else {
			b.WriteString(theme.ListRow.Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
