// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
	"github.com/jeranaias/quizdeck-tui/internal/util"
)

// =============================================================================
// MANAGE QUIZZES
// =============================================================================

type quizzesLoadedMsg struct {
	quizzes []model.Quiz
}

type quizSavedMsg struct{}

type quizDeletedMsg struct{}

// ManageQuizzes is the admin quiz manager for one chapter.
type ManageQuizzes struct {
	deps    Deps
	chapter model.Chapter
	mode    manageMode
	list    []model.Quiz
	cursor  int
	form    *editor
	loading bool
	errText string
	width   int
	height  int
}

// NewManageQuizzes creates the quiz manager for the given chapter.
func NewManageQuizzes(deps Deps, chapter model.Chapter) *ManageQuizzes {
	return &ManageQuizzes{deps: deps, chapter: chapter, loading: true}
}

// Init implements View.
func (m *ManageQuizzes) Init() tea.Cmd {
	return m.load()
}

// SetSize implements View.
func (m *ManageQuizzes) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ManageQuizzes) load() tea.Cmd {
	client := m.deps.API
	chapterID := m.chapter.ID
	return func() tea.Msg {
		quizzes, err := client.Quizzes(context.Background(), chapterID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return quizzesLoadedMsg{quizzes: quizzes}
	}
}

func (m *ManageQuizzes) save() tea.Cmd {
	values := m.form.values()
	quiz := model.Quiz{
		ChapterID:       m.chapter.ID,
		Name:            values[0],
		Description:     values[1],
		DifficultyLevel: values[2],
	}
	if quiz.Name == "" {
		m.errText = "Name is required."
		return nil
	}
	if values[3] != "" {
		limit, err := strconv.Atoi(values[3])
		if err != nil || limit < 0 {
			m.errText = "Time limit must be a number of minutes."
			return nil
		}
		quiz.TimeLimit = limit
	}

	client := m.deps.API
	if m.mode == modeEdit {
		quiz.ID = m.list[m.cursor].ID
		return func() tea.Msg {
			if _, err := client.UpdateQuiz(context.Background(), quiz.ID, quiz); err != nil {
				return ErrMsg{Err: err}
			}
			return quizSavedMsg{}
		}
	}
	return func() tea.Msg {
		if _, err := client.CreateQuiz(context.Background(), quiz); err != nil {
			return ErrMsg{Err: err}
		}
		return quizSavedMsg{}
	}
}

func (m *ManageQuizzes) deleteSelected() tea.Cmd {
	id := m.list[m.cursor].ID
	client := m.deps.API
	return func() tea.Msg {
		if err := client.DeleteQuiz(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return quizDeletedMsg{}
	}
}

func (m *ManageQuizzes) quizForm(quiz model.Quiz) *editor {
	timeLimit := ""
	if quiz.TimeLimit > 0 {
		timeLimit = strconv.Itoa(quiz.TimeLimit)
	}
	return newEditor(m.deps.Theme, []field{
		{label: "Name", value: quiz.Name, limit: 100},
		{label: "Description", value: quiz.Description},
		{label: "Difficulty (Easy/Medium/Hard)", value: quiz.DifficultyLevel, limit: 50},
		{label: "Time limit (minutes, optional)", value: timeLimit, limit: 4},
	})
}

// Update implements View.
func (m *ManageQuizzes) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case quizzesLoadedMsg:
		m.loading = false
		m.list = msg.quizzes
		if m.cursor >= len(m.list) {
			m.cursor = 0
		}
		return m, nil

	case quizSavedMsg, quizDeletedMsg:
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

func (m *ManageQuizzes) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
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
		m.form = m.quizForm(model.Quiz{})
	case "e":
		if len(m.list) > 0 {
			m.mode = modeEdit
			m.errText = ""
			m.form = m.quizForm(m.list[m.cursor])
		}
	case "d":
		if len(m.list) > 0 {
			m.mode = modeConfirmDelete
		}
	case "enter":
		if len(m.list) > 0 {
			selected := m.list[m.cursor]
			return m, func() tea.Msg {
				return NavigateMsg{Route: nav.RouteManageQuestions, Quiz: &selected}
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
func (m *ManageQuizzes) View() string {
	theme := m.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") +
		theme.ListDim.Render("  — quizzes of "+m.chapter.Name)))
	b.WriteString("\n\n")

	switch m.mode {
	case modeCreate:
		b.WriteString(theme.Title.Render("New quiz"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeEdit:
		b.WriteString(theme.Title.Render("Edit quiz"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeConfirmDelete:
		b.WriteString(theme.Warning.Render(fmt.Sprintf(
			"Delete %q and all of its questions? (y/n)", m.list[m.cursor].Name)))
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(theme.Error.Render(m.errText))
		b.WriteString("\n\n")
	}

	if m.mode == modeList {
		b.WriteString(theme.Shortcuts("enter", "questions", "a", "add", "e", "edit", "d", "delete", "esc", "back"))
	} else {
		b.WriteString(theme.Shortcuts("enter", "save", "esc", "cancel"))
	}
	return theme.App.Render(b.String())
}

func (m *ManageQuizzes) renderList() string {
	theme := m.deps.Theme
	if m.loading {
		return theme.ListDim.Render("Loading quizzes...")
	}
	if len(m.list) == 0 {
		return theme.ListDim.Render("No quizzes yet. Press 'a' to add one.")
	}

	nameWidth := 28
	var b strings.Builder
	b.WriteString(theme.ListHeader.Render(util.PadWidth("Name", nameWidth) +
		util.PadWidth("Difficulty", 12) + "Time"))
	b.WriteString("\n")
	for i, quiz := range m.list {
		timeLimit := "-"
		if quiz.TimeLimit > 0 {
			timeLimit = fmt.Sprintf("%d min", quiz.TimeLimit)
		}
		row := util.PadWidth(util.TruncateWidth(quiz.Name, nameWidth-2), nameWidth) +
			util.PadWidth(quiz.DifficultyLevel, 12) + timeLimit
		if i == m.cursor {
			b.WriteString(theme.MenuSelected.Render("> " + row))
		} else {
			b.WriteString(theme.ListRow.Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
