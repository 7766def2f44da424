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
// MANAGE QUESTIONS
// =============================================================================

type questionsLoadedMsg struct {
	questions []model.Question
}

type questionSavedMsg struct{}

type questionDeletedMsg struct{}

// ManageQuestions is the admin question manager for one quiz.
type ManageQuestions struct {
	deps    Deps
	quiz    model.Quiz
	mode    manageMode
	list    []model.Question
	cursor  int
	form    *editor
	loading bool
	errText string
	width   int
	height  int
}

// NewManageQuestions creates the question manager for the given quiz.
func NewManageQuestions(deps Deps, quiz model.Quiz) *ManageQuestions {
	return &ManageQuestions{deps: deps, quiz: quiz, loading: true}
}

// Init implements View.
func (m *ManageQuestions) Init() tea.Cmd {
	return m.load()
}

// SetSize implements View.
func (m *ManageQuestions) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ManageQuestions) load() tea.Cmd {
	client := m.deps.API
	quizID := m.quiz.ID
	return func() tea.Msg {
		questions, err := client.Questions(context.Background(), quizID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return questionsLoadedMsg{questions: questions}
	}
}

func (m *ManageQuestions) save() tea.Cmd {
	values := m.form.values()
	question := model.Question{
		QuizID:        m.quiz.ID,
		QuestionText:  values[0],
		Option1:       values[1],
		Option2:       values[2],
		Option3:       values[3],
		Option4:       values[4],
		CorrectOption: strings.ToUpper(strings.TrimSpace(values[5])),
		Explanation:   values[7],
	}
	if question.QuestionText == "" {
		m.errText = "Question text is required."
		return nil
	}
	for _, option := range question.Options() {
		if option == "" {
			m.errText = "All four options are required."
			return nil
		}
	}
	switch question.CorrectOption {
	case "A", "B", "C", "D":
	default:
		m.errText = "Correct option must be A, B, C, or D."
		return nil
	}
	if values[6] != "" {
		marks, err := strconv.Atoi(values[6])
		if err != nil || marks < 1 {
			m.errText = "Marks must be a positive number."
			return nil
		}
		question.Marks = marks
	}

	client := m.deps.API
	if m.mode == modeEdit {
		question.ID = m.list[m.cursor].ID
		return func() tea.Msg {
			if _, err := client.UpdateQuestion(context.Background(), question.ID, question); err != nil {
				return ErrMsg{Err: err}
			}
			return questionSavedMsg{}
		}
	}
	return func() tea.Msg {
		if _, err := client.CreateQuestion(context.Background(), question); err != nil {
			return ErrMsg{Err: err}
		}
		return questionSavedMsg{}
	}
}

func (m *ManageQuestions) deleteSelected() tea.Cmd {
	id := m.list[m.cursor].ID
	client := m.deps.API
	return func() tea.Msg {
		if err := client.DeleteQuestion(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return questionDeletedMsg{}
	}
}

func (m *ManageQuestions) questionForm(question model.Question) *editor {
	marks := ""
	if question.Marks > 0 {
		marks = strconv.Itoa(question.Marks)
	}
	return newEditor(m.deps.Theme, []field{
		{label: "Question text", value: question.QuestionText, limit: 500},
		{label: "Option A", value: question.Option1},
		{label: "Option B", value: question.Option2},
		{label: "Option C", value: question.Option3},
		{label: "Option D", value: question.Option4},
		{label: "Correct option (A-D)", value: question.CorrectOption, limit: 1},
		{label: "Marks (optional, default 1)", value: marks, limit: 3},
		{label: "Explanation (optional)", value: question.Explanation, limit: 500},
	})
}

// Update implements View.
func (m *ManageQuestions) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		m.loading = false
		m.list = msg.questions
		if m.cursor >= len(m.list) {
			m.cursor = 0
		}
		return m, nil

	case questionSavedMsg, questionDeletedMsg:
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

func (m *ManageQuestions) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
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
		m.form = m.questionForm(model.Question{})
	case "e":
		if len(m.list) > 0 {
			m.mode = modeEdit
			m.errText = ""
			m.form = m.questionForm(m.list[m.cursor])
		}
	case "d":
		if len(m.list) > 0 {
			m.mode = modeConfirmDelete
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
func (m *ManageQuestions) View() string {
	theme := m.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") +
		theme.ListDim.Render("  — questions of "+m.quiz.Name)))
	b.WriteString("\n\n")

	switch m.mode {
	case modeCreate:
		b.WriteString(theme.Title.Render("New question"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeEdit:
		b.WriteString(theme.Title.Render("Edit question"))
		b.WriteString("\n\n")
		b.WriteString(m.form.View())
	case modeConfirmDelete:
		b.WriteString(theme.Warning.Render("Delete the selected question? (y/n)"))
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n\n")
	if m.errText != "" {
		b.WriteString(theme.Error.Render(m.errText))
		b.WriteString("\n\n")
	}

	if m.mode == modeList {
		b.WriteString(theme.Shortcuts("a", "add", "e", "edit", "d", "delete", "r", "refresh", "esc", "back"))
	} else {
		b.WriteString(theme.Shortcuts("enter", "save", "esc", "cancel"))
	}
	return theme.App.Render(b.String())
}

func (m *ManageQuestions) renderList() string {
	theme := m.deps.Theme
	if m.loading {
		return theme.ListDim.Render("Loading questions...")
	}
	if len(m.list) == 0 {
		return theme.ListDim.Render("No questions yet. Press 'a' to add one.")
	}

	var b strings.Builder
	b.WriteString(theme.ListHeader.Render(util.PadWidth("#", 4) +
		util.PadWidth("Question", 50) + "Answer"))
	b.WriteString("\n")
	for i, question := range m.list {
		row := util.PadWidth(fmt.Sprintf("%d.", i+1), 4) +
			util.PadWidth(util.TruncateWidth(question.QuestionText, 48), 50) +
			question.CorrectOption
		if i == m.cursor {
			b.WriteString(theme.MenuSelected.Render("> " + row))
		} else {
			b.WriteString(theme.ListRow.Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
