// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// takequiz.go - the quiz browser for end users. A single view walks the
// subject -> chapter -> quiz hierarchy; selecting a quiz hands off to the
// player via navigation.

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
// QUIZ BROWSER
// =============================================================================

// browseLevel is the depth of the quiz browser in the content hierarchy.
type browseLevel int

const (
	levelSubjects browseLevel = iota
	levelChapters
	levelQuizzes
)

type browseSubjectsMsg struct {
	subjects []model.Subject
}

type browseChaptersMsg struct {
	chapters []model.Chapter
}

type browseQuizzesMsg struct {
	quizzes []model.Quiz
}

// TakeQuiz is the user-facing browser over subjects, chapters, and quizzes.
type TakeQuiz struct {
	deps     Deps
	level    browseLevel
	subjects []model.Subject
	chapters []model.Chapter
	quizzes  []model.Quiz
	subject  model.Subject
	chapter  model.Chapter
	cursor   int
	loading  bool
	errText  string
	width    int
	height   int
}

// NewTakeQuiz creates the quiz browser at the subject level.
func NewTakeQuiz(deps Deps) *TakeQuiz {
	return &TakeQuiz{deps: deps, loading: true}
}

// Init implements View.
func (t *TakeQuiz) Init() tea.Cmd {
	return t.loadSubjects()
}

// SetSize implements View.
func (t *TakeQuiz) SetSize(width, height int) {
	t.width = width
	t.height = height
}

func (t *TakeQuiz) loadSubjects() tea.Cmd {
	client := t.deps.API
	return func() tea.Msg {
		subjects, err := client.Subjects(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return browseSubjectsMsg{subjects: subjects}
	}
}

func (t *TakeQuiz) loadChapters(subjectID int) tea.Cmd {
	client := t.deps.API
	return func() tea.Msg {
		chapters, err := client.Chapters(context.Background(), subjectID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return browseChaptersMsg{chapters: chapters}
	}
}

func (t *TakeQuiz) loadQuizzes(chapterID int) tea.Cmd {
	client := t.deps.API
	return func() tea.Msg {
		quizzes, err := client.Quizzes(context.Background(), chapterID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return browseQuizzesMsg{quizzes: quizzes}
	}
}

func (t *TakeQuiz) listLen() int {
	switch t.level {
	case levelChapters:
		return len(t.chapters)
	case levelQuizzes:
		return len(t.quizzes)
	default:
		return len(t.subjects)
	}
}

// Update implements View.
func (t *TakeQuiz) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case browseSubjectsMsg:
		t.loading = false
		t.subjects = msg.subjects
		return t, nil

	case browseChaptersMsg:
		t.loading = false
		t.chapters = msg.chapters
		return t, nil

	case browseQuizzesMsg:
		t.loading = false
		t.quizzes = msg.quizzes
		return t, nil

	case ErrMsg:
		t.loading = false
		t.errText = msg.Err.Error()
		return t, nil

	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TakeQuiz) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < t.listLen()-1 {
			t.cursor++
		}
	case "enter":
		if t.loading || t.listLen() == 0 {
			return t, nil
		}
		switch t.level {
		case levelSubjects:
			t.subject = t.subjects[t.cursor]
			t.level = levelChapters
			t.cursor = 0
			t.loading = true
			t.errText = ""
			return t, t.loadChapters(t.subject.ID)
		case levelChapters:
			t.chapter = t.chapters[t.cursor]
			t.level = levelQuizzes
			t.cursor = 0
			t.loading = true
			t.errText = ""
			return t, t.loadQuizzes(t.chapter.ID)
		case levelQuizzes:
			selected := t.quizzes[t.cursor]
			return t, func() tea.Msg {
				return NavigateMsg{Route: nav.RouteStartQuiz, Quiz: &selected}
			}
		}
	case "esc":
		switch t.level {
		case levelQuizzes:
			t.level = levelChapters
			t.cursor = 0
			t.errText = ""
		case levelChapters:
			t.level = levelSubjects
			t.cursor = 0
			t.errText = ""
		default:
			return t, Navigate(nav.RouteUserDashboard)
		}
	case "q", "ctrl+c":
		return t, tea.Quit
	}
	return t, nil
}

// View implements View.
func (t *TakeQuiz) View() string {
	theme := t.deps.Theme
	var b strings.Builder

	crumb := "take a quiz"
	switch t.level {
	case levelChapters:
		crumb = t.subject.Name
	case levelQuizzes:
		crumb = t.subject.Name + " / " + t.chapter.Name
	}
	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — "+crumb)))
	b.WriteString("\n\n")

	switch {
	case t.loading:
		b.WriteString(theme.ListDim.Render("Loading..."))
	case t.errText != "":
		b.WriteString(theme.Error.Render(t.errText))
	case t.listLen() == 0:
		b.WriteString(theme.ListDim.Render("Nothing here yet."))
	default:
		b.WriteString(t.renderList())
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Shortcuts("enter", "open", "esc", "back", "q", "quit"))
	return theme.App.Render(b.String())
}

func (t *TakeQuiz) renderList() string {
	var b strings.Builder

	switch t.level {
	case levelSubjects:
		for i, subject := range t.subjects {
			t.writeRow(&b, i, subject.Name, subject.Description)
		}
	case levelChapters:
		for i, chapter := range t.chapters {
			t.writeRow(&b, i, chapter.Name, chapter.Description)
		}
	case levelQuizzes:
		for i, quiz := range t.quizzes {
			detail := quiz.DifficultyLevel
			if quiz.TimeLimit > 0 {
				if detail != "" {
					detail += ", "
				}
				detail += fmt.Sprintf("%d min", quiz.TimeLimit)
			}
			t.writeRow(&b, i, quiz.Name, detail)
		}
	}
	return b.String()
}

func (t *TakeQuiz) writeRow(b *strings.Builder, i int, name, detail string) {
	theme := t.deps.Theme
	row := util.PadWidth(util.TruncateWidth(name, 30), 32) + util.TruncateWidth(detail, 40)
	if i == t.cursor {
		b.WriteString(theme.MenuSelected.Render("> " + row))
	} else {
		b.WriteString(theme.ListRow.Render("  " + row))
	}
	b.WriteString("\n")
}
