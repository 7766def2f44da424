// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// player.go - the quiz player. Loads the questions of one quiz, walks the
// user through them, and submits the answer sheet for grading. A graded
// attempt is also recorded in the local history database so past scores are
// viewable offline.

package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/quizdeck-tui/internal/api"
	"github.com/jeranaias/quizdeck-tui/internal/model"
	"github.com/jeranaias/quizdeck-tui/internal/nav"
)

// =============================================================================
// QUIZ PLAYER
// =============================================================================

// optionLetters maps option index to the answer-sheet letter.
var optionLetters = [4]string{"A", "B", "C", "D"}

type playerQuestionsMsg struct {
	questions []model.Question
}

type playerTickMsg time.Time

type playerGradedMsg struct {
	result SubmittedResult
	err    error
}

// SubmittedResult pairs the server's grading with the local echo of what was
// submitted, for the result screen.
type SubmittedResult struct {
	Scored int
	Total  int
}

// Player runs one quiz attempt.
type Player struct {
	deps      Deps
	quiz      model.Quiz
	questions []model.Question
	index     int
	selected  int
	answers   map[string]string
	startedAt time.Time
	remaining time.Duration
	loading   bool
	grading   bool
	done      bool
	result    SubmittedResult
	errText   string
	width     int
	height    int
}

// NewPlayer creates a player for the given quiz.
func NewPlayer(deps Deps, quiz model.Quiz) *Player {
	return &Player{
		deps:    deps,
		quiz:    quiz,
		answers: make(map[string]string),
		loading: true,
	}
}

// Init implements View.
func (p *Player) Init() tea.Cmd {
	client := p.deps.API
	quizID := p.quiz.ID
	return func() tea.Msg {
		questions, err := client.Questions(context.Background(), quizID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return playerQuestionsMsg{questions: questions}
	}
}

// SetSize implements View.
func (p *Player) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return playerTickMsg(t)
	})
}

func (p *Player) submit() tea.Cmd {
	p.grading = true
	p.errText = ""

	elapsed := int(time.Since(p.startedAt).Minutes())
	submission := make(map[string]string, len(p.answers))
	for id, letter := range p.answers {
		submission[id] = letter
	}

	// Grade locally as well; the server result wins when present, but a
	// partial response still leaves the result screen usable.
	scored, total := 0, 0
	for _, question := range p.questions {
		marks := question.Marks
		if marks == 0 {
			marks = 1
		}
		total += marks
		if question.IsCorrect(p.answers[strconv.Itoa(question.ID)]) {
			scored += marks
		}
	}

	client := p.deps.API
	store := p.deps.History
	quiz := p.quiz
	return func() tea.Msg {
		body := api.QuizSubmission{Answers: submission, TimeTaken: elapsed}
		result, err := client.SubmitQuiz(context.Background(), quiz.ID, body)
		if err != nil {
			return playerGradedMsg{err: err}
		}
		if result.TotalScored != 0 || len(submission) == 0 {
			scored = result.TotalScored
		}
		if result.TotalMarks != 0 {
			total = result.TotalMarks
		}
		if store != nil {
			// History is best-effort; the attempt is already graded
			// server-side.
			_, _ = store.Record(context.Background(), quiz.ID, quiz.Name, scored, total)
		}
		return playerGradedMsg{result: SubmittedResult{Scored: scored, Total: total}}
	}
}

// Update implements View.
func (p *Player) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case playerQuestionsMsg:
		p.loading = false
		p.questions = msg.questions
		p.startedAt = time.Now()
		if p.quiz.TimeLimit > 0 {
			p.remaining = time.Duration(p.quiz.TimeLimit) * time.Minute
			return p, tickCmd()
		}
		return p, nil

	case playerTickMsg:
		if p.done || p.grading || p.quiz.TimeLimit == 0 {
			return p, nil
		}
		p.remaining = time.Duration(p.quiz.TimeLimit)*time.Minute - time.Since(p.startedAt)
		if p.remaining <= 0 {
			p.remaining = 0
			return p, p.submit()
		}
		return p, tickCmd()

	case playerGradedMsg:
		p.grading = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return p, nil
		}
		p.done = true
		p.result = msg.result
		return p, nil

	case ErrMsg:
		p.loading = false
		p.grading = false
		p.errText = msg.Err.Error()
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *Player) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	if p.done {
		switch msg.String() {
		case "enter", "esc":
			return p, Navigate(nav.RouteUserDashboard)
		case "s":
			return p, Navigate(nav.RouteViewScores)
		case "q", "ctrl+c":
			return p, tea.Quit
		}
		return p, nil
	}
	if p.loading || p.grading || len(p.questions) == 0 {
		if msg.String() == "ctrl+c" {
			return p, tea.Quit
		}
		return p, nil
	}

	question := p.questions[p.index]
	switch msg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < 3 {
			p.selected++
		}
	case "1", "2", "3", "4":
		p.selected = int(msg.String()[0] - '1')
		p.answers[strconv.Itoa(question.ID)] = optionLetters[p.selected]
	case "enter", " ":
		p.answers[strconv.Itoa(question.ID)] = optionLetters[p.selected]
		if p.index < len(p.questions)-1 {
			p.advance(p.index + 1)
		}
	case "right", "l", "n":
		if p.index < len(p.questions)-1 {
			p.advance(p.index + 1)
		}
	case "left", "h":
		if p.index > 0 {
			p.advance(p.index - 1)
		}
	case "s":
		return p, p.submit()
	case "esc":
		return p, Navigate(nav.RouteTakeQuiz)
	case "ctrl+c":
		return p, tea.Quit
	}
	return p, nil
}

// advance moves to another question, restoring any previous selection.
func (p *Player) advance(index int) {
	p.index = index
	p.selected = 0
	if letter, ok := p.answers[strconv.Itoa(p.questions[index].ID)]; ok {
		for i, l := range optionLetters {
			if l == letter {
				p.selected = i
			}
		}
	}
}

// View implements View.
func (p *Player) View() string {
	theme := p.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Header.Render(theme.Brand.Render("quizdeck") + theme.ListDim.Render("  — "+p.quiz.Name)))
	b.WriteString("\n\n")

	switch {
	case p.loading:
		b.WriteString(theme.ListDim.Render("Loading questions..."))
	case p.done:
		b.WriteString(p.renderResult())
	case len(p.questions) == 0:
		b.WriteString(theme.ListDim.Render("This quiz has no questions yet."))
	default:
		b.WriteString(p.renderQuestion())
	}

	b.WriteString("\n\n")
	if p.errText != "" {
		b.WriteString(theme.Error.Render(p.errText))
		b.WriteString("\n\n")
	}

	switch {
	case p.done:
		b.WriteString(theme.Shortcuts("enter", "dashboard", "s", "scores", "q", "quit"))
	case p.grading:
		b.WriteString(theme.ListDim.Render("Grading..."))
	default:
		b.WriteString(theme.Shortcuts("enter", "answer", "←/→", "move", "s", "submit", "esc", "abandon"))
	}
	return theme.App.Render(b.String())
}

func (p *Player) renderQuestion() string {
	theme := p.deps.Theme
	question := p.questions[p.index]
	var b strings.Builder

	progress := fmt.Sprintf("Question %d of %d  (%d answered)", p.index+1, len(p.questions), len(p.answers))
	if p.quiz.TimeLimit > 0 {
		progress += fmt.Sprintf("  —  %s left", formatRemaining(p.remaining))
	}
	b.WriteString(theme.ListDim.Render(progress))
	b.WriteString("\n\n")

	b.WriteString(theme.Question.Render(p.renderQuestionText(question.QuestionText)))
	b.WriteString("\n\n")

	answered := p.answers[strconv.Itoa(question.ID)]
	for i, option := range question.Options() {
		letter := optionLetters[i]
		line := fmt.Sprintf("%s) %s", letter, option)
		switch {
		case i == p.selected:
			b.WriteString(theme.OptionSelected.Render("> " + line))
		case letter == answered:
			b.WriteString(theme.Option.Render("* " + line))
		default:
			b.WriteString(theme.Option.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderQuestionText optionally renders the question body as markdown.
// Authors on the service side tend to use code fences and emphasis, which
// read far better through glamour than raw.
func (p *Player) renderQuestionText(text string) string {
	if !p.deps.RenderMarkdown {
		return text
	}
	rendered, err := glamour.Render(text, "auto")
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}

func (p *Player) renderResult() string {
	theme := p.deps.Theme
	var b strings.Builder

	b.WriteString(theme.Title.Render("Quiz complete"))
	b.WriteString("\n\n")
	b.WriteString(theme.Success.Render(fmt.Sprintf("You scored %d / %d", p.result.Scored, p.result.Total)))
	b.WriteString("\n\n")

	for i, question := range p.questions {
		letter := p.answers[strconv.Itoa(question.ID)]
		mark := theme.Incorrect.Render("✗")
		if question.IsCorrect(letter) {
			mark = theme.Correct.Render("✓")
		}
		if letter == "" {
			letter = "-"
		}
		b.WriteString(fmt.Sprintf("%s %2d. answered %s, correct %s\n", mark, i+1, letter, question.CorrectOption))
		if !question.IsCorrect(letter) && question.Explanation != "" {
			b.WriteString(theme.ListDim.Render("      " + question.Explanation))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
