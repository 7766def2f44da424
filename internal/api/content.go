// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// content.go - typed pass-throughs for the quiz content endpoints.
//
// These all ride the shared request path in client.go and therefore inherit
// bearer attachment and error logging without any per-endpoint logic.

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jeranaias/quizdeck-tui/internal/model"
)

// =============================================================================
// SUBJECTS
// =============================================================================

// Subjects fetches all subjects.
func (c *Client) Subjects(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := c.do(ctx, http.MethodGet, "/subjects", nil, nil, &subjects)
	return subjects, err
}

// CreateSubject adds a new subject.
func (c *Client) CreateSubject(ctx context.Context, subject model.Subject) (model.Subject, error) {
	var created model.Subject
	err := c.do(ctx, http.MethodPost, "/subjects", nil, subject, &created)
	return created, err
}

// UpdateSubject updates an existing subject.
func (c *Client) UpdateSubject(ctx context.Context, id int, subject model.Subject) (model.Subject, error) {
	var updated model.Subject
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/subjects/%d", id), nil, subject, &updated)
	return updated, err
}

// DeleteSubject deletes a subject and, server-side, its chapters.
func (c *Client) DeleteSubject(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/subjects/%d", id), nil, nil, nil)
}

// =============================================================================
// CHAPTERS
// =============================================================================

// Chapters fetches the chapters of a subject.
func (c *Client) Chapters(ctx context.Context, subjectID int) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/subjects/%d/chapters", subjectID), nil, nil, &chapters)
	return chapters, err
}

// CreateChapter adds a new chapter.
func (c *Client) CreateChapter(ctx context.Context, chapter model.Chapter) (model.Chapter, error) {
	var created model.Chapter
	err := c.do(ctx, http.MethodPost, "/chapters", nil, chapter, &created)
	return created, err
}

// UpdateChapter updates an existing chapter.
func (c *Client) UpdateChapter(ctx context.Context, id int, chapter model.Chapter) (model.Chapter, error) {
	var updated model.Chapter
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/chapters/%d", id), nil, chapter, &updated)
	return updated, err
}

// DeleteChapter deletes a chapter.
func (c *Client) DeleteChapter(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/chapters/%d", id), nil, nil, nil)
}

// =============================================================================
// QUIZZES
// =============================================================================

// Quizzes fetches the quizzes of a chapter.
func (c *Client) Quizzes(ctx context.Context, chapterID int) ([]model.Quiz, error) {
	query := url.Values{"chapter_id": {strconv.Itoa(chapterID)}}
	var quizzes []model.Quiz
	err := c.do(ctx, http.MethodGet, "/quizzes", query, nil, &quizzes)
	return quizzes, err
}

// CreateQuiz adds a new quiz.
func (c *Client) CreateQuiz(ctx context.Context, quiz model.Quiz) (model.Quiz, error) {
	var created model.Quiz
	err := c.do(ctx, http.MethodPost, "/quizzes", nil, quiz, &created)
	return created, err
}

// UpdateQuiz updates an existing quiz.
func (c *Client) UpdateQuiz(ctx context.Context, id int, quiz model.Quiz) (model.Quiz, error) {
	var updated model.Quiz
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/quizzes/%d", id), nil, quiz, &updated)
	return updated, err
}

// DeleteQuiz deletes a quiz.
func (c *Client) DeleteQuiz(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/quizzes/%d", id), nil, nil, nil)
}

// =============================================================================
// QUESTIONS
// =============================================================================

// Questions fetches the questions of a quiz.
func (c *Client) Questions(ctx context.Context, quizID int) ([]model.Question, error) {
	var questions []model.Question
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/quizzes/%d/questions", quizID), nil, nil, &questions)
	return questions, err
}

// CreateQuestion adds a new question.
func (c *Client) CreateQuestion(ctx context.Context, question model.Question) (model.Question, error) {
	var created model.Question
	err := c.do(ctx, http.MethodPost, "/questions", nil, question, &created)
	return created, err
}

// UpdateQuestion updates an existing question.
func (c *Client) UpdateQuestion(ctx context.Context, id int, question model.Question) (model.Question, error) {
	var updated model.Question
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/questions/%d", id), nil, question, &updated)
	return updated, err
}

// DeleteQuestion deletes a question.
func (c *Client) DeleteQuestion(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil, nil, nil)
}

// =============================================================================
// SCORES
// =============================================================================

// QuizSubmission is the body for submitting a completed quiz: answers maps
// question ID (as a string, per the wire format) to the chosen option
// letter, plus the time taken in minutes.
type QuizSubmission struct {
	Answers   map[string]string `json:"answers"`
	TimeTaken int               `json:"time_taken"`
}

// SubmissionResult is the server's grading of a submitted quiz.
type SubmissionResult struct {
	Message     string `json:"message,omitempty"`
	TotalScored int    `json:"total_scored"`
	TotalMarks  int    `json:"total_marks,omitempty"`
}

// SubmitQuiz submits a completed quiz for grading and score recording.
func (c *Client) SubmitQuiz(ctx context.Context, quizID int, sub QuizSubmission) (SubmissionResult, error) {
	var result SubmissionResult
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/quizzes/%d/submit", quizID), nil, sub, &result)
	return result, err
}

// Scores fetches recorded quiz attempts.
func (c *Client) Scores(ctx context.Context) ([]model.Score, error) {
	var scores []model.Score
	err := c.do(ctx, http.MethodGet, "/scores", nil, nil, &scores)
	return scores, err
}
