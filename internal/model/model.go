// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// ROLES AND IDENTITY
// =============================================================================

// Role is a user role as issued by the remote service.
type Role string

const (
	// RoleAdmin curates subjects, chapters, quizzes, and questions.
	RoleAdmin Role = "admin"

	// RoleUser takes quizzes and views scores.
	RoleUser Role = "user"
)

// Valid reports whether the role is one the client knows about.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the authenticated user's profile as returned at login time.
// It is held in memory only; it is never persisted client-side.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     Role   `json:"role"`
}

// =============================================================================
// AUTH REQUEST/RESPONSE SHAPES
// =============================================================================

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	FullName      string `json:"full_name,omitempty"`
	Qualification string `json:"qualification,omitempty"`
	DOB           string `json:"dob,omitempty"` // YYYY-MM-DD
}

// LoginResponse is the login response body. AuthToken is the opaque bearer
// credential; the remaining fields describe the authenticated identity.
type LoginResponse struct {
	Message   string `json:"message,omitempty"`
	AuthToken string `json:"auth_token"`
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// Identity extracts the identity half of the login response.
func (r LoginResponse) Identity() Identity {
	return Identity{
		ID:       r.ID,
		Username: r.Username,
		Email:    r.Email,
		Role:     r.Role,
	}
}

// =============================================================================
// QUIZ CONTENT
// =============================================================================

// Subject is a top-level content category.
type Subject struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Chapter belongs to a subject.
type Chapter struct {
	ID          int       `json:"id"`
	SubjectID   int       `json:"subject_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Quiz belongs to a chapter.
type Quiz struct {
	ID              int       `json:"id"`
	ChapterID       int       `json:"chapter_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DifficultyLevel string    `json:"difficulty_level,omitempty"` // Easy, Medium, Hard
	TimeLimit       int       `json:"time_limit,omitempty"`       // Minutes
	TotalMarks      int       `json:"total_marks,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// Question is a four-option multiple-choice question.
type Question struct {
	ID            int    `json:"id"`
	QuizID        int    `json:"quiz_id"`
	QuestionText  string `json:"question_text"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	CorrectOption string `json:"correct_option"` // "A", "B", "C", or "D"
	Explanation   string `json:"explanation,omitempty"`
	Marks         int    `json:"marks,omitempty"`
}

// Options returns the four answer options in display order.
func (q Question) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// IsCorrect reports whether the given option letter matches the answer key.
func (q Question) IsCorrect(option string) bool {
	return option != "" && option == q.CorrectOption
}

// Score is a recorded quiz attempt as held by the remote service.
type Score struct {
	ID             int       `json:"id"`
	QuizID         int       `json:"quiz_id"`
	UserID         int       `json:"user_id"`
	TotalScored    int       `json:"total_scored"`
	TotalTimeTaken int       `json:"total_time_taken,omitempty"` // Minutes
	AttemptedAt    time.Time `json:"time_stamp_of_attempt,omitempty"`
}
