// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// SessionState is the Session Controller's current state.
type SessionState string

const (
	StateWelcome SessionState = "welcome"
	StateQuiz    SessionState = "quiz"
	StateLoading SessionState = "loading"
	StateResults SessionState = "results"
	// StateError is only ever rendered, never stored: it marks a Results
	// session that lacks its code or report.
	StateError SessionState = "error"
)

// User-facing messages
const (
	MessageInsightsFailed = "Failed to generate insights. Please try again."
	MessageBrokenResults  = "Something went wrong. Please restart the test."
)

// Session is the persisted state of one quiz session. ThemeCode is empty
// while the default theme is active.
type Session struct {
	ID        string          `json:"id"`
	State     SessionState    `json:"state"`
	Questions []Question      `json:"questions,omitempty"`
	Answers   []Answer        `json:"answers,omitempty"`
	Code      PersonalityCode `json:"code,omitempty"`
	ThemeCode PersonalityCode `json:"theme_code,omitempty"`
	Report    *InsightsReport `json:"report,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Clone returns a copy that shares no slices with s. The report is
// immutable once stored and is shared.
func (s *Session) Clone() *Session {
	c := *s
	if s.Questions != nil {
		c.Questions = append([]Question(nil), s.Questions...)
	}
	if s.Answers != nil {
		c.Answers = append([]Answer(nil), s.Answers...)
	}
	return &c
}

// Request types

type StartQuizRequest struct {
	QuestionCount int `json:"question_count" validate:"required"`
}

// Value is a pointer so a missing value is distinguishable from Neutral (0).
type SubmitAnswerRequest struct {
	Value *int `json:"value" validate:"required,min=-3,max=3"`
}

// Response types

type CreateSessionResponse struct {
	SessionID  string      `json:"session_id"`
	SessionKey string      `json:"session_key"`
	Session    SessionView `json:"session"`
}

// SessionView is what the view layer renders for a session.
type SessionView struct {
	ID          string          `json:"id"`
	State       SessionState    `json:"state"`
	Theme       Theme           `json:"theme"`
	Question    *QuestionView   `json:"question,omitempty"`
	Code        PersonalityCode `json:"code,omitempty"`
	Report      *InsightsReport `json:"report,omitempty"`
	Tabs        []string        `json:"tabs,omitempty"`
	Error       string          `json:"error,omitempty"`
	Recoverable bool            `json:"recoverable,omitempty"`
}

type QuestionView struct {
	Index    int            `json:"index"`
	Number   int            `json:"number"`
	Total    int            `json:"total"`
	Progress float64        `json:"progress"`
	Text     string         `json:"text"`
	Scale    []LikertOption `json:"scale"`
}

type QuizOptionsResponse struct {
	QuestionCounts       []int          `json:"question_counts"`
	DefaultQuestionCount int            `json:"default_question_count"`
	Scale                []LikertOption `json:"scale"`
}

type ThemeResponse struct {
	Code  PersonalityCode `json:"code,omitempty"`
	Theme Theme           `json:"theme"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
