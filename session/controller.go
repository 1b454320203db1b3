// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/danielhkuo/clarity/models"
	"github.com/danielhkuo/clarity/scoring"
	"github.com/danielhkuo/clarity/themes"
)

var (
	ErrNotFound             = errors.New("session not found")
	ErrInvalidTransition    = errors.New("action not allowed in current state")
	ErrInvalidQuestionCount = errors.New("unsupported question count")
	ErrInvalidAnswer        = errors.New("answer out of range")
)

// Drawer samples k distinct questions. *questionbank.Bank satisfies it.
type Drawer interface {
	Draw(k int) ([]models.Question, error)
}

func transitionError(s *models.Session, action string) error {
	return fmt.Errorf("%w: cannot %s in %s", ErrInvalidTransition, action, s.State)
}

// Start draws count questions and moves a Welcome session into Quiz.
func Start(s *models.Session, bank Drawer, count int) error {
	if s.State != models.StateWelcome {
		return transitionError(s, "start")
	}
	if !models.ValidQuestionCount(count) {
		return fmt.Errorf("%w: %d", ErrInvalidQuestionCount, count)
	}

	questions, err := bank.Draw(count)
	if err != nil {
		return fmt.Errorf("failed to draw questions: %w", err)
	}

	s.Questions = questions
	s.Answers = make([]models.Answer, 0, count)
	s.Error = ""
	s.State = models.StateQuiz
	return nil
}

// Answer records the answer to the current question. After the last one it
// scores the quiz, adopts the code's theme, and moves to Loading; done
// reports that transition.
func Answer(s *models.Session, value models.Answer) (done bool, err error) {
	if s.State != models.StateQuiz {
		return false, transitionError(s, "answer")
	}
	if !value.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidAnswer, value)
	}

	s.Answers = append(s.Answers, value)
	if len(s.Answers) < len(s.Questions) {
		return false, nil
	}

	s.Code = scoring.Score(s.Answers, s.Questions)
	s.ThemeCode = s.Code
	s.State = models.StateLoading
	return true, nil
}

// Complete stores the report and moves a Loading session into Results.
func Complete(s *models.Session, report *models.InsightsReport) error {
	if s.State != models.StateLoading {
		return transitionError(s, "complete")
	}
	s.Report = report
	s.State = models.StateResults
	return nil
}

// Fail discards the quiz, reverts the theme, and returns a Loading session
// to Welcome with a retry message.
func Fail(s *models.Session) error {
	if s.State != models.StateLoading {
		return transitionError(s, "fail")
	}
	reset(s)
	s.Error = models.MessageInsightsFailed
	return nil
}

// Restart resets all derived state and returns to Welcome. Not allowed
// while insights are loading.
func Restart(s *models.Session) error {
	if s.State == models.StateLoading {
		return transitionError(s, "restart")
	}
	reset(s)
	return nil
}

func reset(s *models.Session) {
	s.Questions = nil
	s.Answers = nil
	s.Code = ""
	s.ThemeCode = ""
	s.Report = nil
	s.Error = ""
	s.State = models.StateWelcome
}

// View renders s for the presentation layer.
func View(s *models.Session) models.SessionView {
	v := models.SessionView{
		ID:    s.ID,
		State: s.State,
		Theme: themes.Resolve(s.ThemeCode),
		Error: s.Error,
	}

	switch s.State {
	case models.StateQuiz:
		if i := len(s.Answers); i < len(s.Questions) {
			total := len(s.Questions)
			v.Question = &models.QuestionView{
				Index:    i,
				Number:   i + 1,
				Total:    total,
				Progress: float64(i) / float64(total) * 100,
				Text:     s.Questions[i].Text,
				Scale:    slices.Clone(models.LikertScale),
			}
		}
	case models.StateLoading:
		v.Code = s.Code
	case models.StateResults:
		// Unreachable through the transitions above, but a stored record
		// can still be damaged.
		if !s.Code.Valid() || s.Report == nil {
			v.State = models.StateError
			v.Theme = themes.Default
			v.Error = models.MessageBrokenResults
			v.Recoverable = true
			return v
		}
		v.Code = s.Code
		v.Report = s.Report
		v.Tabs = slices.Clone(models.ResultTabs)
	}
	return v
}
