// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"

	"github.com/danielhkuo/clarity/models"
)

// Totals holds the running signed sum for each axis, indexed by models.Axis.
type Totals [len(models.Axes)]int

// Tally sums answer*direction per axis. answers and questions are paired
// positionally and must have the same length; a mismatch is a programming
// error and panics.
func Tally(answers []models.Answer, questions []models.Question) Totals {
	if len(answers) != len(questions) {
		panic(fmt.Sprintf("scoring: %d answers for %d questions", len(answers), len(questions)))
	}

	var totals Totals
	for i, answer := range answers {
		q := questions[i]
		totals[q.Axis] += int(answer) * q.Direction
	}
	return totals
}

// Code resolves each axis independently. Ties (total == 0) go to the
// positive pole.
func (t Totals) Code() models.PersonalityCode {
	letters := make([]byte, len(models.Axes))
	for i, axis := range models.Axes {
		if t[axis] >= 0 {
			letters[i] = axis.PositivePole()
		} else {
			letters[i] = axis.NegativePole()
		}
	}
	return models.PersonalityCode(letters)
}

// Score maps a full answer sequence to a personality code.
func Score(answers []models.Answer, questions []models.Question) models.PersonalityCode {
	return Tally(answers, questions).Code()
}
