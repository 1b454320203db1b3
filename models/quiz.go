// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// Axis is one of the four bipolar trait dimensions.
type Axis int

const (
	AxisIE Axis = iota // Introversion/Extraversion
	AxisSN             // Sensing/Intuition
	AxisTF             // Thinking/Feeling
	AxisJP             // Judging/Perceiving
)

// Axes lists every axis in code order.
var Axes = [...]Axis{AxisIE, AxisSN, AxisTF, AxisJP}

var axisNames = [...]string{"IE", "SN", "TF", "JP"}

var axisLabels = [...]string{
	"Introversion/Extraversion",
	"Sensing/Intuition",
	"Thinking/Feeling",
	"Judging/Perceiving",
}

// positive pole first
var axisPoles = [...][2]byte{{'E', 'I'}, {'N', 'S'}, {'F', 'T'}, {'P', 'J'}}

func (a Axis) Valid() bool { return a >= AxisIE && a <= AxisJP }

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Label returns the human-readable axis name.
func (a Axis) Label() string {
	if !a.Valid() {
		return a.String()
	}
	return axisLabels[a]
}

// PositivePole is the letter selected when the axis total is >= 0.
func (a Axis) PositivePole() byte { return axisPoles[a][0] }

// NegativePole is the letter selected when the axis total is < 0.
func (a Axis) NegativePole() byte { return axisPoles[a][1] }

func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid axis %d", int(a))
	}
	return []byte(axisNames[a]), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	for i, name := range axisNames {
		if string(text) == name {
			*a = Axis(i)
			return nil
		}
	}
	return fmt.Errorf("unknown axis %q", text)
}

// Question is a single statement from the question bank. Direction is +1 when
// agreement pushes the axis toward its positive pole and -1 otherwise.
type Question struct {
	Text      string `json:"text" yaml:"text"`
	Axis      Axis   `json:"axis" yaml:"axis"`
	Direction int    `json:"direction" yaml:"direction"`
}

// Answer is a seven-point Likert value in [-3, 3].
type Answer int

const (
	MinAnswer Answer = -3
	MaxAnswer Answer = 3
)

func (v Answer) Valid() bool { return v >= MinAnswer && v <= MaxAnswer }

// LikertOption pairs an answer value with its display label.
type LikertOption struct {
	Value Answer `json:"value"`
	Label string `json:"label"`
}

// LikertScale is ordered from strongest disagreement to strongest agreement.
var LikertScale = []LikertOption{
	{-3, "Strongly Disagree"},
	{-2, "Disagree"},
	{-1, "Slightly Disagree"},
	{0, "Neutral"},
	{1, "Slightly Agree"},
	{2, "Agree"},
	{3, "Strongly Agree"},
}

// Supported question counts for a quiz.
var QuestionCounts = []int{10, 25, 50}

const DefaultQuestionCount = 25

// ValidQuestionCount reports whether n is one of QuestionCounts.
func ValidQuestionCount(n int) bool {
	for _, c := range QuestionCounts {
		if c == n {
			return true
		}
	}
	return false
}

// PersonalityCode is a four-letter code such as "ENFP".
type PersonalityCode string

// Valid reports whether c has one letter from each axis' pole pair, in axis order.
func (c PersonalityCode) Valid() bool {
	if len(c) != len(Axes) {
		return false
	}
	for i, a := range Axes {
		if c[i] != a.PositivePole() && c[i] != a.NegativePole() {
			return false
		}
	}
	return true
}

// AllCodes returns the sixteen valid codes.
func AllCodes() []PersonalityCode {
	codes := make([]PersonalityCode, 0, 16)
	for mask := 0; mask < 16; mask++ {
		b := make([]byte, len(Axes))
		for i, a := range Axes {
			if mask&(1<<(len(Axes)-1-i)) == 0 {
				b[i] = a.PositivePole()
			} else {
				b[i] = a.NegativePole()
			}
		}
		codes = append(codes, PersonalityCode(b))
	}
	return codes
}
