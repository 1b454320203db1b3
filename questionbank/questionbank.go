// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questionbank

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/clarity/models"
)

//go:embed questions.yaml
var embedded []byte

var ErrNotEnoughQuestions = errors.New("not enough questions in bank")

// Bank is an immutable, validated set of questions.
type Bank struct {
	questions []models.Question

	mu  sync.Mutex
	rng *rand.Rand // nil uses the global source
}

type bankFile struct {
	Questions []models.Question `yaml:"questions"`
}

// Parse decodes and validates a YAML question bank.
func Parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	for i, q := range f.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("question %d: text is required", i)
		}
		if !q.Axis.Valid() {
			return nil, fmt.Errorf("question %d: invalid axis", i)
		}
		if q.Direction != 1 && q.Direction != -1 {
			return nil, fmt.Errorf("question %d: direction must be 1 or -1, got %d", i, q.Direction)
		}
	}

	// Every supported quiz length must be drawable
	need := slices.Max(models.QuestionCounts)
	if len(f.Questions) < need {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughQuestions, len(f.Questions), need)
	}

	return &Bank{questions: f.Questions}, nil
}

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	return Parse(embedded)
}

// Load reads a bank from path, or returns Default when path is empty.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}
	return Parse(data)
}

// WithRand makes draws use r. Intended for tests that need a fixed sequence.
func (b *Bank) WithRand(r *rand.Rand) *Bank {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rng = r
	return b
}

func (b *Bank) Len() int { return len(b.questions) }

// Questions returns a copy of every question in bank order.
func (b *Bank) Questions() []models.Question {
	return slices.Clone(b.questions)
}

// Draw returns k distinct questions chosen uniformly at random. It shuffles
// a copy of the bank (Fisher-Yates) and keeps the first k.
func (b *Bank) Draw(k int) ([]models.Question, error) {
	if k < 0 || k > len(b.questions) {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrNotEnoughQuestions, len(b.questions), k)
	}

	shuffled := slices.Clone(b.questions)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }

	b.mu.Lock()
	if b.rng != nil {
		b.rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}
	b.mu.Unlock()

	return shuffled[:k:k], nil
}
