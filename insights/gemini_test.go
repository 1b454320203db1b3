// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"context"
	"testing"
)

func TestNewGeminiGenerator_Model(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), "test-key", "")
	if err != nil {
		t.Fatal(err)
	}
	if gen.Model() != DefaultModel {
		t.Errorf("Expected %s, got %s", DefaultModel, gen.Model())
	}

	gen, err = NewGeminiGenerator(context.Background(), "test-key", "gemini-custom")
	if err != nil {
		t.Fatal(err)
	}
	if gen.Model() != "gemini-custom" {
		t.Errorf("Expected gemini-custom, got %s", gen.Model())
	}
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), "", ""); err == nil {
		t.Error("Expected an error without an API key")
	}
}
