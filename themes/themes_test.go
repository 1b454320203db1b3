// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package themes

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/clarity/models"
)

func TestResolve_EveryCodeIsThemed(t *testing.T) {
	for _, code := range models.AllCodes() {
		t.Run(string(code), func(t *testing.T) {
			theme := Resolve(code)
			if theme.AccentBackground == Default.AccentBackground {
				t.Errorf("Expected a non-default accent for %s, got %s", code, theme.AccentBackground)
			}
			if theme.AccentText == Default.AccentText {
				t.Errorf("Expected a non-default accent text for %s, got %s", code, theme.AccentText)
			}
			if !theme.IsGradient() {
				t.Errorf("Expected a gradient background for %s, got %s", code, theme.Background)
			}
		})
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	for _, code := range []models.PersonalityCode{"", "ZZZZ", "enfp", "ENF"} {
		if diff := cmp.Diff(Default, Resolve(code)); diff != "" {
			t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", code, diff)
		}
	}
}

func TestResolve_ENFP(t *testing.T) {
	theme := Resolve("ENFP")
	if theme.AccentBackground != "bg-cyan-500" {
		t.Errorf("Expected bg-cyan-500, got %s", theme.AccentBackground)
	}
	// Fields not overridden come from Default
	if theme.HeadingText != Default.HeadingText || theme.BaseBorder != Default.BaseBorder {
		t.Errorf("Expected default heading and border, got %s / %s", theme.HeadingText, theme.BaseBorder)
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	theme := Resolve("INTJ")
	theme.AccentText = "mutated"

	if Resolve("INTJ").AccentText == "mutated" {
		t.Error("Resolve should not expose the table entry")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 16 {
		t.Fatalf("Expected 16 themes, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Errorf("Expected sorted codes, got %s before %s", all[i-1].Code, all[i].Code)
		}
	}
}

func TestDefaultAccent(t *testing.T) {
	if !Default.IsDefaultAccent() {
		t.Error("Expected Default to use the neutral accent")
	}
	if Resolve("ENFP").IsDefaultAccent() {
		t.Error("Expected ENFP to use a coloured accent")
	}
}
