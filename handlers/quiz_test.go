// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/clarity/models"
	"github.com/danielhkuo/clarity/testutil"
	"github.com/danielhkuo/clarity/themes"
)

func TestGetOptions(t *testing.T) {
	h := NewQuizHandler()
	w := httptest.NewRecorder()
	h.GetOptions(w, testutil.MakeRequest("GET", "/quiz/options", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuizOptionsResponse
	testutil.AssertJSON(t, w, &resp)

	want := models.QuizOptionsResponse{
		QuestionCounts:       []int{10, 25, 50},
		DefaultQuestionCount: 25,
		Scale:                models.LikertScale,
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestListThemes(t *testing.T) {
	h := NewQuizHandler()
	w := httptest.NewRecorder()
	h.ListThemes(w, testutil.MakeRequest("GET", "/themes", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.ThemeResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != 17 {
		t.Fatalf("Expected default plus 16 themes, got %d", len(resp))
	}
	if resp[0].Code != "" || resp[0].Theme != themes.Default {
		t.Errorf("Expected default theme first, got %+v", resp[0])
	}
	for _, tr := range resp[1:] {
		if tr.Theme != themes.Resolve(tr.Code) {
			t.Errorf("Theme for %s does not match resolver", tr.Code)
		}
	}
}

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantCode models.PersonalityCode
		want     models.Theme
	}{
		{"known code", "INTJ", "INTJ", themes.Resolve("INTJ")},
		{"lower case", "enfp", "ENFP", themes.Resolve("ENFP")},
		{"unknown code", "ZZZZ", "", themes.Default},
	}

	h := NewQuizHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/themes/"+tt.code, nil, nil)
			req.SetPathValue("code", tt.code)
			w := httptest.NewRecorder()

			h.GetTheme(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.ThemeResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Code != tt.wantCode {
				t.Errorf("Expected code %q, got %q", tt.wantCode, resp.Code)
			}
			if resp.Theme != tt.want {
				t.Errorf("Expected theme %+v, got %+v", tt.want, resp.Theme)
			}
		})
	}
}
