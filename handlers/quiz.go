// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/danielhkuo/clarity/middleware"
	"github.com/danielhkuo/clarity/models"
	"github.com/danielhkuo/clarity/themes"
)

// QuizHandler serves the static quiz configuration and theme table.
type QuizHandler struct{}

func NewQuizHandler() *QuizHandler {
	return &QuizHandler{}
}

// GetOptions handles GET /quiz/options
func (h *QuizHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.QuizOptionsResponse{
		QuestionCounts:       slices.Clone(models.QuestionCounts),
		DefaultQuestionCount: models.DefaultQuestionCount,
		Scale:                slices.Clone(models.LikertScale),
	})
}

// ListThemes handles GET /themes. The default theme comes first, without a code.
func (h *QuizHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	out := []models.ThemeResponse{{Theme: themes.Default}}
	out = append(out, themes.All()...)
	middleware.JSONResponse(w, http.StatusOK, out)
}

// GetTheme handles GET /themes/{code}. Unknown codes resolve to the default.
func (h *QuizHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	code := models.PersonalityCode(strings.ToUpper(r.PathValue("code")))
	resp := models.ThemeResponse{Theme: themes.Resolve(code)}
	if code.Valid() {
		resp.Code = code
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
