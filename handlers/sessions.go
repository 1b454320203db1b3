// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/clarity/auth"
	"github.com/danielhkuo/clarity/cliparse"
	"github.com/danielhkuo/clarity/middleware"
	"github.com/danielhkuo/clarity/models"
	"github.com/danielhkuo/clarity/session"
)

// SessionService is the session API the handlers drive. *session.Manager
// implements it.
type SessionService interface {
	Create(ctx context.Context) (models.SessionView, error)
	Get(ctx context.Context, id string) (models.SessionView, error)
	Start(ctx context.Context, id string, count int) (models.SessionView, error)
	Answer(ctx context.Context, id string, value models.Answer) (models.SessionView, error)
	Restart(ctx context.Context, id string) (models.SessionView, error)
}

type SessionHandler struct {
	sessions SessionService
	cfg      cliparse.Config
}

func NewSessionHandler(sessions SessionService, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{sessions: sessions, cfg: cfg}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Create(r.Context())
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:  view.ID,
		SessionKey: auth.GenerateSessionKey(view.ID, h.cfg.SessionKeySalt),
		Session:    view,
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}

	view, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		writeSessionError(w, id, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}

// StartQuiz handles POST /sessions/{id}/start
func (h *SessionHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req models.StartQuizRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.sessions.Start(r.Context(), id, req.QuestionCount)
	if err != nil {
		writeSessionError(w, id, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}

// SubmitAnswer handles POST /sessions/{id}/answers
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req models.SubmitAnswerRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.sessions.Answer(r.Context(), id, models.Answer(*req.Value))
	if err != nil {
		writeSessionError(w, id, err)
		return
	}

	// The final answer hands off to insight generation
	status := http.StatusOK
	if view.State == models.StateLoading {
		status = http.StatusAccepted
	}
	middleware.JSONResponse(w, status, view)
}

// RestartSession handles POST /sessions/{id}/restart
func (h *SessionHandler) RestartSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}

	view, err := h.sessions.Restart(r.Context(), id)
	if err != nil {
		writeSessionError(w, id, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}

// authorize checks the session id and its X-Session-Key. On failure it has
// already written the response.
func (h *SessionHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if err := auth.ValidateSessionID(id); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return "", false
	}

	key := r.Header.Get(auth.SessionKeyHeader)
	if err := auth.ValidateSessionKey(id, key, h.cfg.SessionKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session key")
		return "", false
	}
	return id, true
}

func writeSessionError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, session.ErrInvalidQuestionCount), errors.Is(err, session.ErrInvalidAnswer):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrInvalidTransition):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("session operation failed", "session_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Something went wrong")
	}
}
