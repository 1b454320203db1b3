// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/clarity/cliparse"
	"github.com/danielhkuo/clarity/handlers"
	"github.com/danielhkuo/clarity/middleware"
)

// NewRouter builds the route table. gatherer backs GET /metrics; nil uses
// the default Prometheus registry.
func NewRouter(sessions handlers.SessionService, cfg cliparse.Config, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessions, cfg)
	quizHandler := handlers.NewQuizHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Static quiz configuration
	mux.HandleFunc("GET /quiz/options", middleware.WithLogging(quizHandler.GetOptions))
	mux.HandleFunc("GET /themes", middleware.WithLogging(quizHandler.ListThemes))
	mux.HandleFunc("GET /themes/{code}", middleware.WithLogging(quizHandler.GetTheme))

	// Session lifecycle (X-Session-Key after creation)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /sessions/{id}/start", middleware.WithLogging(sessionHandler.StartQuiz))
	mux.HandleFunc("POST /sessions/{id}/answers", middleware.WithLogging(sessionHandler.SubmitAnswer))
	mux.HandleFunc("POST /sessions/{id}/restart", middleware.WithLogging(sessionHandler.RestartSession))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("clarity API v1"))
	})

	return mux
}
