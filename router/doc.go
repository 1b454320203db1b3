// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router configures HTTP routes for the Clarity API.

# Usage

	mux := router.NewRouter(manager, cfg, registry)
	http.ListenAndServe(":3318", middleware.CORS(mux))

# Routes

Uses Go 1.22+ method-based routing patterns:

	GET  /health                 → Health check (returns "OK")
	GET  /metrics                → Prometheus exposition
	GET  /quiz/options           → Question counts and Likert labels
	GET  /themes                 → Default theme plus all 16 code themes
	GET  /themes/{code}          → Resolve one code (unknown → default)
	POST /sessions               → Create session (returns session_key)
	GET  /sessions/{id}          → Current session view
	POST /sessions/{id}/start    → Start quiz
	POST /sessions/{id}/answers  → Answer current question
	POST /sessions/{id}/restart  → Reset to welcome
	GET  /                       → API version banner

Session routes require the X-Session-Key header returned on creation.

# Middleware

All API routes are wrapped with middleware.WithLogging. Health, metrics and
the root banner are not logged.
*/
package router
