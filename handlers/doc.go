// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Clarity API.

# Handler Types

  - SessionHandler: Session lifecycle (create, start, answer, restart)
  - QuizHandler: Quiz options and the theme table

SessionHandler drives a SessionService, normally *session.Manager:

	sessionHandler := handlers.NewSessionHandler(manager, cfg)

# Session Lifecycle

	POST /sessions               → CreateSession (returns session_key)
	POST /sessions/{id}/start    → StartQuiz {"question_count": 10|25|50}
	POST /sessions/{id}/answers  → SubmitAnswer {"value": -3..3}
	GET  /sessions/{id}          → GetSession
	POST /sessions/{id}/restart  → RestartSession

Every call after creation requires the X-Session-Key header. The final
answer returns 202 Accepted with the session in "loading"; clients poll
GetSession until it reaches "results" or falls back to "welcome" with an
error message.

# Status Codes

	400  malformed JSON, missing field, out-of-range value, unsupported count
	401  missing or wrong session key
	404  unknown or expired session
	409  action not allowed in the current state
	500  storage failure (details are logged, not returned)
*/
package handlers
