// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Clarity API server.

Clarity is a personality quiz: it asks a random subset of Likert-scale
questions, scores the answers along four bipolar axes into a four-letter
code, and asks a generative model for a narrative report on that code. The
result is shown with a code-specific colour theme.

# Starting the Server

The server requires two secrets, from the environment, a .env file, or
CLI flags:

	SESSION_KEY_SALT=... GEMINI_API_KEY=... go run .

Or with flags:

	go run . -p 3318 -session-salt dev -api-key "$GEMINI_API_KEY"

# Configuration

Required settings:

  - SESSION_KEY_SALT (-session-salt): Secret for session key HMAC
  - GEMINI_API_KEY or API_KEY (-api-key): Insight provider credential

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): SQL session store; sessions
    stay in memory when no URL is set
  - GEMINI_MODEL, INSIGHT_TIMEOUT, SESSION_TTL, SESSION_CACHE_SIZE,
    QUESTION_BANK_PATH, LOG_LEVEL

See package cliparse for the full list.

# Lifecycle

The HTTP server, the expired-session purge (SQL store only) and signal
handling run in one errgroup. On SIGINT or SIGTERM the server stops
accepting requests and pending insight requests get up to the insight
timeout to finish before they are cancelled.

# Architecture

  - handlers: HTTP request handlers (sessions, quiz options, themes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, request validation
  - session: Quiz state machine and session manager
  - scoring: Answers to personality code
  - themes: Personality code to visual theme
  - insights: Gemini client, prompt, response schema and validation
  - questionbank: Embedded YAML question bank and random draws
  - store: In-memory and SQL session stores
  - db: Driver selection and schema creation
  - auth: Session IDs and keys
  - metrics: Prometheus collectors
  - models: Shared types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
