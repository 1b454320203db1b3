// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQL session store DSN (empty: in-memory store)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionKeySalt: Secret for session key HMAC (required)
  - APIKey: Gemini API credential (required)
  - Model: Gemini model (empty: insights.DefaultModel)
  - InsightTimeout: Limit on one insight request (default: 30s; negative, e.g. -1s, disables it)
  - SessionTTL: Idle session lifetime (default: 2h)
  - SessionCacheSize: In-memory store capacity (default: 10000)
  - QuestionBankPath: YAML question bank (default: embedded bank)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	-session-salt      Session key salt
	-api-key           Gemini API key
	-model             Gemini model
	-insight-timeout   Insight request timeout
	-session-ttl       Session lifetime
	-session-cache     In-memory session capacity
	-questions         Question bank path
	-log-level         Log level
	-env-file          Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	SESSION_KEY_SALT   → -session-salt
	GEMINI_API_KEY     → -api-key (API_KEY is also accepted)
	GEMINI_MODEL       → -model
	INSIGHT_TIMEOUT    → -insight-timeout
	SESSION_TTL        → -session-ttl
	SESSION_CACHE_SIZE → -session-cache
	QUESTION_BANK_PATH → -questions
	LOG_LEVEL          → -log-level

CLI flags take precedence over environment variables. Before the fallback,
the dotenv file is loaded with godotenv; variables already present in the
environment are not overwritten, and a missing file is ignored.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - SESSION_KEY_SALT must be provided
  - GEMINI_API_KEY (or API_KEY) must be provided
  - durations use time.ParseDuration syntax; zero means the default
  - SESSION_TTL and SESSION_CACHE_SIZE must not be negative
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
