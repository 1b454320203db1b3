// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store keeps live quiz sessions.

# Implementations

  - MemoryStore: bounded LRU with per-entry TTL (hashicorp/golang-lru expirable)
  - SQLStore: quiz_session table on SQLite or PostgreSQL

main picks SQLStore when a database URL is configured and MemoryStore
otherwise.

# Expiry

Both stores forget a session that has not been written for the session
TTL. MemoryStore evicts automatically; SQLStore hides expired rows from Get
and deletes them when PurgeExpired runs.

Get returns ErrNotFound for unknown or expired sessions.
*/
package store
