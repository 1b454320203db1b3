// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the session database and creates its schema.

# Drivers

Two database types are supported:

	sqlite    modernc.org/sqlite (pure Go)
	postgres  github.com/lib/pq

	conn, err := db.Open(db.TypeSQLite, "file:clarity.db")
	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call CreateSchema multiple times - uses IF NOT EXISTS for all
tables and indexes.

# Tables

  - quiz_session: one row per live session; payload holds the JSON-encoded
    models.Session, timestamps are Unix nanoseconds

Rows are deleted when a session expires. No quiz history is kept.

# Placeholders

Queries are written with ? placeholders and passed through Rebind, which
converts them to $N for PostgreSQL.
*/
package db
