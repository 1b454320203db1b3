// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := sqliteSchema
	if dbType == TypePostgres {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
// Queries must not contain literal question marks.
func Rebind(dbType, query string) string {
	if dbType != TypePostgres {
		return query
	}

	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

const postgresSchema = `
-- Live quiz sessions (removed on expiry)
CREATE TABLE IF NOT EXISTS quiz_session (
    id TEXT PRIMARY KEY,
    state TEXT NOT NULL CHECK (state IN ('welcome', 'quiz', 'loading', 'results')),
    payload JSONB NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_session_updated_at ON quiz_session(updated_at);
`

const sqliteSchema = `
-- Live quiz sessions (removed on expiry)
CREATE TABLE IF NOT EXISTS quiz_session (
    id TEXT PRIMARY KEY,
    state TEXT NOT NULL CHECK (state IN ('welcome', 'quiz', 'loading', 'results')),
    payload TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_session_updated_at ON quiz_session(updated_at);
`
