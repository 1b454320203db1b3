// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/clarity/db"
	"github.com/danielhkuo/clarity/models"
)

// SQLStore keeps sessions in the quiz_session table. A session idle longer
// than ttl reads as not found and is removed by PurgeExpired.
type SQLStore struct {
	db     *sql.DB
	dbType string
	ttl    time.Duration
	now    func() time.Time
}

func NewSQLStore(conn *sql.DB, dbType string, ttl time.Duration) *SQLStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &SQLStore{db: conn, dbType: dbType, ttl: ttl, now: time.Now}
}

func (s *SQLStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var payload []byte
	var updatedAt int64
	err := s.db.QueryRowContext(ctx, db.Rebind(s.dbType, `
		SELECT payload, updated_at FROM quiz_session WHERE id = ?
	`), id).Scan(&payload, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if s.expired(updatedAt) {
		return nil, ErrNotFound
	}

	var sess models.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &sess, nil
}

func (s *SQLStore) Put(ctx context.Context, sess *models.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, db.Rebind(s.dbType, `
		INSERT INTO quiz_session (id, state, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			state = excluded.state,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`), sess.ID, string(sess.State), string(payload), sess.CreatedAt.UnixNano(), s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, db.Rebind(s.dbType, `DELETE FROM quiz_session WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes idle sessions and returns how many were removed.
func (s *SQLStore) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.ttl).UnixNano()
	res, err := s.db.ExecContext(ctx, db.Rebind(s.dbType, `DELETE FROM quiz_session WHERE updated_at < ?`), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLStore) expired(updatedAt int64) bool {
	return s.now().Sub(time.Unix(0, updatedAt)) > s.ttl
}
