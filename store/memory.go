// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/danielhkuo/clarity/models"
)

const (
	defaultMemorySize = 10000
	defaultTTL        = 2 * time.Hour
)

// MemoryStore keeps sessions in a bounded LRU. Entries expire ttl after
// their last Put; the least recently used entry is evicted when full.
type MemoryStore struct {
	cache *expirable.LRU[string, *models.Session]
}

// NewMemoryStore creates a MemoryStore. Zero values fall back to defaults.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = defaultMemorySize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	onEvict := func(id string, _ *models.Session) {
		slog.Debug("session evicted", "session_id", id)
	}
	return &MemoryStore{cache: expirable.NewLRU[string, *models.Session](size, onEvict, ttl)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Put(_ context.Context, s *models.Session) error {
	m.cache.Add(s.ID, s.Clone())
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int { return m.cache.Len() }
