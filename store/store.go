// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/clarity/models"
)

var ErrNotFound = errors.New("session not found")

// Store holds live sessions. Implementations return copies; callers never
// share a *models.Session with the store.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Put(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
}
