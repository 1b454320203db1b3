// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// SessionKeyHeader carries the key for the session in the request path.
const SessionKeyHeader = "X-Session-Key"

var (
	ErrInvalidSessionKey = errors.New("invalid session key")
	ErrInvalidSessionID  = errors.New("invalid session id")
)

// NewSessionID returns a random UUID for a new quiz session.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidateSessionID checks that id is a well-formed UUID.
func ValidateSessionID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidSessionID
	}
	return nil
}

// GenerateSessionKey creates an HMAC-based key for a session.
// This is deterministic and verifiable
func GenerateSessionKey(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateSessionKey checks if the provided key is valid for the session
func ValidateSessionKey(sessionID, key, salt string) error {
	expected := GenerateSessionKey(sessionID, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidSessionKey
	}
	return nil
}
