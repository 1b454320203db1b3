// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth issues session identifiers and the keys that guard them.

# Session IDs

Sessions are addressed by random UUIDs:

	id := auth.NewSessionID()
	err := auth.ValidateSessionID(id)

# Session Keys

Session keys use HMAC-SHA256 to create deterministic, verifiable keys:

	key := auth.GenerateSessionKey(sessionID, salt)
	err := auth.ValidateSessionKey(sessionID, key, salt)

The key is URL-safe base64 encoded without padding and is sent back in the
X-Session-Key header. Since it's deterministic, validation needs no stored
secret per session.
*/
package auth
