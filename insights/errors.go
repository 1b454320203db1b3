// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedResponse = errors.New("malformed insights response")
	ErrTransport         = errors.New("insights transport failure")
)

// MalformedResponseError means the remote exchange succeeded but the payload
// did not decode into a valid report. Reason describes the problem without
// carrying the underlying decoder error.
type MalformedResponseError struct {
	Reason  string
	Payload string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedResponse, e.Reason)
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// TransportError means the remote exchange itself failed: network, auth,
// rate limit, provider fault, or timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Kind names the failure class for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
