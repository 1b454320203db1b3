// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus collectors for quiz sessions and
// insight generation. All methods are safe on a nil *Metrics.
package metrics
