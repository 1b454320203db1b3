// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package themes maps personality codes to visual themes.
//
// The table is a fixed map literal with one entry per code. Resolve never
// fails: an empty or unrecognised code yields Default.
package themes
