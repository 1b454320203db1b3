// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// Theme is a bundle of visual style tokens for one personality code.
type Theme struct {
	Background            string `json:"background"`
	AccentBackground      string `json:"accent_background"`
	AccentBackgroundHover string `json:"accent_background_hover"`
	AccentText            string `json:"accent_text"`
	HeadingText           string `json:"heading_text"`
	BaseText              string `json:"base_text"`
	BaseBorder            string `json:"base_border"`
}

// IsGradient reports whether Background describes a gradient rather than a flat colour.
func (t Theme) IsGradient() bool {
	return strings.HasPrefix(t.Background, "from-")
}

// IsDefaultAccent reports whether the accent uses the neutral zinc palette.
// Selected controls use dark text on that palette.
func (t Theme) IsDefaultAccent() bool {
	return strings.Contains(t.AccentText, "zinc")
}
