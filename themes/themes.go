// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package themes

import (
	"sort"

	"github.com/danielhkuo/clarity/models"
)

// Default is used for the welcome screen, for unknown codes, and after a
// failed insight request.
var Default = models.Theme{
	Background:            "bg-zinc-900",
	AccentBackground:      "bg-zinc-200",
	AccentBackgroundHover: "hover:bg-zinc-300",
	AccentText:            "text-zinc-100",
	HeadingText:           "text-white",
	BaseText:              "text-zinc-400",
	BaseBorder:            "border-zinc-700/50",
}

// accent builds a code theme on top of Default.
func accent(bg, accentBg, hover, text string) models.Theme {
	t := Default
	t.Background = bg
	t.AccentBackground = accentBg
	t.AccentBackgroundHover = hover
	t.AccentText = text
	return t
}

var table = map[models.PersonalityCode]models.Theme{
	// Analysts (NT)
	"INTJ": accent("from-gray-900 to-slate-900", "bg-violet-600", "hover:bg-violet-500", "text-violet-400"),
	"INTP": accent("from-gray-900 to-slate-900", "bg-purple-600", "hover:bg-purple-500", "text-purple-400"),
	"ENTJ": accent("from-gray-900 to-slate-900", "bg-red-700", "hover:bg-red-600", "text-red-500"),
	"ENTP": accent("from-gray-900 to-slate-900", "bg-rose-600", "hover:bg-rose-500", "text-rose-400"),

	// Diplomats (NF)
	"INFJ": accent("from-emerald-950 to-gray-900", "bg-emerald-600", "hover:bg-emerald-500", "text-emerald-400"),
	"INFP": accent("from-sky-950 to-gray-900", "bg-sky-500", "hover:bg-sky-400", "text-sky-300"),
	"ENFJ": accent("from-teal-950 to-gray-900", "bg-teal-500", "hover:bg-teal-400", "text-teal-300"),
	"ENFP": accent("from-cyan-950 to-gray-900", "bg-cyan-500", "hover:bg-cyan-400", "text-cyan-300"),

	// Sentinels (SJ)
	"ISTJ": accent("from-blue-950 to-slate-900", "bg-blue-700", "hover:bg-blue-600", "text-blue-400"),
	"ISFJ": accent("from-slate-900 to-gray-800", "bg-slate-500", "hover:bg-slate-400", "text-slate-300"),
	"ESTJ": accent("from-stone-900 to-gray-900", "bg-amber-700", "hover:bg-amber-600", "text-amber-500"),
	"ESFJ": accent("from-orange-950 to-stone-900", "bg-orange-500", "hover:bg-orange-400", "text-orange-300"),

	// Explorers (SP)
	"ISTP": accent("from-zinc-900 to-gray-900", "bg-zinc-600", "hover:bg-zinc-500", "text-zinc-400"),
	"ISFP": accent("from-yellow-950 to-stone-900", "bg-yellow-500", "hover:bg-yellow-400", "text-yellow-300"),
	"ESTP": accent("from-red-950 to-gray-900", "bg-red-600", "hover:bg-red-500", "text-red-400"),
	"ESFP": accent("from-pink-950 to-rose-950", "bg-pink-500", "hover:bg-pink-400", "text-pink-300"),
}

// Resolve returns the theme for code, or Default when code is empty or
// not one of the sixteen codes.
func Resolve(code models.PersonalityCode) models.Theme {
	if t, ok := table[code]; ok {
		return t
	}
	return Default
}

// All returns every code theme, sorted by code.
func All() []models.ThemeResponse {
	out := make([]models.ThemeResponse, 0, len(table))
	for code, t := range table {
		out = append(out, models.ThemeResponse{Code: code, Theme: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
