// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// InsightsReport is the narrative report produced for a personality code.
// The validate tags are the response contract: a report that fails
// validation is treated as malformed.
type InsightsReport struct {
	Title               string           `json:"title" validate:"required"`
	Overview            string           `json:"overview" validate:"required"`
	Strengths           []string         `json:"strengths" validate:"required,min=3,dive,required"`
	Weaknesses          []string         `json:"weaknesses" validate:"required,min=3,dive,required"`
	CareerPaths         []string         `json:"careerPaths" validate:"required,min=3,dive,required"`
	Relationships       string           `json:"relationships" validate:"required"`
	PersonalGrowth      []string         `json:"personalGrowth" validate:"required,min=3,dive,required"`
	FamousFigures       []string         `json:"famousFigures" validate:"required,min=3,dive,required"`
	FictionalCharacters []string         `json:"fictionalCharacters" validate:"required,min=3,dive,required"`
	Vibe                *Vibe            `json:"vibe" validate:"required"`
	Recommendations     *Recommendations `json:"recommendations" validate:"required"`
}

type Vibe struct {
	Color       string `json:"color" validate:"required"`
	Aesthetic   string `json:"aesthetic" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type Recommendations struct {
	Hobbies []string `json:"hobbies" validate:"required,min=3,dive,required"`
	Books   []string `json:"books" validate:"required,min=3,dive,required"`
	Movies  []string `json:"movies" validate:"required,min=3,dive,required"`
	Music   []string `json:"music" validate:"required,min=3,dive,required"`
}

// Result tabs in display order.
const (
	TabOverview      = "overview"
	TabStrengths     = "strengths"
	TabVibe          = "vibe"
	TabFriends       = "friends"
	TabRecs          = "recs"
	TabCareers       = "careers"
	TabRelationships = "relationships"
	TabGrowth        = "growth"
)

var ResultTabs = []string{
	TabOverview, TabStrengths, TabVibe, TabFriends,
	TabRecs, TabCareers, TabRelationships, TabGrowth,
}
