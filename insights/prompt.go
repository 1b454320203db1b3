// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/danielhkuo/clarity/models"
)

// MinListItems is the smallest list the prompt and schema ask for.
const MinListItems = 3

var sections = []string{
	"A creative, fitting title for this personality type.",
	"An overview of their core traits, motivations and worldview.",
	"A list of key strengths.",
	"A list of weaknesses or growth areas, framed constructively.",
	"A list of career paths that suit their strengths.",
	"How they approach friendships and romantic relationships.",
	"A list of practical personal growth suggestions.",
	"A list of famous real people believed to share this type.",
	"A list of well-known fictional characters with this type.",
	`A "vibe check": a signature color, a defining aesthetic (for example "Cozy Academia" or "Cyberpunk Navigator"), and a short, fun description of their overall vibe.`,
	"Recommendations: lists of hobbies, books, movies, and music genres or artists they would likely enjoy.",
}

// BuildPrompt returns the instruction sent for code.
func BuildPrompt(code models.PersonalityCode) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the personality type %s.\n", code)
	sb.WriteString("Write a detailed, insightful, wholesome and encouraging analysis in a quirky, retro, fun tone.\n")
	sb.WriteString("Cover these sections:\n")
	for i, s := range sections {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}
	fmt.Fprintf(&sb, "Respond with structured JSON only. Every list must contain at least %d items (3-5 is ideal).\n", MinListItems)
	return sb.String()
}

func minItems() *int64 {
	n := int64(MinListItems)
	return &n
}

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func list() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeArray,
		Items:    &genai.Schema{Type: genai.TypeString},
		MinItems: minItems(),
	}
}

// ResponseSchema declares the InsightsReport shape to the provider. It
// mirrors the validate tags on models.InsightsReport.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":               str("A creative title for the personality type."),
			"overview":            str("A detailed overview of the personality."),
			"strengths":           list(),
			"weaknesses":          list(),
			"careerPaths":         list(),
			"relationships":       str("How they approach relationships."),
			"personalGrowth":      list(),
			"famousFigures":       list(),
			"fictionalCharacters": list(),
			"vibe": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"color":       str("A signature color."),
					"aesthetic":   str("A defining aesthetic."),
					"description": str("A short vibe description."),
				},
				Required: []string{"color", "aesthetic", "description"},
			},
			"recommendations": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hobbies": list(),
					"books":   list(),
					"movies":  list(),
					"music":   list(),
				},
				Required: []string{"hobbies", "books", "movies", "music"},
			},
		},
		Required: []string{
			"title", "overview", "strengths", "weaknesses", "careerPaths", "relationships",
			"personalGrowth", "famousFigures", "fictionalCharacters", "vibe", "recommendations",
		},
		PropertyOrdering: []string{
			"title", "overview", "strengths", "weaknesses", "careerPaths", "relationships",
			"personalGrowth", "famousFigures", "fictionalCharacters", "vibe", "recommendations",
		},
	}
}
