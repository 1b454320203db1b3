// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the quiz domain, request, and response types.

# Quiz Types

  - Axis: one of IE, SN, TF, JP (text-encoded as those two letters)
  - Question: text, axis, direction (+1 or -1)
  - Answer: Likert value in [-3, 3]
  - PersonalityCode: four letters, one pole per axis (e.g. "ENFP")

Each axis has a positive and a negative pole:

	IE: E / I
	SN: N / S
	TF: F / T
	JP: P / J

# Presentation Types

  - Theme: visual style tokens for a code
  - InsightsReport: narrative report returned by the insight service
  - SessionView: what the view layer renders for a session

InsightsReport carries validate tags; every field is mandatory and the
list sections other than recommendations need at least three entries.

# Session States

	StateWelcome → StateQuiz → StateLoading → StateResults
	                               ↓
	                         StateWelcome (on failure)

StateError is a view-only state for a Results session that is missing
its code or report.

# Request Types

  - StartQuizRequest: question_count (10, 25 or 50)
  - SubmitAnswerRequest: value (-3..3)

# Response Types

  - CreateSessionResponse: session_id, session_key, session
  - QuizOptionsResponse: question_counts, default_question_count, scale
  - ThemeResponse: code, theme
  - ErrorResponse: error, message
*/
package models
