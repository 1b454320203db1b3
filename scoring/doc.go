// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring reduces a sequence of Likert answers to a personality code.

# Algorithm

Four running totals start at zero. For each (answer, question) pair:

	totals[question.Axis] += answer * question.Direction

Each axis then resolves on its own: a total >= 0 picks the positive pole
(E, N, F, P), a negative total picks the other one (I, S, T, J). The letters
are joined in axis order IE, SN, TF, JP:

	code := scoring.Score(answers, questions) // e.g. "ENFP"

An all-neutral answer set therefore scores "ENFP".

# Contract

Score is pure and deterministic. It panics when len(answers) differs from
len(questions); callers sequence answers so that never happens. Answer
ranges are checked where answers are accepted, not here.
*/
package scoring
