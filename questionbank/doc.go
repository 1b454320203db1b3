// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package questionbank holds the quiz statements and draws random subsets.

# Format

Banks are YAML documents:

	questions:
	  - {axis: IE, direction: 1, text: "You feel energised after a party."}
	  - {axis: JP, direction: -1, text: "You keep a to-do list."}

axis is one of IE, SN, TF, JP. direction is 1 when agreeing points toward
the positive pole (E, N, F, P) and -1 otherwise.

A bank is compiled into the binary (questions.yaml); Load can replace it
with a file given by --questions or QUESTION_BANK_PATH.

# Validation

Parse rejects empty text, unknown axes, directions other than ±1, and banks
smaller than the largest supported quiz length (50).

# Sampling

Draw(k) shuffles a copy of the bank and keeps the first k questions, so
every k-subset is equally likely and no question repeats.
*/
package questionbank
