// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package insights requests narrative personality reports from a generative
language service.

# Client

	gen, err := insights.NewGeminiGenerator(ctx, apiKey, "gemini-2.5-flash")
	client := insights.NewClient(gen, insights.WithTimeout(30*time.Second))

	report, err := client.FetchInsights(ctx, "ENFP")

Each call makes exactly one remote exchange. Nothing is cached or retried.

# Request

BuildPrompt describes the eleven report sections and asks for at least
three items per list. ResponseSchema declares the report shape so the
provider replies with JSON (responseMimeType application/json).

# Response

The payload is trimmed, decoded, and validated against the validate tags on
models.InsightsReport. Missing fields, short lists, wrong types, and bad
JSON all yield *MalformedResponseError.

# Errors

	*MalformedResponseError  errors.Is(err, ErrMalformedResponse)
	*TransportError          errors.Is(err, ErrTransport)

A timeout is a TransportError wrapping context.DeadlineExceeded. Kind(err)
returns "success", "malformed", "transport" or "unknown" for logs and
metrics.
*/
package insights
