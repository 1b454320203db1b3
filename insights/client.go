// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"

	"github.com/danielhkuo/clarity/models"
)

const DefaultTimeout = 30 * time.Second

// Generator performs one remote exchange: a prompt plus a response schema
// in, the raw text payload out.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Client fetches and validates insight reports.
type Client struct {
	gen      Generator
	timeout  time.Duration
	validate *validator.Validate
}

type Option func(*Client)

// WithTimeout bounds each exchange. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func NewClient(gen Generator, opts ...Option) *Client {
	c := &Client{
		gen:      gen,
		timeout:  DefaultTimeout,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FetchInsights issues one request for code and returns the parsed report.
// Errors are either *MalformedResponseError or *TransportError. There is no
// retry and no caching.
func (c *Client) FetchInsights(ctx context.Context, code models.PersonalityCode) (*models.InsightsReport, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.gen.Generate(ctx, BuildPrompt(code), ResponseSchema())
	if err != nil {
		slog.Warn("insight request failed", "code", code, "error", err, "duration_ms", time.Since(start).Milliseconds())
		return nil, &TransportError{Err: err}
	}

	report, err := c.Parse(text)
	if err != nil {
		slog.Warn("insight response rejected", "code", code, "error", err)
		return nil, err
	}

	slog.Info("insights generated", "code", code, "title", report.Title, "duration_ms", time.Since(start).Milliseconds())
	return report, nil
}

// Parse trims payload, decodes it as JSON, and validates it against the
// report contract.
func (c *Client) Parse(payload string) (*models.InsightsReport, error) {
	text := strings.TrimSpace(payload)
	if text == "" {
		return nil, &MalformedResponseError{Reason: "empty payload"}
	}

	var report models.InsightsReport
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return nil, &MalformedResponseError{Reason: describeDecodeError(err), Payload: text}
	}

	if err := c.validate.Struct(&report); err != nil {
		return nil, &MalformedResponseError{Reason: describeValidationError(err), Payload: text}
	}

	return &report, nil
}

func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("field %q has the wrong type", typeErr.Field)
	default:
		return "invalid JSON"
	}
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "report failed validation"
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "InsightsReport.")
		switch fe.Tag() {
		case "required":
			problems = append(problems, field+" is required")
		case "min":
			problems = append(problems, fmt.Sprintf("%s needs at least %s items", field, fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(problems, "; ")
}
