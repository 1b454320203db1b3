// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/danielhkuo/clarity/cliparse"
	"github.com/danielhkuo/clarity/db"
	"github.com/danielhkuo/clarity/models"
)

var dbCounter atomic.Int64

// SetupTestDB opens a private in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:clarity_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := db.Open(db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseType:     db.TypeSQLite,
		SessionKeySalt:   "test-session-salt",
		APIKey:           "test-api-key",
		Model:            "test-model",
		InsightTimeout:   time.Second,
		SessionTTL:       time.Hour,
		SessionCacheSize: 100,
		LogLevel:         "info",
	}
}

// SampleReport returns a report that satisfies every validation rule.
func SampleReport() *models.InsightsReport {
	three := func(prefix string) []string {
		return []string{prefix + " one", prefix + " two", prefix + " three"}
	}
	return &models.InsightsReport{
		Title:               "The Cosmic Campaigner",
		Overview:            "Curious, warm and endlessly inventive.",
		Strengths:           three("strength"),
		Weaknesses:          three("weakness"),
		CareerPaths:         three("career"),
		Relationships:       "Loyal and enthusiastic friends.",
		PersonalGrowth:      three("growth"),
		FamousFigures:       three("figure"),
		FictionalCharacters: three("character"),
		Vibe: &models.Vibe{
			Color:       "Electric Teal",
			Aesthetic:   "Retro Futurist",
			Description: "A walking mixtape of big ideas.",
		},
		Recommendations: &models.Recommendations{
			Hobbies: three("hobby"),
			Books:   three("book"),
			Movies:  three("movie"),
			Music:   three("music"),
		},
	}
}

// SampleReportJSON returns SampleReport encoded as the provider would send it.
func SampleReportJSON(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(SampleReport())
	if err != nil {
		t.Fatalf("Failed to encode sample report: %v", err)
	}
	return string(b)
}

// FakeGenerator is a scripted insights.Generator.
type FakeGenerator struct {
	mu      sync.Mutex
	Payload string
	Err     error
	// Block, when set, holds every call until it is closed or ctx ends.
	Block   chan struct{}
	Prompts []string
	Schemas []*genai.Schema
}

func (f *FakeGenerator) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.mu.Lock()
	f.Prompts = append(f.Prompts, prompt)
	f.Schemas = append(f.Schemas, schema)
	block := f.Block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Payload, f.Err
}

// Set replaces the scripted result.
func (f *FakeGenerator) Set(payload string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Payload, f.Err = payload, err
}

// Calls returns how many requests were made.
func (f *FakeGenerator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
