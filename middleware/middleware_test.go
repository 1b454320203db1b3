// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/clarity/models"
)

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Logging must not interfere with response codes or bodies
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"session_id":"123"}`},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"Conflict", http.StatusConflict, "conflict"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/sessions", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusTeapot)
	if rec.status != http.StatusTeapot {
		t.Errorf("Expected recorded status 418, got %d", rec.status)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"status": "ok"},
			expected:   `{"status":"ok"}`,
		},
		{
			name:       "theme response",
			statusCode: http.StatusOK,
			data:       models.ThemeResponse{Code: "INTJ", Theme: models.Theme{Background: "bg-slate-50"}},
			expected:   `{"code":"INTJ","theme":{"background":"bg-slate-50","accent_background":"","accent_background_hover":"","accent_text":"","heading_text":"","base_text":"","base_border":""}}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "value is required"},
			expected:   `{"error":"Bad Request","message":"value is required"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []int{10, 25, 50},
			expected:   `[10,25,50]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
			}

			// Encode adds a trailing newline
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{"bad request", http.StatusBadRequest, "unsupported question count", "Bad Request"},
		{"unauthorized", http.StatusUnauthorized, "invalid session key", "Unauthorized"},
		{"not found", http.StatusNotFound, "session not found", "Not Found"},
		{"conflict", http.StatusConflict, "action not allowed in current state", "Conflict"},
		{"internal error", http.StatusInternalServerError, "storage error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"question_count":25}`))

		var parsed models.StartQuizRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.QuestionCount != 25 {
			t.Errorf("Expected question_count 25, got %d", parsed.QuestionCount)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.StartQuizRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.StartQuizRequest
		err := ParseJSONBody(req, &parsed)
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Errorf("Expected empty body error, got %v", err)
		}
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"value":2,"unknown":"x"}`))

		var parsed models.SubmitAnswerRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Value == nil || *parsed.Value != 2 {
			t.Errorf("Expected value 2, got %v", parsed.Value)
		}
	})
}

func TestDecodeAndValidate(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"neutral answer", `{"value":0}`, ""},
		{"strongly agree", `{"value":3}`, ""},
		{"strongly disagree", `{"value":-3}`, ""},
		{"missing value", `{}`, "value is required"},
		{"too high", `{"value":4}`, "value must be between -3 and 3"},
		{"too low", `{"value":-7}`, "value must be between -3 and 3"},
		{"wrong type", `{"value":"agree"}`, "invalid JSON"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))

			var parsed models.SubmitAnswerRequest
			err := DecodeAndValidate(req, &parsed)

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("missing question count", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))

		var parsed models.StartQuizRequest
		err := DecodeAndValidate(req, &parsed)
		if err == nil || err.Error() != "question_count is required" {
			t.Errorf("Expected 'question_count is required', got %v", err)
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/sessions", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		// Preflight doesn't call next
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/themes", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/themes", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})

	t.Run("allows session key header", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/sessions/abc", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		allowed := w.Header().Get("Access-Control-Allow-Headers")
		for _, h := range []string{"Content-Type", "X-Session-Key"} {
			if !strings.Contains(allowed, h) {
				t.Errorf("Expected %s in allowed headers", h)
			}
		}
		methods := w.Header().Get("Access-Control-Allow-Methods")
		for _, m := range []string{"GET", "POST", "OPTIONS"} {
			if !strings.Contains(methods, m) {
				t.Errorf("Expected %s in allowed methods", m)
			}
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"X-Forwarded-For single IP", map[string]string{"X-Forwarded-For": "192.168.1.100"}, "10.0.0.1:12345", "192.168.1.100"},
		{"X-Forwarded-For chain", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:12345", "203.0.113.195"},
		{"X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "203.0.113.50"},
		{"X-Forwarded-For beats X-Real-IP", map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "192.168.1.100"},
		{"RemoteAddr with port", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"RemoteAddr without port", nil, "192.168.1.50", "192.168.1.50"},
		{"IPv6 RemoteAddr with port", nil, "[::1]:12345", "::1"},
		{"IPv6 in X-Forwarded-For", map[string]string{"X-Forwarded-For": "2001:db8::1"}, "127.0.0.1:12345", "2001:db8::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
