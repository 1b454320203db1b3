// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var configEnv = []string{
	"PORT", "DATABASE_URL", "DATABASE_TYPE", "SESSION_KEY_SALT",
	"GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "INSIGHT_TIMEOUT",
	"SESSION_TTL", "SESSION_CACHE_SIZE", "QUESTION_BANK_PATH", "LOG_LEVEL",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// noEnvFile keeps a stray .env in the package dir out of the test.
var noEnvFile = []string{"-env-file", ""}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_KEY_SALT", "test-salt")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("INSIGHT_TIMEOUT", "45s")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_CACHE_SIZE", "500")

	cfg, err := ParseFlags(noEnvFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("expected API key from GEMINI_API_KEY, got %q", cfg.APIKey)
	}
	if cfg.InsightTimeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %v", cfg.InsightTimeout)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.SessionTTL)
	}
	if cfg.SessionCacheSize != 500 {
		t.Errorf("expected cache size 500, got %d", cfg.SessionCacheSize)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(append(noEnvFile, "-session-salt", "s", "-api-key", "k"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected in-memory sessions by default, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != DefaultDatabaseType {
		t.Errorf("expected %s, got %s", DefaultDatabaseType, cfg.DatabaseType)
	}
	// The generator picks its own default model
	if cfg.Model != "" {
		t.Errorf("expected empty model, got %s", cfg.Model)
	}
	if cfg.InsightTimeout != DefaultInsightTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultInsightTimeout, cfg.InsightTimeout)
	}
	if cfg.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected TTL %v, got %v", DefaultSessionTTL, cfg.SessionTTL)
	}
	if cfg.SessionCacheSize != DefaultSessionCacheSize {
		t.Errorf("expected cache size %d, got %d", DefaultSessionCacheSize, cfg.SessionCacheSize)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_MODEL", "env-model")
	t.Setenv("INSIGHT_TIMEOUT", "45s")

	cfg, err := ParseFlags(append(noEnvFile,
		"-p", "8080", "-d", "file:test.db", "-session-salt", "s1", "-api-key", "k1",
		"-model", "cli-model", "-insight-timeout", "10s",
	))
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Model != "cli-model" {
		t.Errorf("CLI should override env: expected cli-model, got %s", cfg.Model)
	}
	if cfg.InsightTimeout != 10*time.Second {
		t.Errorf("CLI should override env: expected 10s, got %v", cfg.InsightTimeout)
	}
}

func TestParseFlags_NegativeTimeoutDisables(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(append(noEnvFile, "-session-salt", "s", "-api-key", "k", "-insight-timeout", "-1s"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InsightTimeout >= 0 {
		t.Errorf("expected negative timeout to be kept, got %v", cfg.InsightTimeout)
	}

	// Same through the environment
	t.Setenv("INSIGHT_TIMEOUT", "-1s")
	cfg, err = ParseFlags(append(noEnvFile, "-session-salt", "s", "-api-key", "k"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InsightTimeout != -time.Second {
		t.Errorf("expected -1s from env, got %v", cfg.InsightTimeout)
	}
}

func TestParseFlags_APIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_KEY_SALT", "salt")
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := ParseFlags(noEnvFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "legacy-key" {
		t.Errorf("expected API_KEY fallback, got %q", cfg.APIKey)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{
			name:    "missing salt",
			env:     map[string]string{"GEMINI_API_KEY": "k"},
			wantErr: "SESSION_KEY_SALT",
		},
		{
			name:    "missing api key",
			env:     map[string]string{"SESSION_KEY_SALT": "s"},
			wantErr: "GEMINI_API_KEY",
		},
		{
			name:    "bad port",
			env:     map[string]string{"PORT": "abc", "SESSION_KEY_SALT": "s", "GEMINI_API_KEY": "k"},
			wantErr: "PORT",
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"INSIGHT_TIMEOUT": "soon", "SESSION_KEY_SALT": "s", "GEMINI_API_KEY": "k"},
			wantErr: "INSIGHT_TIMEOUT",
		},
		{
			name:    "negative ttl",
			env:     map[string]string{"SESSION_KEY_SALT": "s", "GEMINI_API_KEY": "k"},
			args:    []string{"-session-ttl", "-1m"},
			wantErr: "must not be negative",
		},
		{
			name:    "unsupported database",
			env:     map[string]string{"SESSION_KEY_SALT": "s", "GEMINI_API_KEY": "k"},
			args:    []string{"-t", "mysql"},
			wantErr: "unsupported database type",
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: "nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(append(append([]string{}, noEnvFile...), tt.args...))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "SESSION_KEY_SALT=file-salt\nGEMINI_API_KEY=file-key\nPORT=1234\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SessionKeySalt != "file-salt" || cfg.APIKey != "file-key" {
		t.Errorf("expected secrets from env file, got %q / %q", cfg.SessionKeySalt, cfg.APIKey)
	}
	// Existing environment wins over the file
	if cfg.Port != 7000 {
		t.Errorf("expected env PORT 7000 to win, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{
		"-env-file", filepath.Join(t.TempDir(), "absent.env"),
		"-session-salt", "s", "-api-key", "k",
	})
	if err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
