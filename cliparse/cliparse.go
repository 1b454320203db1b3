package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = 3318
	DefaultDatabaseType     = "sqlite"
	DefaultInsightTimeout   = 30 * time.Second
	DefaultSessionTTL       = 2 * time.Hour
	DefaultSessionCacheSize = 10000
	DefaultLogLevel         = "info"
	DefaultEnvFile          = ".env"
)

type Config struct {
	Port         int
	DatabaseURL  string // empty keeps sessions in memory
	DatabaseType string

	SessionKeySalt string
	APIKey         string
	Model          string // empty selects the generator's default

	InsightTimeout   time.Duration // negative disables the bound
	SessionTTL       time.Duration
	SessionCacheSize int

	QuestionBankPath string
	LogLevel         string
	EnvFile          string
}

// ParseFlags validates flags, loads the .env file, and fills the rest from
// the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("clarity", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (empty for in-memory sessions)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionKeySalt, "session-salt", "", "Session key salt (prefer env)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "Gemini API key (prefer env)")

	// Insights and sessions
	fs.StringVar(&cfg.Model, "model", "", "Gemini model name (default: insights.DefaultModel)")
	fs.DurationVar(&cfg.InsightTimeout, "insight-timeout", 0, "Timeout for one insight request (negative disables)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle session lifetime")
	fs.IntVar(&cfg.SessionCacheSize, "session-cache", 0, "Max sessions kept in memory")
	fs.StringVar(&cfg.QuestionBankPath, "questions", "", "Question bank YAML (default: embedded)")

	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Dotenv file to load")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envString("DATABASE_TYPE", DefaultDatabaseType)
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.Model == "" {
		cfg.Model = os.Getenv("GEMINI_MODEL")
	}
	if cfg.InsightTimeout == 0 {
		d, err := envDuration("INSIGHT_TIMEOUT", DefaultInsightTimeout)
		if err != nil {
			return Config{}, err
		}
		cfg.InsightTimeout = d
	}
	if cfg.SessionTTL == 0 {
		d, err := envDuration("SESSION_TTL", DefaultSessionTTL)
		if err != nil {
			return Config{}, err
		}
		cfg.SessionTTL = d
	}
	if cfg.SessionCacheSize == 0 {
		n, err := envInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize)
		if err != nil {
			return Config{}, err
		}
		cfg.SessionCacheSize = n
	}
	if cfg.QuestionBankPath == "" {
		cfg.QuestionBankPath = os.Getenv("QUESTION_BANK_PATH")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = envString("LOG_LEVEL", DefaultLogLevel)
	}

	if cfg.SessionTTL < 0 || cfg.SessionCacheSize < 0 {
		return Config{}, errors.New("session TTL and cache size must not be negative")
	}

	// Secrets - MUST be provided
	if cfg.SessionKeySalt == "" {
		cfg.SessionKeySalt = os.Getenv("SESSION_KEY_SALT")
	}
	if cfg.SessionKeySalt == "" {
		return Config{}, errors.New("SESSION_KEY_SALT required")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("GEMINI_API_KEY required (or API_KEY)")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
