package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey means the service cannot talk to the completion provider.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set")

type Config struct {
	Port     string
	AppTitle string

	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string
	LLMTimeout  time.Duration

	AdvisorsFile string

	LogLevel  string
	LogFormat string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		AppTitle:     getEnv("APP_TITLE", "Advisor"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		// empty base url and model fall back to the client defaults
		GroqBaseURL:  os.Getenv("GROQ_BASE_URL"),
		GroqModel:    os.Getenv("GROQ_MODEL"),
		LLMTimeout:   getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		AdvisorsFile: os.Getenv("ADVISORS_FILE"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}
	return cfg
}

// Validate reports settings the process cannot start without.
func (c Config) Validate() error {
	if c.GroqAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		// plain integers are seconds
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
