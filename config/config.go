package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration read from the environment
type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	LogFile  string

	DatabaseURL string

	// DemoPassword is the password of the accounts seeded into the in-memory store
	DemoPassword string

	JWTSecret string
	JWTTTL    time.Duration

	ProviderTimeout time.Duration

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	HuggingFaceAPIKey  string
	HuggingFaceModel   string
	HuggingFaceBaseURL string
}

// Release reports whether the server runs in gin release mode
func (c Config) Release() bool {
	return c.GinMode == "release"
}

// Warnings lists configuration gaps that do not prevent startup
func (c Config) Warnings() []string {
	var warnings []string
	if c.OpenAIAPIKey == "" {
		warnings = append(warnings, "OPENAI_API_KEY not set")
	}
	if c.GeminiAPIKey == "" {
		warnings = append(warnings, "GEMINI_API_KEY not set")
	}
	if c.HuggingFaceAPIKey == "" {
		warnings = append(warnings, "HUGGINGFACE_API_KEY not set")
	}
	if c.DatabaseURL == "" {
		warnings = append(warnings, "DATABASE_URL not set, using in-memory repositories")
		if c.DemoPassword == "" {
			warnings = append(warnings, "DEMO_PASSWORD not set, in-memory store has no accounts")
		}
	}
	return warnings
}

// LoadDotEnv loads a .env file from the working directory or the project root.
// A missing file is not an error.
func LoadDotEnv() bool {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			return false
		}
	}
	return true
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            os.Getenv("LOG_FILE"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DemoPassword:       os.Getenv("DEMO_PASSWORD"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		HuggingFaceAPIKey:  os.Getenv("HUGGINGFACE_API_KEY"),
		HuggingFaceModel:   getEnv("HUGGINGFACE_MODEL", "bert-base-uncased"),
		HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", "https://api-inference.huggingface.co"),
	}

	var err error
	cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.ProviderTimeout, err = getDuration("PROVIDER_TIMEOUT", 60*time.Second)
	if err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		if cfg.Release() {
			return Config{}, errors.New("JWT_SECRET is required in release mode")
		}
		cfg.JWTSecret = "lexipro-dev-secret"
	}
	if cfg.DemoPassword == "" && !cfg.Release() {
		cfg.DemoPassword = "lexipro-demo"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDuration accepts Go duration strings ("90s") or a plain number of seconds
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	return time.Duration(seconds) * time.Second, nil
}
