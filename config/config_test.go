package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "JWT_SECRET", "JWT_TTL", "PROVIDER_TIMEOUT", "OPENAI_MODEL", "HUGGINGFACE_BASE_URL", "DEMO_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "https://api-inference.huggingface.co", cfg.HuggingFaceBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 60*time.Second, cfg.ProviderTimeout)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "lexipro-demo", cfg.DemoPassword)
}

func TestLoadDurations(t *testing.T) {
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("PROVIDER_TIMEOUT", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)

	t.Setenv("PROVIDER_TIMEOUT", "soon")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadRequiresSecretInRelease(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DEMO_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Empty(t, cfg.DemoPassword)
}

func TestWarnings(t *testing.T) {
	cfg := Config{OpenAIAPIKey: "k", GeminiAPIKey: "k", HuggingFaceAPIKey: "k", DatabaseURL: "postgres://x"}
	assert.Empty(t, cfg.Warnings())

	cfg.GeminiAPIKey = ""
	assert.Equal(t, []string{"GEMINI_API_KEY not set"}, cfg.Warnings())
}

func TestWarningsWithoutDatabase(t *testing.T) {
	cfg := Config{OpenAIAPIKey: "k", GeminiAPIKey: "k", HuggingFaceAPIKey: "k", DemoPassword: "pw"}
	assert.Equal(t, []string{"DATABASE_URL not set, using in-memory repositories"}, cfg.Warnings())

	cfg.DemoPassword = ""
	assert.Equal(t, []string{
		"DATABASE_URL not set, using in-memory repositories",
		"DEMO_PASSWORD not set, in-memory store has no accounts",
	}, cfg.Warnings())
}
