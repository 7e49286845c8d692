package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-practice-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INTERVIEW_AI_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "Interview Practice API", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, "https://ai.gateway.lovable.dev/v1", cfg.AIBaseURL)
	require.Equal(t, "google/gemini-2.5-flash", cfg.AIModel)
	require.Equal(t, 60*time.Second, cfg.AITimeout)
	require.False(t, cfg.AIConfigured())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INTERVIEW_APP_PORT", ":9090")
	t.Setenv("INTERVIEW_AI_API_KEY", "  secret  ")
	t.Setenv("INTERVIEW_AI_BASE_URL", "http://localhost:4000/v1/")
	t.Setenv("INTERVIEW_AI_MODEL", "gpt-4o-mini")
	t.Setenv("INTERVIEW_AI_TIMEOUT", "15s")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, "secret", cfg.AIAPIKey)
	require.True(t, cfg.AIConfigured())
	require.Equal(t, "http://localhost:4000/v1", cfg.AIBaseURL)
	require.Equal(t, "gpt-4o-mini", cfg.AIModel)
	require.Equal(t, 15*time.Second, cfg.AITimeout)
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("INTERVIEW_AI_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
}
