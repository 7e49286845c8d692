package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the relay service.
type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	AITimeout time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// AIConfigured reports whether an upstream credential was supplied.
func (c Config) AIConfigured() bool {
	return strings.TrimSpace(c.AIAPIKey) != ""
}

// Load reads configuration values from environment variables and optional .env file.
// A missing AI key is not an error here; the relay reports it per request.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("INTERVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Interview Practice API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("ai.base_url", "https://ai.gateway.lovable.dev/v1")
	v.SetDefault("ai.model", "google/gemini-2.5-flash")
	v.SetDefault("ai.timeout", "60s")

	timeout, err := time.ParseDuration(v.GetString("ai.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ai timeout: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("invalid ai timeout: must not be negative")
	}

	cfg := Config{
		AppName:   v.GetString("app.name"),
		AppEnv:    v.GetString("app.env"),
		AppPort:   v.GetString("app.port"),
		AIAPIKey:  strings.TrimSpace(v.GetString("ai.api_key")),
		AIBaseURL: strings.TrimRight(v.GetString("ai.base_url"), "/"),
		AIModel:   v.GetString("ai.model"),
		AITimeout: timeout,
	}

	return cfg, nil
}
