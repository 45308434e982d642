// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is loaded
// first when present, so local development matches the deployed setup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// OpenAIKey is the generation-provider API key. Required.
	OpenAIKey string

	// OpenAIModel is the chat model used for itinerary generation.
	// Defaults to "gpt-4o-mini".
	OpenAIModel string

	// MapsAPIKey is the Google Maps API key used for coordinate enrichment.
	// Optional; enrichment is skipped entirely when empty.
	MapsAPIKey string

	// DatabaseURL is the Postgres connection string. Optional; when empty
	// the server runs with the in-process plan store only.
	DatabaseURL string

	// EnrichFallbackPlans controls whether fallback-built itineraries also
	// go through coordinate enrichment. Defaults to false: a fallback plan
	// is returned as fast as possible, without extra provider calls.
	EnrichFallbackPlans bool
}

// Load reads configuration from a .env file (if present) and the process
// environment, and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Missing .env is the normal case in production; only real env matters.
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MapsAPIKey:          os.Getenv("GOOGLE_MAPS_API_KEY"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		EnrichFallbackPlans: getEnvBool("ENRICH_FALLBACK_PLANS", false),
	}

	var missing []string

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvBool parses the named variable as a bool, returning fallback when
// the variable is unset or unparseable.
func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
