// Package config resolves runtime configuration from environment variables
// and the interview profile file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config stores runtime configuration for the interviewer backend.
type Config struct {
	Gemini      GeminiConfig
	Deepgram    DeepgramConfig
	ProfilePath string
}

type GeminiConfig struct {
	APIKey     string
	APIBaseURL string
	Model      string
	Timeout    time.Duration
}

type DeepgramConfig struct {
	APIKey      string
	APIBaseURL  string
	Model       string
	Language    string
	SmartFormat bool
	Timeout     time.Duration
}

// Load resolves configuration from environment variables and sensible
// defaults. GOOGLE_API_KEY is honored as a fallback generative-text
// credential for parity with older deployments.
func Load() (Config, error) {
	cfg := Config{
		Gemini: GeminiConfig{
			APIKey: firstNonEmpty(
				os.Getenv("GEMINI_API_KEY"),
				os.Getenv("GOOGLE_API_KEY"),
			),
			APIBaseURL: envOrDefault("GEMINI_API_BASE", "https://generativelanguage.googleapis.com/v1beta"),
			Model:      envOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:    time.Duration(envOrDefaultInt("GEMINI_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Deepgram: DeepgramConfig{
			APIKey:      strings.TrimSpace(os.Getenv("DEEPGRAM_API_KEY")),
			APIBaseURL:  envOrDefault("DEEPGRAM_API_BASE", "https://api.deepgram.com/v1"),
			Model:       envOrDefault("DEEPGRAM_MODEL", "nova-2"),
			Language:    envOrDefault("DEEPGRAM_LANGUAGE", "en-US"),
			SmartFormat: envOrDefaultBool("DEEPGRAM_SMART_FORMAT", true),
			Timeout:     time.Duration(envOrDefaultInt("DEEPGRAM_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		ProfilePath: envOrDefault("VIVASHEET_PROFILE", "config/interview.yaml"),
	}

	return cfg, nil
}

// HasGenerativeCredential reports whether a generative-text credential is
// present. Callers must check this before any request is attempted.
func (c Config) HasGenerativeCredential() bool {
	return strings.TrimSpace(c.Gemini.APIKey) != ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
