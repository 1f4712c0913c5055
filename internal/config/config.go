// Package config provides application configuration.
package config

import (
	"os"
	"strings"
)

// SessionCookieName is the cookie carrying the shared access secret.
const SessionCookieName = "auth_token"

// Config holds all application configuration.
type Config struct {
	Port          string
	AppPassword   string // password checked at login
	SessionSecret string // value minted into the session cookie; empty disables the gate
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	Env           string
	FrontendURL   string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		AppPassword:   strings.TrimSpace(os.Getenv("APP_PASSWORD")),
		SessionSecret: strings.TrimSpace(os.Getenv("SECRET_SIGNATURE")),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnv("GEMINI_MODEL", ""),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
		Env:           getEnv("APP_ENV", "development"),
		FrontendURL:   getEnv("FRONTEND_URL", ""),
	}
}

// GateEnabled reports whether the access gate is active. With no session
// secret configured the app runs fully open; main logs a warning for it.
func (c *Config) GateEnabled() bool {
	return c.SessionSecret != ""
}

// IsProduction controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
