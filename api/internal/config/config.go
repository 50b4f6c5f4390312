package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string
	DemoMode     bool
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// boolEnv accepts "true", "1" and "yes" (any case) as enabled.
func boolEnv(k string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// Load reads the service configuration from the environment. Outside demo
// mode the Gemini API key is required and its absence is fatal at startup,
// never a per-request error.
func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		DemoMode:    boolEnv("DEMO_MODE"),
	}
	if cfg.DemoMode {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	} else {
		cfg.GeminiAPIKey = mustEnv("GEMINI_API_KEY")
	}
	return cfg
}
