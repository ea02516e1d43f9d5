package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration for the analyzer tooling. The caps
// mirror parser.DefaultLimits and exist so deployments can tune them
// without a rebuild.
type Config struct {
	MaxSkills       int
	MaxExperience   int
	MaxProjects     int
	MaxSummaryChars int
	LogJSON         bool
	Debug           bool
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		MaxSkills:       getEnvInt("MAX_SKILLS", 20),
		MaxExperience:   getEnvInt("MAX_EXPERIENCE_ENTRIES", 5),
		MaxProjects:     getEnvInt("MAX_PROJECT_ENTRIES", 5),
		MaxSummaryChars: getEnvInt("MAX_SUMMARY_CHARS", 500),
		LogJSON:         getEnvBool("LOG_JSON", false),
		Debug:           getEnvBool("DEBUG", false),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return val
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
