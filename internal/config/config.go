package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed explicitly to whatever
// needs it. Nothing reads the environment after Load returns.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Upstream roles/applications API
	APIBaseURL string
	APITimeout time.Duration

	// Listing
	PageSize int

	// Rate limiting (credential endpoints)
	RateLimitRPS int

	// CORS
	AllowedOrigins []string

	// Feature flags
	FeatureRoleFiltering   bool
	FeatureOrderingUI      bool
	FeatureJobApplications bool
}

func Load() (*Config, error) {
	// Load .env if present (development only); real env vars win.
	_ = godotenv.Load()

	// API_BASE_URL is the canonical name; API_URL is accepted for
	// compatibility with older deployments.
	apiBase := getEnv("API_BASE_URL", "")
	if apiBase == "" {
		apiBase = getEnv("API_URL", "http://localhost:3001")
	}

	cfg := &Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		APIBaseURL:             apiBase,
		APITimeout:             time.Duration(getEnvInt("API_TIMEOUT_MS", 30000)) * time.Millisecond,
		PageSize:               getEnvInt("PAGE_SIZE", 10),
		RateLimitRPS:           getEnvInt("RATE_LIMIT_RPS", 5),
		AllowedOrigins:         splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8080")),
		FeatureRoleFiltering:   getEnvBool("FEATURE_ROLE_FILTERING"),
		FeatureOrderingUI:      getEnvBool("FEATURE_ORDERING_UI"),
		FeatureJobApplications: getEnvBool("FEATURE_JOB_APPLICATIONS"),
	}

	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid API_BASE_URL %q: %w", cfg.APIBaseURL, err)
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT_MS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string) bool {
	return os.Getenv(key) == "true"
}

func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
