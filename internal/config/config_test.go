package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:3001" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %v", cfg.APITimeout)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize = %d", cfg.PageSize)
	}
	if cfg.FeatureRoleFiltering || cfg.FeatureOrderingUI || cfg.FeatureJobApplications {
		t.Error("feature flags default off")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.internal:9000")
	t.Setenv("API_TIMEOUT_MS", "5000")
	t.Setenv("FEATURE_ROLE_FILTERING", "true")
	t.Setenv("FEATURE_ORDERING_UI", "yes") // only "true" enables
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIBaseURL != "http://api.internal:9000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v", cfg.APITimeout)
	}
	if !cfg.FeatureRoleFiltering {
		t.Error("FEATURE_ROLE_FILTERING=true should enable the flag")
	}
	if cfg.FeatureOrderingUI {
		t.Error("only the literal \"true\" enables a flag")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadFallsBackToAPIURL(t *testing.T) {
	t.Setenv("API_URL", "http://legacy.internal:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://legacy.internal:9000" {
		t.Errorf("APIBaseURL = %q, API_URL should be accepted", cfg.APIBaseURL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("API_BASE_URL", "not a url")
	if _, err := Load(); err == nil {
		t.Error("an unparseable API_BASE_URL should fail loading")
	}
}
