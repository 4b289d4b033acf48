package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"VANTAGE_PORT", "VANTAGE_METRICS_PORT", "VANTAGE_ADMIN_TOKEN",
		"VANTAGE_DATABASE_URL", "VANTAGE_EVENTS_URL",
		"VANTAGE_SCORE_MIN", "VANTAGE_SCORE_MAX",
		"VANTAGE_SESSION_TTL_MINUTES", "VANTAGE_RATE_LIMIT_PER_MINUTE",
		"VANTAGE_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected no database by default, got %s", cfg.Database.URL)
	}
	if cfg.Events.URL != "" {
		t.Errorf("expected no events URL by default, got %s", cfg.Events.URL)
	}
	if cfg.Scoring.ScoreMin != 0 || cfg.Scoring.ScoreMax != 5 {
		t.Errorf("expected score range [0,5], got [%g,%g]",
			cfg.Scoring.ScoreMin, cfg.Scoring.ScoreMax)
	}
	if cfg.Session.TTLMinutes != 240 {
		t.Errorf("expected TTL 240 minutes, got %d", cfg.Session.TTLMinutes)
	}
	if cfg.SessionTTL() != 240*time.Minute {
		t.Errorf("expected SessionTTL 4h, got %v", cfg.SessionTTL())
	}
	if cfg.Session.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Session.RateLimitPerMinute)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	content := `
server:
  port: 9100
  admin_token: secret
scoring:
  score_min: 1
  score_max: 4
session:
  ttl_minutes: 30
events:
  url: nats://localhost:4222
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.AdminToken != "secret" {
		t.Errorf("expected admin token from file, got %q", cfg.Server.AdminToken)
	}
	if cfg.Scoring.ScoreMin != 1 || cfg.Scoring.ScoreMax != 4 {
		t.Errorf("expected score range [1,4], got [%g,%g]",
			cfg.Scoring.ScoreMin, cfg.Scoring.ScoreMax)
	}
	if cfg.Session.TTLMinutes != 30 {
		t.Errorf("expected TTL 30, got %d", cfg.Session.TTLMinutes)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected events URL from file, got %s", cfg.Events.URL)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("VANTAGE_PORT", "9200")
	t.Setenv("VANTAGE_SCORE_MAX", "10")
	t.Setenv("VANTAGE_DATABASE_URL", "postgres://localhost/vantage")
	t.Setenv("VANTAGE_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("expected port 9200, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.ScoreMax != 10 {
		t.Errorf("expected score max 10, got %g", cfg.Scoring.ScoreMax)
	}
	if cfg.Database.URL != "postgres://localhost/vantage" {
		t.Errorf("expected database URL from env, got %s", cfg.Database.URL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvertedScoreRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("VANTAGE_SCORE_MIN", "5")
	t.Setenv("VANTAGE_SCORE_MAX", "5")

	if _, err := Load(""); err == nil {
		t.Error("expected error for score_max <= score_min")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
