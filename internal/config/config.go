package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Session  SessionConfig  `yaml:"session"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	ScoreMin float64 `yaml:"score_min"`
	ScoreMax float64 `yaml:"score_max"`
}

type SessionConfig struct {
	TTLMinutes         int `yaml:"ttl_minutes"`
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Scoring: ScoringConfig{
			ScoreMin: 0,
			ScoreMax: 5,
		},
		Session: SessionConfig{
			TTLMinutes:         240,
			RateLimitPerMinute: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Scoring.ScoreMax <= cfg.Scoring.ScoreMin {
		return nil, fmt.Errorf("score_max (%g) must exceed score_min (%g)",
			cfg.Scoring.ScoreMax, cfg.Scoring.ScoreMin)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VANTAGE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("VANTAGE_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("VANTAGE_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("VANTAGE_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("VANTAGE_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("VANTAGE_SCORE_MIN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.ScoreMin = f
		}
	}
	if v := os.Getenv("VANTAGE_SCORE_MAX"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.ScoreMax = f
		}
	}
	if v := os.Getenv("VANTAGE_SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.TTLMinutes = n
		}
	}
	if v := os.Getenv("VANTAGE_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("VANTAGE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
