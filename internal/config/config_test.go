package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/app", MaxConns: 25, MinConns: 5},
		Log:      LogConfig{Level: "info", Format: "json"},
		Advisory: AdvisoryConfig{Model: "claude-3-5-haiku-latest", MaxTokens: 1024, Timeout: 30 * time.Second, BatchSize: 50},
		Review:   ReviewConfig{HistoryLimit: 100},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"max conns below min", func(c *Config) { c.Database.MaxConns = 1 }},
		{"zero max tokens", func(c *Config) { c.Advisory.MaxTokens = 0 }},
		{"negative timeout", func(c *Config) { c.Advisory.Timeout = -time.Second }},
		{"zero batch size", func(c *Config) { c.Advisory.BatchSize = 0 }},
		{"zero history limit", func(c *Config) { c.Review.HistoryLimit = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://test@localhost/testdb")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ADVISORY_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.DSN != "postgres://test@localhost/testdb" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Advisory.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Advisory.Timeout)
	}
	// Defaults fill unset fields.
	if cfg.Advisory.BatchSize != 50 {
		t.Errorf("BatchSize = %d, want default 50", cfg.Advisory.BatchSize)
	}
	if cfg.Review.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want default 100", cfg.Review.HistoryLimit)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DSN")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
