package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)", c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Advisory.MaxTokens <= 0 {
		return fmt.Errorf("advisory.max_tokens must be > 0 (got %d)", c.Advisory.MaxTokens)
	}
	if c.Advisory.Timeout < 0 {
		return fmt.Errorf("advisory.timeout must be >= 0 (got %v)", c.Advisory.Timeout)
	}
	if c.Advisory.BatchSize <= 0 {
		return fmt.Errorf("advisory.batch_size must be > 0 (got %d)", c.Advisory.BatchSize)
	}

	if c.Review.HistoryLimit <= 0 {
		return fmt.Errorf("review.history_limit must be > 0 (got %d)", c.Review.HistoryLimit)
	}

	return nil
}
