package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Advisory AdvisoryConfig `yaml:"advisory"`
	Review   ReviewConfig   `yaml:"review"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AdvisoryConfig holds settings for the AI analysis gateway and the
// analyzer worker.
type AdvisoryConfig struct {
	APIKey    string        `yaml:"api_key"    env:"ADVISORY_API_KEY"`
	Model     string        `yaml:"model"      env:"ADVISORY_MODEL"      env-default:"claude-3-5-haiku-latest"`
	MaxTokens int64         `yaml:"max_tokens" env:"ADVISORY_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"ADVISORY_TIMEOUT"    env-default:"30s"`
	BatchSize int           `yaml:"batch_size" env:"ADVISORY_BATCH_SIZE" env-default:"50"`
}

// ReviewConfig holds review queue and audit settings.
type ReviewConfig struct {
	HistoryLimit int `yaml:"history_limit" env:"REVIEW_HISTORY_LIMIT" env-default:"100"`
}
