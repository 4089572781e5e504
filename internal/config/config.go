// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the runtime settings of the doctrans CLI.
type Config struct {
	APIKey            string        `env:"DOCTRANS_API_KEY"`
	BaseURL           string        `env:"DOCTRANS_API_BASE_URL"`
	Model             string        `env:"DOCTRANS_MODEL" envDefault:"gpt-4o-mini"`
	MaxPerBatch       int           `env:"DOCTRANS_MAX_LINES_PER_BATCH" envDefault:"150"`
	MaxTokens         int           `env:"DOCTRANS_MAX_TOKENS_PER_REQUEST" envDefault:"200000"`
	RequestTimeout    time.Duration `env:"DOCTRANS_REQUEST_TIMEOUT" envDefault:"300s"`
	RequestsPerMinute int           `env:"DOCTRANS_RPM"`
	RedisURL          string        `env:"DOCTRANS_REDIS_URL"`
	RulesFile         string        `env:"DOCTRANS_RULES_FILE"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
