// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type AlphaFoldConfig struct {
	APIKey          string        `yaml:"api_key" env:"ALPHAFOLD_API_KEY"`
	BaseURL         string        `yaml:"base_url" env:"ALPHAFOLD_BASE_URL"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`   // per HTTP request
	PollInterval    time.Duration `yaml:"poll_interval"`     // constant, no backoff
	MaxPollAttempts int           `yaml:"max_poll_attempts"` // hard budget
}

type ColabFoldConfig struct {
	Enabled bool   `yaml:"enabled" env:"COLABFOLD_ENABLED"`
	BinPath string `yaml:"bin_path" env:"COLABFOLD_BIN"`
}

type Config struct {
	Log       LogConfig       `yaml:"log"`
	AlphaFold AlphaFoldConfig `yaml:"alphafold"`
	ColabFold ColabFoldConfig `yaml:"colabfold"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML file at path (optional), applies environment
// overrides, then fills defaults. An absent API key is a valid state: it
// disables remote mode, it does not fail loading.
func LoadConfig(path string, dev bool) (*Config, error) {
	var cfg Config

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case os.IsNotExist(err):
			// env-only configuration is fine
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	// defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.AlphaFold.BaseURL == "" {
		cfg.AlphaFold.BaseURL = "https://api.alphafoldserver.com/v1"
	}
	if cfg.AlphaFold.RequestTimeout <= 0 {
		cfg.AlphaFold.RequestTimeout = 30 * time.Second
	}
	if cfg.AlphaFold.PollInterval <= 0 {
		cfg.AlphaFold.PollInterval = 10 * time.Second
	}
	if cfg.AlphaFold.MaxPollAttempts <= 0 {
		cfg.AlphaFold.MaxPollAttempts = 60
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
