package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level payflow.yaml configuration.
type Config struct {
	Navigation NavigationConfig `yaml:"navigation"`
	Payments   PaymentsConfig   `yaml:"payments"`
	Seed       SeedConfig       `yaml:"seed"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// NavigationConfig controls the navigation gate's timing and history bound.
type NavigationConfig struct {
	TransitionDelayMS int `yaml:"transition_delay_ms"`
	ErrorExpiryMS     int `yaml:"error_expiry_ms"`
	FallbackDelayMS   int `yaml:"fallback_delay_ms"`
	MaxHistory        int `yaml:"max_history"`
}

// TransitionDelay returns the transition delay as a duration.
func (n NavigationConfig) TransitionDelay() time.Duration {
	return time.Duration(n.TransitionDelayMS) * time.Millisecond
}

// ErrorExpiry returns the transient-error expiry as a duration.
func (n NavigationConfig) ErrorExpiry() time.Duration {
	return time.Duration(n.ErrorExpiryMS) * time.Millisecond
}

// FallbackDelay returns the failure-redirect delay as a duration.
func (n NavigationConfig) FallbackDelay() time.Duration {
	return time.Duration(n.FallbackDelayMS) * time.Millisecond
}

// PaymentsConfig controls the simulated payment engine. SuccessRate is a
// pointer so an explicit `success_rate: 0` (every payment fails) stays
// distinguishable from an omitted key (the default 0.95).
type PaymentsConfig struct {
	MinDelayMS  int      `yaml:"min_delay_ms"`
	MaxDelayMS  int      `yaml:"max_delay_ms"`
	SuccessRate *float64 `yaml:"success_rate"`
}

// MinDelay returns the lower delay bound as a duration.
func (p PaymentsConfig) MinDelay() time.Duration {
	return time.Duration(p.MinDelayMS) * time.Millisecond
}

// MaxDelay returns the upper delay bound as a duration.
func (p PaymentsConfig) MaxDelay() time.Duration {
	return time.Duration(p.MaxDelayMS) * time.Millisecond
}

// Rate returns a pointer to v, for populating SuccessRate.
func Rate(v float64) *float64 {
	return &v
}

// SeedConfig controls the fabricated demo ledger.
type SeedConfig struct {
	Balance          string `yaml:"balance"` // decimal string, e.g. "2847.50"
	Currency         string `yaml:"currency"`
	TransactionCount int    `yaml:"transaction_count"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// Load reads a payflow.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the reference demo behavior.
func Default() *Config {
	return &Config{
		Navigation: NavigationConfig{
			TransitionDelayMS: 3000,
			ErrorExpiryMS:     5000,
			FallbackDelayMS:   1500,
			MaxHistory:        50,
		},
		Payments: PaymentsConfig{
			MinDelayMS:  1400,
			MaxDelayMS:  2200,
			SuccessRate: Rate(0.95),
		},
		Seed: SeedConfig{
			Balance:          "2847.50",
			Currency:         "USD",
			TransactionCount: 8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
