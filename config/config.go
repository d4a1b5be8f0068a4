package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/sentinel/market"
	"gopkg.in/yaml.v3"
)

// Config represents the complete simulator configuration
type Config struct {
	Account    AccountConfig    `json:"account" yaml:"account"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
	Advisor    AdvisorConfig    `json:"advisor" yaml:"advisor"`
	Metrics    MetricsConfig    `json:"metrics" yaml:"metrics"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	ID      string  `json:"id" yaml:"id"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// SimulationConfig contains the feed and pacing parameters
type SimulationConfig struct {
	Asset    string `json:"asset" yaml:"asset"`
	Seed     int64  `json:"seed" yaml:"seed"`
	Ticks    int    `json:"ticks" yaml:"ticks"`
	Interval string `json:"interval" yaml:"interval"` // e.g. "1s"; empty runs unpaced
}

// ParseInterval converts the pacing interval to a time.Duration.
func (s SimulationConfig) ParseInterval() (time.Duration, error) {
	if s.Interval == "" {
		return 0, nil
	}
	return time.ParseDuration(s.Interval)
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// AdvisorConfig controls the optional market-commentary collaborator.
// The API key is read from the named environment variable, never the file.
type AdvisorConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Model     string `json:"model,omitempty" yaml:"model,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty" yaml:"api_key_env,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint; empty disables it.
type MetricsConfig struct {
	Listen string `json:"listen,omitempty" yaml:"listen,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Simulation.Asset == "" {
		return fmt.Errorf("simulation.asset is required")
	}
	if _, ok := market.Assets[c.Simulation.Asset]; !ok {
		return fmt.Errorf("unknown asset: %s", c.Simulation.Asset)
	}
	if c.Simulation.Ticks <= 0 {
		return fmt.Errorf("simulation.ticks must be positive")
	}
	if _, err := c.Simulation.ParseInterval(); err != nil {
		return fmt.Errorf("simulation.interval: %w", err)
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal trades_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:      "SENTINEL-001",
			Balance: 10000,
		},
		Simulation: SimulationConfig{
			Asset:    "XAUUSD",
			Seed:     1,
			Ticks:    300,
			Interval: "1s",
		},
		Journal: JournalConfig{
			Type:       "csv",
			TradesFile: "./trades.csv",
			EquityFile: "./equity.csv",
		},
		Advisor: AdvisorConfig{
			Enabled:   false,
			Model:     "",
			APIKeyEnv: "GEMINI_API_KEY",
		},
	}
}
