package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/lotbid/risk"
	"github.com/rustyeddy/lotbid/sim"
)

// Config is the complete tool configuration: simulation parameters, bid
// constraints, journaling, and logging. The simulation core never reads
// this (or anything global) itself; values are threaded into each call.
type Config struct {
	Simulation  sim.Params       `yaml:"simulation"`
	Constraints risk.Constraints `yaml:"constraints"`
	Journal     JournalConfig    `yaml:"journal"`
	Log         LogConfig        `yaml:"log"`
}

// JournalConfig controls where runs are recorded. Type "none" disables
// journaling.
type JournalConfig struct {
	Type    string `yaml:"type"` // none | sqlite | csv
	DBPath  string `yaml:"db_path,omitempty"`
	CSVPath string `yaml:"csv_path,omitempty"`
}

// LogConfig controls log format and verbosity.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Default returns a runnable configuration with the documented simulation
// fallbacks and the stock acceptance policy.
func Default() *Config {
	return &Config{
		Simulation:  sim.DefaultParams(),
		Constraints: risk.DefaultConstraints(),
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./lotbid.sqlite",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a YAML (or JSON) file, applies env
// overrides, and validates. A .env file alongside the process is honored
// for the override variables.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML (or JSON for a .json path).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if err := c.Constraints.Validate(); err != nil {
		return fmt.Errorf("constraints: %w", err)
	}
	switch c.Journal.Type {
	case "", "none":
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "csv":
		if c.Journal.CSVPath == "" {
			return fmt.Errorf("journal.csv_path required for csv journal")
		}
	default:
		return fmt.Errorf("journal.type must be none, sqlite or csv, got %q", c.Journal.Type)
	}
	return nil
}

// applyEnvOverrides lets the environment win for a small set of
// deployment-flavored keys. .env files are loaded silently if present.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load()

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("LOTBID_DB"); v != "" {
		c.Journal.Type = "sqlite"
		c.Journal.DBPath = v
	}
	if v := os.Getenv("LOTBID_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Simulation.Seed = seed
		}
	}
}
