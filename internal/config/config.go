package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DisabledPath turns off the SQLite recorder when used as database.sqlite_path.
const DisabledPath = "-"

// Config holds all application configuration.
type Config struct {
	Simulation struct {
		Runs int    `yaml:"runs"`
		Seed uint64 `yaml:"seed"` // 0 means random
	} `yaml:"simulation"`
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
		Progress    bool   `yaml:"progress"`
	} `yaml:"log"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		BatchCron string `yaml:"batch_cron"`
	} `yaml:"schedule"`
	Report struct {
		SummaryFile string `yaml:"summary_file"`
	} `yaml:"report"`
}

// Load reads an optional .env file and the YAML config, then applies
// environment variable overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STREAK_RUNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse STREAK_RUNS: %w", err)
		}
		cfg.Simulation.Runs = n
	}
	if v := os.Getenv("STREAK_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse STREAK_SEED: %w", err)
		}
		cfg.Simulation.Seed = seed
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_PROGRESS"); v != "" {
		cfg.Log.Progress = v == "true" || v == "1"
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("BATCH_CRON"); v != "" {
		cfg.Schedule.BatchCron = v
	}
	if v := os.Getenv("SUMMARY_FILE"); v != "" {
		cfg.Report.SummaryFile = v
	}

	// Defaults
	if cfg.Simulation.Runs == 0 {
		cfg.Simulation.Runs = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/coin_streak.db"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Simulation.Runs < 1 {
		return fmt.Errorf("simulation.runs must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// RecorderEnabled reports whether run history should go to SQLite.
func (c *Config) RecorderEnabled() bool {
	return c.Database.SQLitePath != DisabledPath
}
