package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageFile   = "file"
	StorageBolt   = "bolt"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config aggregates all runtime settings of the CLI.
type Config struct {
	Workspace string
	Storage   string
	Logger    LoggerConfig
	Reminder  ReminderConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type ReminderConfig struct {
	Interval time.Duration
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults suited to a local workspace.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	cfg := &Config{
		Workspace: getString("TASKNEST_WORKSPACE", cwd),
		Storage:   strings.ToLower(getString("TASKNEST_STORAGE", StorageFile)),
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "warn"),
			Encoding: getString("LOG_ENCODING", "console"),
		},
		Reminder: ReminderConfig{
			Interval: getDuration("TASKNEST_REMIND_INTERVAL", time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no safe fallback.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageBolt, StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q (use file, bolt, sqlite or memory)", c.Storage)
	}
	if c.Reminder.Interval < time.Second {
		return fmt.Errorf("reminder interval must be at least 1s, got %s", c.Reminder.Interval)
	}
	return nil
}

func getString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
