// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Storage backend: "memory" or "sqlite"
	DataBackend  string
	SQLiteDBPath string

	// Preference document (budget, hidden set, last category)
	PrefsPath string

	// Placeholder owner used when no identity header is present.
	// Stands in for unimplemented authentication.
	DefaultOwner string

	// Category breakdown truncation
	CategoryLimit int
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8081"),
		DataBackend:   getEnv("DATA_BACKEND", "memory"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/finance-tracker.db"),
		PrefsPath:     getEnv("PREFS_PATH", "./data/preferences.json"),
		DefaultOwner:  getEnv("DEFAULT_OWNER", "test-user-id"),
		CategoryLimit: getEnvInt("CATEGORY_LIMIT", 10),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [memory sqlite]", c.DataBackend))
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.PrefsPath == "" {
		errors = append(errors, "preferences path cannot be empty")
	}

	if c.DefaultOwner == "" {
		errors = append(errors, "default owner cannot be empty")
	}

	if c.CategoryLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid category limit %d: must be at least 1", c.CategoryLimit))
	} else if c.CategoryLimit > 100 {
		errors = append(errors, fmt.Sprintf("invalid category limit %d: must be at most 100", c.CategoryLimit))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
