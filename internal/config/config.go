package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Data backend
	Backend string

	// File backend
	LedgerPath string

	// SQLite backend
	SQLiteDBPath string
}

// fileConfig is the optional YAML layer under the environment. Env vars
// always win over file values.
type fileConfig struct {
	Backend      string `yaml:"backend"`
	LedgerPath   string `yaml:"ledger_path"`
	SQLiteDBPath string `yaml:"db_path"`
}

// Load builds the configuration from defaults, then the YAML config file
// (TALLY_CONFIG, or ./tally.yaml when present), then environment variables.
func Load() *Config {
	cfg := &Config{
		Backend:      "file",
		LedgerPath:   "./data/ledger.txt",
		SQLiteDBPath: "./data/tally.db",
	}

	applyFile(cfg, configFilePath())

	cfg.Backend = getEnv("TALLY_BACKEND", cfg.Backend)
	cfg.LedgerPath = getEnv("TALLY_LEDGER_PATH", cfg.LedgerPath)
	cfg.SQLiteDBPath = getEnv("TALLY_DB_PATH", cfg.SQLiteDBPath)

	return cfg
}

func configFilePath() string {
	if p := os.Getenv("TALLY_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("tally.yaml"); err == nil {
		return "tally.yaml"
	}
	return ""
}

// applyFile overlays values from a YAML config file. A missing or broken
// file never aborts startup; the defaults stand.
func applyFile(cfg *Config, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}
	if fc.Backend != "" {
		cfg.Backend = fc.Backend
	}
	if fc.LedgerPath != "" {
		cfg.LedgerPath = fc.LedgerPath
	}
	if fc.SQLiteDBPath != "" {
		cfg.SQLiteDBPath = fc.SQLiteDBPath
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{"file", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.Backend, validBackends))
	}

	// Validate ledger path if backend is file
	if c.Backend == "file" {
		if c.LedgerPath == "" {
			errors = append(errors, "ledger path cannot be empty when using file backend")
		} else {
			if err := ensureDir(c.LedgerPath); err != nil {
				errors = append(errors, err.Error())
			}
		}
	}

	// Validate SQLite configuration if backend is sqlite
	if c.Backend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			if err := ensureDir(c.SQLiteDBPath); err != nil {
				errors = append(errors, err.Error())
			}
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ensureDir checks that the parent directory of path exists or can be created.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create data directory '%s': %v", dir, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
