// Package config gathers process settings from the environment once at
// startup. Nothing else in the module reads environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alexanderramin/fitai/internal/llm"
)

// Config holds all process-level settings.
type Config struct {
	DBPath        string
	HTTPAddr      string
	LogLevel      string
	DefaultUser   string
	PlanCacheSize int
	LLM           llm.LLMConfig
}

// Default returns the settings used when no environment overrides exist.
// DBPath is left empty and resolved under the home directory by Load.
func Default() Config {
	return Config{
		HTTPAddr:      ":8080",
		LogLevel:      "info",
		DefaultUser:   "demo-user",
		PlanCacheSize: 128,
		LLM:           llm.DefaultConfig(),
	}
}

// LoadDotEnv loads variables from the given files, or ".env" when none are
// given. Missing files are ignored and existing variables are not
// overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads FITAI_* variables over Default.
func Load() (Config, error) {
	cfg := Default()

	cfg.DBPath = strings.TrimSpace(os.Getenv("FITAI_DB"))
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".fitai", "fitai.db")
	}
	if v := strings.TrimSpace(os.Getenv("FITAI_HTTP_ADDR")); v != "" {
		cfg.HTTPAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("FITAI_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("FITAI_DEFAULT_USER")); v != "" {
		cfg.DefaultUser = v
	}
	if v := os.Getenv("FITAI_PLAN_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("FITAI_PLAN_CACHE_SIZE must be a non-negative integer, got %q", v)
		}
		cfg.PlanCacheSize = n
	}

	cfg.LLM = llm.LoadConfig()
	return cfg, nil
}
