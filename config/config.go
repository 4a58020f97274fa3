package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the few knobs the tracker exposes. Everything is optional;
// defaults reproduce the stock behavior.
type Config struct {
	APIBaseURL      string
	RefreshInterval time.Duration
	DataDir         string
	LogLevel        string
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	_ = godotenv.Load(".env") // load .env, if exists

	cfg := &Config{
		APIBaseURL:      os.Getenv("CRYPTOTRACK_API_URL"),
		DataDir:         os.Getenv("CRYPTOTRACK_DATA_DIR"),
		LogLevel:        os.Getenv("CRYPTOTRACK_LOG_LEVEL"),
		RefreshInterval: 60 * time.Second,
	}

	if raw := os.Getenv("CRYPTOTRACK_REFRESH_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.RefreshInterval = time.Duration(secs) * time.Second
		}
	}

	if cfg.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.DataDir = filepath.Join(home, ".config", "cryptotrack")
		} else {
			cfg.DataDir = ".cryptotrack"
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

// PortfolioFile is the path of the persisted holdings list.
func (c *Config) PortfolioFile() string {
	return filepath.Join(c.DataDir, "portfolio.json")
}

// LogFile is the path of the application log. The terminal belongs to the
// TUI, so logs never go to stdout or stderr.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "cryptotrack.log")
}
