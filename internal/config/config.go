package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Resolve.
const (
	EnvBackendURL       = "WAM_BACKEND_URL"
	EnvLegacyBackendURL = "REACT_APP_BACKEND_URL"
	EnvTimeout          = "WAM_TIMEOUT"
)

// DefaultBackendURL is the backend used when nothing else is configured.
const DefaultBackendURL = "http://localhost:5000/api"

// Config represents the flat wam configuration
type Config struct {
	Version    string   `json:"version"`
	BackendURL string   `json:"backend_url,omitempty"`
	Timeout    Duration `json:"timeout,omitempty"` // 0 = no client-side timeout
}

// Duration is a time.Duration stored as a string like "30s".
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:    "1",
		BackendURL: DefaultBackendURL,
	}
}

// LoadConfig reads .wam/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".wam", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	wamDir := filepath.Join(dir, ".wam")
	if err := os.MkdirAll(wamDir, 0755); err != nil {
		return fmt.Errorf("failed to create .wam dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(wamDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Resolve builds the effective configuration for dir.
// Precedence: environment (including dir/.env) > .wam/config.json > defaults.
// Command-line flags are applied by the caller on top of the result.
func Resolve(dir string) (*Config, error) {
	cfg := Default()

	fileCfg, err := LoadConfig(dir)
	switch {
	case err == nil:
		if fileCfg.BackendURL != "" {
			cfg.BackendURL = fileCfg.BackendURL
		}
		if fileCfg.Timeout != 0 {
			cfg.Timeout = fileCfg.Timeout
		}
	case errors.Is(err, fs.ErrNotExist):
		// no config file
	default:
		return nil, err
	}

	// Load .env file if it exists; real environment variables win.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg.BackendURL = getEnv(EnvBackendURL, getEnv(EnvLegacyBackendURL, cfg.BackendURL))
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = Duration(d)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
