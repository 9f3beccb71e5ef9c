package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the root configuration for wdash, stored in ~/.wdash/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	API APIConfig `json:"api"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level"`
}

// APIConfig holds settings for the remote weather/auth service.
type APIConfig struct {
	// BaseURL is the root URL of the weather service, without a trailing slash.
	BaseURL string `json:"base_url"`
}

const (
	// DefaultBaseURL matches the development server the dashboard was
	// built against.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultLogLevel keeps command output quiet unless something matters.
	DefaultLogLevel = "info"
)

// Environment variables override the config file; a .env file in the
// working directory is honoured as well.
const (
	envBaseURL  = "WDASH_API_URL"
	envLogLevel = "WDASH_LOG_LEVEL"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		API:      APIConfig{BaseURL: DefaultBaseURL},
		LogLevel: DefaultLogLevel,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// wdash configuration – ~/.wdash/config.json
//
// All settings are optional; the built-in defaults shown below work for a
// local development server. Environment variables WDASH_API_URL and
// WDASH_LOG_LEVEL override values from this file.
{
  // ── Remote weather/auth service ──────────────────────────────────────────
  "api": {
    // Root URL of the weather service (no trailing slash).
    "base_url": "http://localhost:8000"
  },

  // Log level: "debug", "info", "warn" or "error".
  "log_level": "info"
}
`

// BaseDir returns the root data directory (~/.wdash), shared with the
// session store.
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".wdash"), nil
}

// configFilePath returns the path to ~/.wdash/config.json.
func configFilePath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.wdash/config.json, creating it with annotated defaults on
// first run, then applies environment overrides. Lines starting with // are
// treated as comments and stripped before JSON parsing.
func Load() (Config, error) {
	// Best-effort .env loading; a missing file is the normal case.
	_ = godotenv.Load()

	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	default:
		cleaned := stripLineComments(data)
		if err := json.Unmarshal(cleaned, &cfg); err != nil {
			return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	// Fill zero-value fields so callers always get a usable Config even if
	// the user only partially fills in the file.
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	// Environment wins over the file.
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
