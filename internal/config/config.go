// Package config loads cvdash settings from the environment and an optional
// .env file.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variable names.
const (
	EnvData      = "CVDASH_DATA"
	EnvOutputDir = "CVDASH_OUTPUT_DIR"
	EnvAddr      = "CVDASH_ADDR"
	EnvTheme     = "CVDASH_THEME"
	EnvLogLevel  = "CVDASH_LOG_LEVEL"
)

// Defaults.
const (
	DefaultOutputDir = "."
	DefaultAddr      = "127.0.0.1:8080"
	DefaultTheme     = "default"
	DefaultLogLevel  = "info"
)

// Settings are the resolved runtime settings. Command line flags override
// them after loading.
type Settings struct {
	DataPath  string
	OutputDir string
	Addr      string
	Theme     string
	LogLevel  string
}

// Load reads files (".env" when none are given) if they exist, then the
// environment. A missing .env is not an error.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Settings{}, errors.Wrap(err, "load env file")
		}
	}
	return FromEnv(), nil
}

// FromEnv resolves settings from the process environment.
func FromEnv() Settings {
	return Settings{
		DataPath:  strings.TrimSpace(os.Getenv(EnvData)),
		OutputDir: envOr(EnvOutputDir, DefaultOutputDir),
		Addr:      envOr(EnvAddr, DefaultAddr),
		Theme:     envOr(EnvTheme, DefaultTheme),
		LogLevel:  envOr(EnvLogLevel, DefaultLogLevel),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Validate checks that a data path is set and the log level is known.
func (s Settings) Validate() error {
	if s.DataPath == "" {
		return errors.Errorf("no resume data: pass a path or set %s", EnvData)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug, info, warn and error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level %q", s)
	}
}
