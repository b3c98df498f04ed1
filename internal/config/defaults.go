package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxStepDelay bounds presenter pacing so a typo cannot freeze the display.
	MaxStepDelay = 10 * time.Second

	defaultDirName = ".searchviz"
)

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Settings: Settings{
			Algorithm: "linear",
			StepDelay: Duration(500 * time.Millisecond),
			LogLevel:  "warn",
			Unicode:   true,
		},
		History: History{
			Enabled: true,
			Path:    filepath.Join("~", defaultDirName, "history.db"),
			Limit:   20,
		},
	}
}

// DefaultPath returns ~/.searchviz/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultDirName, "config.yaml"), nil
}

// ExpandPath resolves a leading "~" against the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
