package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Config holds the settings for the drosera render tool.
type Config struct {
	// LogLevel selects the slog level: debug, info, warn, or error.
	LogLevel string `json:"log_level"`

	// BaseDir is the directory include paths are resolved against.
	BaseDir string `json:"base_dir"`

	// FragmentDatabasePath, when set, serves includes from a SQLite
	// fragment database instead of the filesystem.
	FragmentDatabasePath string `json:"fragment_database_path"`

	// OutputPath is where the rendered document is written. Empty means
	// stdout unless overridden on the command line.
	OutputPath string `json:"output_path"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:             "info",
		BaseDir:              "./fragments",
		FragmentDatabasePath: "",
		OutputPath:           "",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the tool can still run with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
