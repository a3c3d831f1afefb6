package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds all configurable coloGAMA settings.
type Config struct {
	BackendURL     string `json:"backend_url"`     // base URL of the device backend
	DownloadDir    string `json:"download_dir"`    // where downloaded reports land
	RequestTimeout int    `json:"request_timeout"` // seconds; 0 means no timeout
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		BackendURL:  "http://localhost:8000",
		DownloadDir: ".",
	}
}

// LoadGlobal reads ~/.config/cologama/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path, true)
}

// LoadProject reads .cologamaconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".cologamaconfig", false)
}

// GlobalPath returns the location of the global config file.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cologama", "config.json"), nil
}

// Save writes cfg to the global config file, creating parent directories.
func Save(cfg Config) error {
	path, err := GlobalPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()

	// Apply global values over defaults.
	if global != nil {
		if global.BackendURL != "" {
			result.BackendURL = global.BackendURL
		}
		if global.DownloadDir != "" {
			result.DownloadDir = global.DownloadDir
		}
		if global.RequestTimeout > 0 {
			result.RequestTimeout = global.RequestTimeout
		}
	}

	// Apply project values over global.
	if project != nil {
		if project.BackendURL != "" {
			result.BackendURL = project.BackendURL
		}
		if project.DownloadDir != "" {
			result.DownloadDir = project.DownloadDir
		}
		if project.RequestTimeout > 0 {
			result.RequestTimeout = project.RequestTimeout
		}
	}

	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
