package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the bootstrap's filesystem conventions. Every field has a
// working default; a config file only overrides them.
type Config struct {
	// VenvDir is the virtual environment directory name
	VenvDir string `json:"venv_dir" yaml:"venv_dir"`

	// Manifest is the dependency manifest file name
	Manifest string `json:"manifest" yaml:"manifest"`

	// EntryPoint is the application entry point file name
	EntryPoint string `json:"entry_point" yaml:"entry_point"`

	// Port is the local port the application listens on
	Port int `json:"port" yaml:"port"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		VenvDir:    "venv",
		Manifest:   "requirements.txt",
		EntryPoint: "intercept.py",
		Port:       8087,
	}
}

// LoadConfig loads configuration from a file, falling back to defaults
// when no file exists.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return cfg, nil
}

// findConfigFile looks for config files in common locations
func findConfigFile() string {
	candidates := []string{
		".intercept-setup.yaml",
		".intercept-setup.yml",
		".intercept-setup.json",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(homeDir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}
