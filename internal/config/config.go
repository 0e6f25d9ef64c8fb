// Package config handles the XDG configuration directory and the optional
// config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "tasklite"

	// ConfigFile is the optional configuration filename inside the
	// config directory.
	ConfigFile = "config.yaml"

	// StoreFile is the default durable task filename inside the config
	// directory.
	StoreFile = "tasks.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// StorePath is the resolved durable task file path.
	StorePath string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the schema of the optional config.yaml.
type fileConfig struct {
	StorePath string `yaml:"store_path"`
}

// New creates a Config. If configDir is empty the default XDG directory is
// used. storePath overrides both the config file and the default; pass ""
// to use them. A missing config file is fine; a malformed one is an error.
func New(configDir, storePath string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	fc, err := readFileConfig(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}

	switch {
	case storePath != "":
		cfg.StorePath = storePath
	case fc.StorePath != "":
		cfg.StorePath = fc.StorePath
	default:
		cfg.StorePath = filepath.Join(dir, StoreFile)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0o700)
}

func readFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return fc, nil
}
