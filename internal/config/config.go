// Package config loads the CLI's configuration file. The transport core
// never reads it; resolved values are passed in at the command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/JeremPFT/transmission/internal/rpc"
)

// Config holds all application configuration.
type Config struct {
	// ClientID identifies this installation in log output. Generated on
	// first load.
	ClientID string `json:"client_id" yaml:"client_id"`

	// RPC holds daemon connection settings.
	RPC RPCConfig `json:"rpc" yaml:"rpc"`

	// Log holds logging configuration.
	Log LogConfig `json:"log" yaml:"log"`
}

// RPCConfig holds daemon connection settings.
type RPCConfig struct {
	Address string `json:"address" yaml:"address"`
}

// LogConfig holds logging-related configuration.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // "json" or "console"
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ClientID: uuid.New().String(),
		RPC: RPCConfig{
			Address: rpc.DefaultAddr,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "transmission-cli", "config.yaml")
}

// Load reads the config file at path, falling back to DefaultPath when
// path is empty and to defaults when no file exists. Missing fields are
// filled with defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the config to path (DefaultPath when empty), creating
// parent directories as needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("no config path available")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) fillDefaults() {
	if c.ClientID == "" {
		c.ClientID = uuid.New().String()
	}
	if c.RPC.Address == "" {
		c.RPC.Address = rpc.DefaultAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}
