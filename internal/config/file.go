package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// FileName is the durable config file name.
const FileName = "user-config.json"

// DefaultPath returns the default config file location under the XDG
// config directory (~/.config/bvv-alert/user-config.json on Linux).
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("bvv-alert", FileName))
	if err != nil {
		return "", fmt.Errorf("resolving config path: %w", err)
	}
	return path, nil
}

// Load reads a configuration from path. It returns (nil, nil) when the
// file does not exist yet; the caller decides whether to build a new
// configuration interactively.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.PlayingStyle == nil {
		cfg.PlayingStyle = make(map[int]string)
	}
	if cfg.Classes == nil {
		cfg.Classes = make(map[int]string)
	}

	// The recipient defaults to the sender, same as for interactively
	// built configurations.
	if cfg.Email.From != "" && cfg.Email.To == "" {
		cfg.Email.To = cfg.Email.From
	}

	return &cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed. The file is written with restrictive permissions because it
// may contain SMTP credentials.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
