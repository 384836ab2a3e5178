// Package cli implements the fambudg command-line client.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfig represents ~/.fambudg/config.yaml.
type UserConfig struct {
	CurrentProfile string             `yaml:"current-profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// Profile is a single named configuration profile.
type Profile struct {
	Host  string `yaml:"host,omitempty"`
	Token string `yaml:"token,omitempty"`
}

// ActiveProfileName resolves the profile name: override wins over
// current-profile, which defaults to "default".
func (c *UserConfig) ActiveProfileName(override string) string {
	if override != "" {
		return override
	}
	if c.CurrentProfile != "" {
		return c.CurrentProfile
	}
	return "default"
}

// ActiveProfile returns the profile to use based on the override or
// current-profile.
func (c *UserConfig) ActiveProfile(override string) Profile {
	if p, ok := c.Profiles[c.ActiveProfileName(override)]; ok {
		return p
	}
	return Profile{}
}

// ConfigDir returns the path to ~/.fambudg/.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fambudg")
}

// ConfigPath returns the path to ~/.fambudg/config.yaml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoadUserConfig reads ~/.fambudg/config.yaml.
func LoadUserConfig() (*UserConfig, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return &cfg, nil
}

// loadOrEmptyConfig reads the config, falling back to an empty one when
// the file does not exist yet.
func loadOrEmptyConfig() *UserConfig {
	cfg, err := LoadUserConfig()
	if err != nil {
		return &UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{}}
	}
	return cfg
}

// SaveUserConfig writes ~/.fambudg/config.yaml with owner-only
// permissions; the file carries the session token.
func SaveUserConfig(cfg *UserConfig) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(ConfigPath(), data, 0o600)
}
