package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tgienger/chores/internal/models"
	"gopkg.in/yaml.v3"
)

const FileName = "config.yaml"

// Config represents the application configuration
type Config struct {
	// DataDir holds the database; empty means the XDG data directory
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// Housemates is the roster tasks can be assigned to
	Housemates []models.Housemate `mapstructure:"housemates" yaml:"housemates"`
	// HideCompleted starts the task list with completed chores hidden
	HideCompleted bool `mapstructure:"hide_completed" yaml:"hide_completed"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Housemates: []models.Housemate{
			{ID: "user1", Name: "Alice"},
			{ID: "user2", Name: "Bob"},
			{ID: "user3", Name: "Charlie"},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/chores/config.yaml, falling back to ~/.config
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "chores", FileName), nil
}

// Load reads the config at path (DefaultPath when empty). A missing file
// yields the defaults; CHORES_* environment variables override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CHORES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys must be known to viper for env overrides to reach Unmarshal
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("hide_completed", defaults.HideCompleted)
	v.SetDefault("housemates", defaults.Housemates)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the roster is usable
func (c *Config) Validate() error {
	if len(c.Housemates) == 0 {
		return errors.New("config: housemates must not be empty")
	}
	seen := make(map[string]bool, len(c.Housemates))
	for i, h := range c.Housemates {
		name := strings.TrimSpace(h.Name)
		if name == "" {
			return fmt.Errorf("config: housemate %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("config: duplicate housemate %q", name)
		}
		seen[name] = true
	}
	return nil
}

// HousemateNames returns the roster names in configured order
func (c *Config) HousemateNames() []string {
	names := make([]string, len(c.Housemates))
	for i, h := range c.Housemates {
		names[i] = h.Name
	}
	return names
}

// WriteDefault writes the default configuration to path, creating parent directories
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	header := "# chores configuration\n# data_dir: empty uses $XDG_DATA_HOME/chores\n"
	return os.WriteFile(path, append([]byte(header), data...), 0644)
}
