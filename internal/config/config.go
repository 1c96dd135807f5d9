package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendJSON      = "json"
	BackendEncrypted = "encrypted"
)

type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`
}

type StorageConfig struct {
	Backend  string `yaml:"backend"`   // "json" or "encrypted"
	DataPath string `yaml:"data_path"` // Path to the JSON data file
	DBPath   string `yaml:"db_path"`   // Path to the encrypted SQLite database
}

// DefaultConfigPath returns ~/.config/clienthub/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "clienthub", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "clienthub", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Storage: StorageConfig{
			Backend:  BackendJSON,
			DataPath: filepath.Join(homeDir, ".config", "clienthub", "clients.json"),
			DBPath:   filepath.Join(homeDir, ".config", "clienthub", "clienthub.db"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Validate checks the config for unusable values
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendEncrypted:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (expected %q or %q)",
			c.Storage.Backend, BackendJSON, BackendEncrypted)
	}
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the directories holding the data files
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(filepath.Dir(c.Storage.DataPath), 0755); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(c.Storage.DBPath), 0700)
}
