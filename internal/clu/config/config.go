// Package config loads the tool configuration from a yaml file under the
// user config directory. A missing file yields defaults; flags override
// whatever is loaded.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration.
type Config struct {
	// DataFile is the lemma store path.
	DataFile string `yaml:"data_file"`

	// ListenAddr is the clud HTTP address.
	ListenAddr string `yaml:"listen_addr"`

	// Mirror configures the optional graph mirror.
	Mirror Mirror `yaml:"mirror"`
}

// Mirror selects and configures a graph mirror backend.
type Mirror struct {
	// Backend is "sqlite", "neo4j", or empty for no mirror.
	Backend string `yaml:"backend"`

	SQLitePath string `yaml:"sqlite_path"`

	Neo4jURI      string `yaml:"neo4j_uri"`
	Neo4jUser     string `yaml:"neo4j_user"`
	Neo4jPassword string `yaml:"neo4j_password"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataFile:   "lemmas.json",
		ListenAddr: ":3000",
		Mirror: Mirror{
			SQLitePath: "lemmas.db",
		},
	}
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "clu", "config.yaml"), nil
}

// Load reads the config file, returning defaults when it is absent.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config back to its default location.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
