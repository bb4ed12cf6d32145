// Package config loads project settings from communitysearch.yml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Neo4jConfig holds the connection settings for a Neo4j store backend.
type Neo4jConfig struct {
	URI      string `yaml:"uri,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Config holds settings loaded from communitysearch.yml.
type Config struct {
	// Store selects the property-graph backend: "memory", "kuzu", or "neo4j".
	Store    string      `yaml:"store,omitempty"`
	KuzuPath string      `yaml:"kuzuPath,omitempty"`
	Neo4j    Neo4jConfig `yaml:"neo4j,omitempty"`

	// DefaultK and DefaultD apply when the CLI flags are left unset.
	DefaultK int  `yaml:"defaultK,omitempty"`
	DefaultD int  `yaml:"defaultD,omitempty"`
	Verbose  bool `yaml:"verbose,omitempty"`
}

// Load attempts to read communitysearch.yml or communitysearch.yaml from
// the given directory. Returns a zero-value config (not an error) if no
// config file exists.
func Load(dir string) (*Config, error) {
	for _, name := range []string{"communitysearch.yml", "communitysearch.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		return &cfg, nil
	}
	return &Config{}, nil
}
