package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config defines the options readable from the optional config file. Flags
// override any value set here.
type Config struct {
	// WordList is the path to the word list file.
	WordList string `yaml:"wordlist"`
	// CacheSize is the result cache capacity; 0 disables caching.
	CacheSize int `yaml:"cache-size"`
	// Workers is the number of concurrent chunks per query.
	Workers int `yaml:"workers"`
	// Algorithm is the default query algorithm: auto, bitset, or scan.
	Algorithm string `yaml:"algorithm"`
	// Format is the default output format: plain, json, or csv.
	Format string `yaml:"format"`
}

// loadConfig populates a Config from path. An empty path yields defaults.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding config file: %w", err)
	}
	return &c, nil
}
