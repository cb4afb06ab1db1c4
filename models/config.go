// Package models defines data structures for configuration and scraping.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSourceURL      = "https://www.photovoltaique.info/fr/tarifs-dachat-et-autoconsommation/"
	DefaultOutputFile     = "data/primes.json"
	DefaultUserAgent      = "Mozilla/5.0 (compatible; EchomePrimesBot/1.0; +https://github.com/)"
	DefaultTimeoutSeconds = 30
)

// Config holds runtime configuration for a scrape run. Values come from an
// optional YAML file plus CLI flag overrides; nothing is derived from the
// location of the running binary.
type Config struct {
	SourceURL      string `yaml:"source_url"`
	OutputFile     string `yaml:"output_file"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func DefaultConfig() *Config {
	return &Config{
		SourceURL:      DefaultSourceURL,
		OutputFile:     DefaultOutputFile,
		UserAgent:      DefaultUserAgent,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// LoadConfig reads a YAML config file. Fields left empty in the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg, nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
