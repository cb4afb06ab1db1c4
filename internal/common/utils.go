package common

import (
	"log/slog"
	"os"

	"github.com/echome/primes-scraper/models"
	"github.com/urfave/cli/v2"
)

// NewLogger builds the stderr JSON logger shared by all commands. quiet drops
// everything below ERROR so stdout stays machine-friendly.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ResolveConfig merges the optional YAML config file with CLI flag overrides.
// An explicit --config path must exist; the implicit config.yaml is only read
// when present.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()

	path := "config.yaml"
	if c.IsSet("config") {
		path = c.String("config")
	}
	if c.IsSet("config") || fileExists(path) {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("url") {
		cfg.SourceURL = c.String("url")
	}
	if c.IsSet("out") {
		cfg.OutputFile = c.String("out")
	}
	if c.IsSet("timeout") {
		cfg.TimeoutSeconds = c.Int("timeout")
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
