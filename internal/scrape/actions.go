package scrape

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/echome/primes-scraper/internal/common"
	"github.com/echome/primes-scraper/pkg/storage"
)

// ScrapeAction is the cli handler for the scrape command: run the pipeline
// and overwrite the JSON snapshot. On success it prints the output path plus
// one line per resolved tier; any failure bubbles up for a non-zero exit.
func ScrapeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}

	payload, err := Run(cfg, logger)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	s := &storage.Storage{}
	if err := s.SaveFile(cfg.OutputFile, data); err != nil {
		return err
	}

	fmt.Printf("Écrit: %s\n", cfg.OutputFile)
	for _, tier := range payload.Primes {
		fmt.Printf("- %s: %d €/kWc\n", tier.Range, tier.EurPerKWc)
	}
	return nil
}
