package check

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/echome/primes-scraper/internal/common"
	"github.com/echome/primes-scraper/models"
	"github.com/echome/primes-scraper/pkg/storage"
)

// CheckAction validates an existing snapshot against the shape the page-side
// loader expects: version, source, date, exactly four canonical tiers in
// declaration order, positive integer values and the static notes.
func CheckAction(c *cli.Context) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}

	s := &storage.Storage{}
	if !s.HasFile(cfg.OutputFile) {
		return fmt.Errorf("fichier introuvable: %s", cfg.OutputFile)
	}
	data, err := s.ReadFile(cfg.OutputFile)
	if err != nil {
		return err
	}

	var payload models.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("JSON invalide: %w", err)
	}

	if problems := Validate(&payload); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "- %s\n", p)
		}
		return fmt.Errorf("%s ne respecte pas le contrat (%d problèmes)", cfg.OutputFile, len(problems))
	}

	fmt.Printf("OK: %s (%d paliers, mis à jour %s)\n", cfg.OutputFile, len(payload.Primes), payload.LastUpdated)
	return nil
}

// Validate returns the list of consumer-contract violations in payload, empty
// when the snapshot is safe to serve.
func Validate(p *models.Payload) []string {
	var problems []string

	if p.Version == "" {
		problems = append(problems, "champ version manquant")
	}
	if p.Source == "" {
		problems = append(problems, "champ source manquant")
	}
	if _, err := time.Parse("2006-01-02", p.LastUpdated); err != nil {
		problems = append(problems, fmt.Sprintf("last_updated invalide: %q", p.LastUpdated))
	}

	tiers := models.DefaultTiers()
	if len(p.Primes) != len(tiers) {
		problems = append(problems, fmt.Sprintf("%d paliers au lieu de %d", len(p.Primes), len(tiers)))
		return problems
	}
	for i, tier := range tiers {
		got := p.Primes[i]
		if got.Range != tier.Label {
			problems = append(problems, fmt.Sprintf("palier %d: plage %q au lieu de %q", i+1, got.Range, tier.Label))
		}
		if got.EurPerKWc <= 0 {
			problems = append(problems, fmt.Sprintf("palier %d: valeur non positive %d", i+1, got.EurPerKWc))
		}
	}

	if len(p.Notes) == 0 {
		problems = append(problems, "notes manquantes")
	}
	return problems
}
