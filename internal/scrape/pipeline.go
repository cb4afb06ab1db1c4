package scrape

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/echome/primes-scraper/models"
	"github.com/echome/primes-scraper/pkg/detector"
	"github.com/echome/primes-scraper/pkg/fetcher"
	"github.com/echome/primes-scraper/pkg/matcher"
	"github.com/echome/primes-scraper/pkg/resolver"
	"github.com/echome/primes-scraper/pkg/tables"
)

// Run executes one scrape: fetch the source page, extract table text, match
// candidate rows and resolve the canonical tiers into a payload. Everything
// downstream of the fetch is best-effort; only the fetch itself can fail.
func Run(cfg *models.Config, logger *slog.Logger) (*models.Payload, error) {
	f := fetcher.NewFetcher(cfg.UserAgent, cfg.Timeout())

	logger.Info("fetching source page", "url", cfg.SourceURL)
	html, err := f.GetHTML(cfg.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	fragments := tables.Text(html)
	logger.Info("extracted table regions", "count", len(fragments))

	var candidates []models.CandidateMatch
	for _, fragment := range fragments {
		candidates = append(candidates, matcher.All(fragment)...)
	}
	candidates = matcher.Dedupe(candidates)
	logger.Info("matched candidate rows", "count", len(candidates))

	if len(fragments) > 0 && !detector.IsFrench(strings.Join(fragments, " ")) {
		logger.Warn("table text no longer reads as French, row matching may be stale",
			"url", cfg.SourceURL)
	}

	resolved := resolver.Resolve(models.DefaultTiers(), candidates)
	return models.NewPayload(cfg.SourceURL, time.Now(), resolved), nil
}
