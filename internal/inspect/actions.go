package inspect

import (
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/urfave/cli/v2"

	"github.com/echome/primes-scraper/internal/common"
	"github.com/echome/primes-scraper/pkg/detector"
	"github.com/echome/primes-scraper/pkg/fetcher"
	"github.com/echome/primes-scraper/pkg/matcher"
	"github.com/echome/primes-scraper/pkg/tables"
)

// InspectAction fetches the source page and dumps what the scraper would see:
// page title, detected language, table regions and every candidate row. It
// writes nothing; it exists to debug layout drift on the source site.
func InspectAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}

	f := fetcher.NewFetcher(cfg.UserAgent, cfg.Timeout())
	html, err := f.GetHTML(cfg.SourceURL)
	if err != nil {
		return err
	}

	fmt.Printf("Source: %s\n", cfg.SourceURL)

	if parsedURL, err := url.Parse(cfg.SourceURL); err == nil {
		readabilityParser := readability.NewParser()
		article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
		if err != nil {
			logger.Warn("readability parse failed", "error", err)
		} else {
			fmt.Printf("Titre: %s\n", strings.TrimSpace(article.Title))
			if excerpt := strings.TrimSpace(article.Excerpt); excerpt != "" {
				fmt.Printf("Extrait: %s\n", truncate(excerpt, 200))
			}
		}
	}

	fragments := tables.Text(html)
	if lang, ok := detector.Detect(strings.Join(fragments, " ")); ok {
		fmt.Printf("Langue: %s\n", lang)
	}
	fmt.Printf("Tables: %d\n", len(fragments))

	for i, fragment := range fragments {
		fmt.Printf("\n[table %d] %s\n", i+1, truncate(fragment, 200))
		for _, m := range matcher.All(fragment) {
			fmt.Printf("  candidat: %q -> %d €/kWc\n", m.Range, m.EurPerKWc)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
