// primes-scraper keeps the static page's subsidy table current: it scrapes
// the published "prime à l'autoconsommation" rates (€/kWc per installed-power
// tier) and rewrites the JSON snapshot the front end renders.
//
// Usage:
//   primes-scraper scrape [--url ...] [--out ...]
//   primes-scraper inspect
//   primes-scraper check
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/echome/primes-scraper/internal/check"
	"github.com/echome/primes-scraper/internal/inspect"
	"github.com/echome/primes-scraper/internal/scrape"
)

func main() {
	app := &cli.App{
		Name:   "primes-scraper",
		Usage:  "met à jour data/primes.json depuis photovoltaique.info",
		Flags:  sharedFlags(),
		Action: scrape.ScrapeAction, // bare invocation scrapes

		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "récupère la page source et réécrit le fichier JSON",
				Flags:  sharedFlags(),
				Action: scrape.ScrapeAction,
			},
			{
				Name:   "inspect",
				Usage:  "affiche ce que le scraper voit sur la page source (débogage)",
				Flags:  sharedFlags(),
				Action: inspect.InspectAction,
			},
			{
				Name:   "check",
				Usage:  "vérifie qu'un fichier existant respecte le contrat du front",
				Flags:  sharedFlags(),
				Action: check.CheckAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERREUR: %v\n", err)
		os.Exit(1)
	}
}

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "chemin du fichier de configuration YAML",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "URL de la page source",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "fichier JSON de sortie",
		},
		&cli.IntFlag{
			Name:  "timeout",
			Usage: "délai réseau en secondes",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "ne journalise que les erreurs",
		},
	}
}
