package models

import "time"

// Payload is the JSON snapshot consumed by the static page's loader. The
// shape is a contract: four tiers, declaration order, integer values. The
// loader falls back to its own hardcoded table when the shape is off, so the
// scraper must never produce anything else.
type Payload struct {
	Version     string         `json:"version"`
	Source      string         `json:"source"`
	LastUpdated string         `json:"last_updated"`
	Primes      []ResolvedTier `json:"prime_autoconsommation_eur_per_kwc"`
	Notes       []string       `json:"notes"`
}

var payloadNotes = []string{
	"Données extraites automatiquement de photovoltaique.info (heuristique).",
	"Vérifier l'arrêté et les barèmes trimestriels (CRE) avant signature.",
}

// NewPayload assembles the snapshot for one run. generated is the calendar
// date the run happened, not the fetch time.
func NewPayload(source string, generated time.Time, tiers []ResolvedTier) *Payload {
	return &Payload{
		Version:     "auto",
		Source:      source,
		LastUpdated: generated.Format("2006-01-02"),
		Primes:      tiers,
		Notes:       payloadNotes,
	}
}
