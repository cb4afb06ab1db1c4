package models

// TierDefinition is one canonical installed-capacity bracket of the prime à
// l'autoconsommation table. Label keeps the typographic form used on the
// downstream page; FallbackEurPerKWc applies when scraping finds no match.
type TierDefinition struct {
	Label             string
	FallbackEurPerKWc int
}

// CandidateMatch is one (range, value) pair pulled out of scraped table text.
// It has no identity beyond its values and lives only for the current run.
type CandidateMatch struct {
	Range     string
	EurPerKWc int
}

// ResolvedTier binds a canonical tier to its final value, scraped or fallback.
type ResolvedTier struct {
	Range     string `json:"range"`
	EurPerKWc int    `json:"eur_per_kwc"`
}

// DefaultTiers returns the canonical tier table. Order matters: it is the row
// order the downstream page renders.
func DefaultTiers() []TierDefinition {
	return []TierDefinition{
		{Label: "≤ 3 kWc", FallbackEurPerKWc: 330},
		{Label: "3–9 kWc", FallbackEurPerKWc: 250},
		{Label: "9–36 kWc", FallbackEurPerKWc: 200},
		{Label: "36–100 kWc", FallbackEurPerKWc: 100},
	}
}
