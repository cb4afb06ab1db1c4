// Package resolver maps scraped candidates onto the canonical tier table.
package resolver

import "github.com/echome/primes-scraper/models"

// Resolve produces exactly one ResolvedTier per canonical tier, in canonical
// order, for any candidate list. For each tier the first candidate whose
// range contains the tier's leading number as a whole token wins; with no
// match the tier keeps its fallback value.
//
// The leading-number lookup is a heuristic, not a structural parse: if the
// source ever renumbers its brackets it can silently pick a wrong row. The
// trade-off is accepted so a reshuffled or partial table never fails the run.
func Resolve(tiers []models.TierDefinition, candidates []models.CandidateMatch) []models.ResolvedTier {
	resolved := make([]models.ResolvedTier, 0, len(tiers))
	for _, tier := range tiers {
		value := tier.FallbackEurPerKWc
		if num, ok := firstNumber(tier.Label); ok {
			for _, c := range candidates {
				if hasNumberToken(c.Range, num) {
					value = c.EurPerKWc
					break
				}
			}
		}
		resolved = append(resolved, models.ResolvedTier{Range: tier.Label, EurPerKWc: value})
	}
	return resolved
}

// firstNumber returns the first run of digits in label, e.g. "≤ 3 kWc" → "3".
func firstNumber(label string) (string, bool) {
	start := -1
	for i, r := range label {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return label[start:i], true
		}
	}
	if start >= 0 {
		return label[start:], true
	}
	return "", false
}

// hasNumberToken reports whether text contains num as a complete digit run,
// so "9" matches "9–36 kWc" but not "19–36 kWc" or "90 kWc".
func hasNumberToken(text, num string) bool {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if text[start:i] == num {
				return true
			}
			start = -1
		}
	}
	return start >= 0 && text[start:] == num
}
