// Package matcher scans normalized table text for (power range, €/kWc) rows.
package matcher

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/echome/primes-scraper/models"
)

// rowPattern matches one subsidy row: a power-range token ("≤ 3 kWc",
// "9–36 kWc", "9-36 kWc", "9 à 36 kWc"), then at most 80 characters of
// anything, then a 2–4 digit euro amount followed by "€" and "/kWc".
var rowPattern = regexp.MustCompile(
	`(?i)((?:≤|<=?)\s*\d+\s*kWc|\d+\s*(?:–|-|à)\s*\d+\s*kWc)` +
		`(?:.{0,80}?)` +
		`\b(\d{2,4})\s*€\s*/\s*kWc`)

// Scanner lazily yields row matches over a text buffer, left to right and
// without overlap. Each call to Next resumes immediately after the text the
// previous match consumed.
type Scanner struct {
	text string
	pos  int
}

func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next candidate in order of appearance, or ok=false once
// the buffer is exhausted. A matched amount that fails integer conversion is
// dropped and scanning continues.
func (s *Scanner) Next() (models.CandidateMatch, bool) {
	for {
		idx := rowPattern.FindStringSubmatchIndex(s.text[s.pos:])
		if idx == nil {
			s.pos = len(s.text)
			return models.CandidateMatch{}, false
		}
		rangeLabel := normalizeSpace(s.text[s.pos+idx[2] : s.pos+idx[3]])
		rawValue := s.text[s.pos+idx[4] : s.pos+idx[5]]
		s.pos += idx[1]

		value, err := strconv.Atoi(rawValue)
		if err != nil {
			continue
		}
		return models.CandidateMatch{Range: rangeLabel, EurPerKWc: value}, true
	}
}

// All drains a fresh scanner over text.
func All(text string) []models.CandidateMatch {
	var out []models.CandidateMatch
	sc := NewScanner(text)
	for {
		m, ok := sc.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

// Dedupe keeps the first occurrence of each (range, value) pair, preserving
// order of appearance.
func Dedupe(matches []models.CandidateMatch) []models.CandidateMatch {
	seen := make(map[models.CandidateMatch]struct{}, len(matches))
	out := make([]models.CandidateMatch, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
