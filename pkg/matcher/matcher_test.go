package matcher

import (
	"reflect"
	"strings"
	"testing"

	"github.com/echome/primes-scraper/models"
)

func TestAll_RangeForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.CandidateMatch
	}{
		{
			name: "less-or-equal form",
			text: "Puissance ≤ 3 kWc prime de 330 €/kWc",
			want: []models.CandidateMatch{{Range: "≤ 3 kWc", EurPerKWc: 330}},
		},
		{
			name: "en-dash range",
			text: "3–9 kWc 250 €/kWc",
			want: []models.CandidateMatch{{Range: "3–9 kWc", EurPerKWc: 250}},
		},
		{
			name: "hyphen range without spaces",
			text: "9-36 kWc 205€/kWc",
			want: []models.CandidateMatch{{Range: "9-36 kWc", EurPerKWc: 205}},
		},
		{
			name: "French à form",
			text: "de 36 à 100 kWc : 100 € / kWc",
			want: []models.CandidateMatch{{Range: "36 à 100 kWc", EurPerKWc: 100}},
		},
		{
			name: "case insensitive unit",
			text: "3–9 KWC 250 €/KWC",
			want: []models.CandidateMatch{{Range: "3–9 KWC", EurPerKWc: 250}},
		},
		{
			name: "whitespace around slash",
			text: "≤ 3 kWc ... 330 € / kWc",
			want: []models.CandidateMatch{{Range: "≤ 3 kWc", EurPerKWc: 330}},
		},
		{
			name: "no euro token",
			text: "≤ 3 kWc sans montant ici",
			want: nil,
		},
		{
			name: "single digit amount rejected",
			text: "≤ 3 kWc 5 €/kWc",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := All(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("All(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAll_LookaheadWindow(t *testing.T) {
	// The amount sits beyond the 80-character window and must not match.
	text := "3–9 kWc " + strings.Repeat("x", 100) + " 250 €/kWc"

	if got := All(text); got != nil {
		t.Errorf("All() = %v, want no matches past the lookahead window", got)
	}
}

func TestAll_InOrderWithoutOverlap(t *testing.T) {
	text := "≤ 3 kWc : 330 €/kWc puis 3–9 kWc : 250 €/kWc enfin 9–36 kWc : 200 €/kWc"

	want := []models.CandidateMatch{
		{Range: "≤ 3 kWc", EurPerKWc: 330},
		{Range: "3–9 kWc", EurPerKWc: 250},
		{Range: "9–36 kWc", EurPerKWc: 200},
	}
	got := All(text)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestScanner_Idempotent(t *testing.T) {
	text := "≤ 3 kWc 330 €/kWc et 9-36 kWc 205€/kWc"

	first := All(text)
	second := All(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two scans differ: %v vs %v", first, second)
	}
	if len(first) != 2 {
		t.Errorf("All() found %d candidates, want 2", len(first))
	}
}

func TestScanner_ExhaustedStaysEmpty(t *testing.T) {
	sc := NewScanner("rien à trouver")
	for i := 0; i < 3; i++ {
		if m, ok := sc.Next(); ok {
			t.Fatalf("Next() call %d = %v, want no match", i+1, m)
		}
	}
}

func TestDedupe(t *testing.T) {
	in := []models.CandidateMatch{
		{Range: "≤ 3 kWc", EurPerKWc: 330},
		{Range: "3–9 kWc", EurPerKWc: 250},
		{Range: "≤ 3 kWc", EurPerKWc: 330},
		{Range: "≤ 3 kWc", EurPerKWc: 340}, // same range, different value: kept
	}

	want := []models.CandidateMatch{
		{Range: "≤ 3 kWc", EurPerKWc: 330},
		{Range: "3–9 kWc", EurPerKWc: 250},
		{Range: "≤ 3 kWc", EurPerKWc: 340},
	}
	got := Dedupe(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedupe() = %v, want %v", got, want)
	}
}
