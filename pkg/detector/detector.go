// Package detector guesses the language of scraped page text. The row
// pattern the matcher relies on is tied to French typography ("à", "€/kWc"),
// so a source page that stops being French is a strong signal the matching
// heuristic has gone stale.
package detector

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	once     sync.Once
	instance lingua.LanguageDetector
)

// The candidate set is kept small on purpose: the source is French, and
// English/German/Spanish cover the likely CMS-migration accidents. Fewer
// languages also keeps the model load cheap for a single-run tool.
func detectorInstance() lingua.LanguageDetector {
	once.Do(func() {
		instance = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.French, lingua.English, lingua.German, lingua.Spanish).
			Build()
	})
	return instance
}

// Detect returns the most likely language of text. ok is false when the text
// is too short or too ambiguous to call.
func Detect(text string) (lingua.Language, bool) {
	if len(text) < 40 {
		return lingua.Unknown, false
	}
	return detectorInstance().DetectLanguageOf(text)
}

// IsFrench reports whether text still reads as French. Undecidable text
// counts as French so the drift warning only fires on a confident call.
func IsFrench(text string) bool {
	lang, ok := Detect(text)
	return !ok || lang == lingua.French
}
