// Package tables extracts the text content of <table> regions from raw HTML.
package tables

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Text returns one normalized text string per top-level <table> in document
// order. Text outside tables is excluded; a nested table contributes its text
// to the outermost table that contains it.
//
// Malformed markup never fails: the html parser closes any table still open
// at end of input, so an unterminated <table> yields a truncated fragment
// instead of an error.
func Text(rawHTML string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	var texts []string
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("table").Length() > 0 {
			return // captured by its outermost ancestor
		}
		if t := nodeText(s.Get(0)); t != "" {
			texts = append(texts, t)
		}
	})
	return texts
}

// nodeText joins all text fragments below n with single spaces. Cell
// boundaries become spaces so "<td>3</td><td>330</td>" reads "3 330" and not
// "3330".
func nodeText(n *html.Node) string {
	var parts []string
	collectText(n, &parts)
	return Normalize(strings.Join(parts, " "))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// Normalize collapses whitespace runs (including newlines and non-breaking
// spaces) to single spaces and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
