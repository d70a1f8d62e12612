package analyzer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// fold normalizes s for caseless comparison. Composed and decomposed
// accents compare equal.
func fold(c cases.Caser, s string) string {
	return c.String(norm.NFC.String(s))
}

// KeywordHits returns the keywords contained, ignoring case, in at least
// one cell of rows. Hits keep the order of keywords.
func KeywordHits(rows [][]string, keywords []string) []string {
	caser := cases.Fold()
	folded := make([]string, len(keywords))
	for i, k := range keywords {
		folded[i] = fold(caser, k)
	}

	found := make([]bool, len(keywords))
	remaining := len(keywords)

scan:
	for _, row := range rows {
		for _, cell := range row {
			if cell == "" {
				continue
			}
			value := fold(caser, cell)
			for i, k := range folded {
				if !found[i] && strings.Contains(value, k) {
					found[i] = true
					remaining--
				}
			}
			if remaining == 0 {
				break scan
			}
		}
	}

	var hits []string
	for i, k := range keywords {
		if found[i] {
			hits = append(hits, k)
		}
	}
	return hits
}
