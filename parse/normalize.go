// ABOUTME: Canonical text normalization for client-name comparison
// ABOUTME: Uppercases, strips periods/commas/diacritics so "José" == "JOSE"
package parse

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var punctuation = strings.NewReplacer(".", "", ",", "")

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for comparison: uppercase, strip periods
// and commas, trim whitespace, decompose accents and drop combining marks.
// Total on any input; normalized comparison is the only identity check used
// across the tracker.
func Normalize(s string) string {
	s = strings.ToUpper(s)
	s = punctuation.Replace(s)
	s = strings.TrimSpace(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}
