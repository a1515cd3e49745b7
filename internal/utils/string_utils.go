package utils

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var summaryPolicy = bluemonday.StrictPolicy()

// SanitizeSummary turns an event title into one line of plain text for
// display. Classification always sees the raw title.
func SanitizeSummary(s string) string {
	s = html.UnescapeString(s)
	s = summaryPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(strings.ToValidUTF8(s, "")), " ")
}

// FoldAccents removes combining marks, e.g. "José" becomes "Jose".
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// SearchKey normalizes s for fuzzy matching.
func SearchKey(s string) string {
	return strings.ToLower(FoldAccents(strings.TrimSpace(s)))
}
