package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining accents, so "Amélie" indexes
// and queries as "amelie".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// matchQuery turns a user term into an FTS5 MATCH expression: each
// token quoted and prefix-matched, all tokens required. Returns ""
// when the term has no usable tokens.
func matchQuery(term string) string {
	var tokens []string
	for _, tok := range strings.Fields(Fold(term)) {
		tok = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, tok)
		if tok != "" {
			tokens = append(tokens, `"`+tok+`"*`)
		}
	}
	return strings.Join(tokens, " ")
}
