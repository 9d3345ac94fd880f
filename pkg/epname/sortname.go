package epname

import (
	"regexp"
	"strings"
)

var yearSuffix = regexp.MustCompile(`\s*\(\d{4}\)\s*$`)

// SortName derives a sortable key from a display name: lowercase,
// trimmed, one leading article removed, and a trailing "(YYYY)" year
// stripped. "The Matrix (1999)" becomes "matrix".
func SortName(name string) string {
	title := strings.TrimSpace(strings.ToLower(name))

	for _, article := range []string{"the ", "a ", "an "} {
		if rest, ok := strings.CutPrefix(title, article); ok {
			title = strings.TrimSpace(rest)
			break
		}
	}

	title = strings.TrimLeft(title, " \t\n!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")

	if loc := yearSuffix.FindStringIndex(title); loc != nil {
		title = strings.TrimSpace(title[:loc[0]])
	}
	return title
}
