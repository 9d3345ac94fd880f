package epname

import (
	"strconv"
	"strings"
)

// ParseSeasonDir extracts the season number from a directory name.
// Accepted forms are "Season NN" and "SNN", case-insensitive; season 0
// is used for specials. Any other name is not a season directory.
func ParseSeasonDir(name string) (int, bool) {
	lower := strings.ToLower(name)

	if rest, ok := strings.CutPrefix(lower, "season"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}

	if rest, ok := strings.CutPrefix(lower, "s"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}

	return 0, false
}
