// Package epname extracts season and episode numbers from video
// filenames, recognizes season directory names, and derives sortable
// names from display names.
package epname

import (
	"fmt"
	"regexp"
	"strconv"
)

// HintNone means the caller does not know which season a file belongs to.
const HintNone = -1

// Info is the result of parsing an episode filename.
type Info struct {
	Season  int
	Episode int
	// Double marks a single file covering two consecutive episodes.
	Double bool
	// Name is the display name derived from the match, e.g. "01x04".
	Name string
}

// The four recognized filename shapes, tried in this order. The first
// match wins; later patterns are never consulted after a hit.
var (
	// show.s03e04.mkv
	patSingle = regexp.MustCompile(`^.*[ ._][sS]([0-9]+)[eE]([0-9]+)[ ._].*$`)
	// show.s03e04e05.mkv or show.s03e04-e05.mkv
	patDouble = regexp.MustCompile(`^.*[ ._][sS]([0-9]+)[eE]([0-9]+)-?[eE]([0-9]+)[ ._].*$`)
	// show.2015.03.08.mkv or show.2015-03-08.mkv
	patDate = regexp.MustCompile(`^.*[ .]([0-9]{4})[.-]([0-9]{2})[.-]([0-9]{2})[ .].*$`)
	// show.308.mkv or show.3x08.mkv, leading digits are the season
	patBare = regexp.MustCompile(`^.*[ .]([0-9]{1,2})x?([0-9]{2})[ .].*$`)
)

// Parse extracts episode information from filename. seasonHint is the
// season number the caller expects from context (the containing season
// folder), or HintNone when unknown.
//
// Date-based filenames take the hint as their season and use the
// concatenated YYYYMMDD digits as the episode number, which keeps
// chronological ordering under plain numeric comparison. The bare
// numeric form is only accepted when the hint is unknown or agrees
// with the parsed season, guarding against stray numbers.
func Parse(filename string, seasonHint int) (Info, bool) {
	if m := patSingle.FindStringSubmatch(filename); m != nil {
		season, err1 := strconv.Atoi(m[1])
		episode, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return Info{Season: season, Episode: episode, Name: m[1] + "x" + m[2]}, true
		}
	}

	if m := patDouble.FindStringSubmatch(filename); m != nil {
		season, err1 := strconv.Atoi(m[1])
		episode, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return Info{
				Season:  season,
				Episode: episode,
				Double:  true,
				Name:    m[1] + "x" + m[2] + "-" + m[3],
			}, true
		}
	}

	if m := patDate.FindStringSubmatch(filename); m != nil {
		episode, err := strconv.Atoi(m[1] + m[2] + m[3])
		if err == nil {
			return Info{
				Season:  seasonHint,
				Episode: episode,
				Name:    m[1] + "." + m[2] + "." + m[3],
			}, true
		}
	}

	if m := patBare.FindStringSubmatch(filename); m != nil {
		season, err1 := strconv.Atoi(m[1])
		episode, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && (seasonHint < 0 || seasonHint == season) {
			return Info{
				Season:  season,
				Episode: episode,
				Name:    fmt.Sprintf("%02dx%s", season, m[2]),
			}, true
		}
	}

	return Info{}, false
}
