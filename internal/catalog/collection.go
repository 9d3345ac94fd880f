package catalog

import (
	"fmt"
	"sort"
)

// Type distinguishes movie collections from show collections.
type Type string

const (
	TypeMovies Type = "movies"
	TypeShows  Type = "shows"
)

// ParseType converts a configuration string into a Type.
// Anything but "movies" or "shows" is a hard error.
func ParseType(s string) (Type, error) {
	switch s {
	case "movies":
		return TypeMovies, nil
	case "shows":
		return TypeShows, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Collection is one configured media library rooted at a directory.
// Its Items list is replaced wholesale on every rebuild.
type Collection struct {
	ID        string
	Name      string
	Type      Type
	Directory string
	Items     []Item
}

// Details are aggregate statistics over a collection's items.
type Details struct {
	MovieCount      int
	ShowCount       int
	EpisodeCount    int
	Genres          []string
	Studios         []string
	OfficialRatings []string
	Years           []int
}

// Details computes aggregate statistics for the collection.
// The string and year lists are sorted for stable output.
func (c *Collection) Details() Details {
	genres := map[string]bool{}
	studios := map[string]bool{}
	ratings := map[string]bool{}
	years := map[int]bool{}

	var d Details
	addMeta := func(m *Metadata) {
		for _, g := range m.Genres {
			if g != "" {
				genres[g] = true
			}
		}
		for _, s := range m.Studios {
			if s != "" {
				studios[s] = true
			}
		}
		if m.OfficialRating != "" {
			ratings[m.OfficialRating] = true
		}
		if m.Year != 0 {
			years[m.Year] = true
		}
	}

	for _, item := range c.Items {
		switch v := item.(type) {
		case *Movie:
			d.MovieCount++
			addMeta(&v.Metadata)
		case *Show:
			d.ShowCount++
			for _, season := range v.Seasons {
				d.EpisodeCount += len(season.Episodes)
			}
			addMeta(&v.Metadata)
		case *Season, *Episode:
			// Not present at the top level of a collection.
		}
	}

	d.Genres = sortedKeys(genres)
	d.Studios = sortedKeys(studios)
	d.OfficialRatings = sortedKeys(ratings)
	for y := range years {
		d.Years = append(d.Years, y)
	}
	sort.Ints(d.Years)
	return d
}

// GenreCount returns the number of items per genre.
func (c *Collection) GenreCount() map[string]int {
	counts := make(map[string]int)
	for _, item := range c.Items {
		var genres []string
		switch v := item.(type) {
		case *Movie:
			genres = v.Metadata.Genres
		case *Show:
			genres = v.Metadata.Genres
		case *Season, *Episode:
		}
		for _, g := range genres {
			if g != "" {
				counts[g]++
			}
		}
	}
	return counts
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
