package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/vidcat/internal/catalog"
)

func TestParseType(t *testing.T) {
	ct, err := catalog.ParseType("movies")
	require.NoError(t, err)
	assert.Equal(t, catalog.TypeMovies, ct)

	ct, err = catalog.ParseType("shows")
	require.NoError(t, err)
	assert.Equal(t, catalog.TypeShows, ct)

	_, err = catalog.ParseType("Movies")
	assert.ErrorIs(t, err, catalog.ErrUnknownType, "type names are case-sensitive")

	_, err = catalog.ParseType("music")
	assert.ErrorIs(t, err, catalog.ErrUnknownType)
}

func TestCollection_Details(t *testing.T) {
	c := &catalog.Collection{
		Type: catalog.TypeMovies,
		Items: []catalog.Item{
			&catalog.Movie{ID: "m1", Metadata: catalog.Metadata{
				Genres: []string{"Drama", "Sci-Fi"}, Studios: []string{"Mosfilm"},
				OfficialRating: "PG", Year: 1972,
			}},
			&catalog.Movie{ID: "m2", Metadata: catalog.Metadata{
				Genres: []string{"Drama"}, Year: 1979,
			}},
			fixtureShow(),
		},
	}

	d := c.Details()
	assert.Equal(t, 2, d.MovieCount)
	assert.Equal(t, 1, d.ShowCount)
	assert.Equal(t, 3, d.EpisodeCount)
	assert.Equal(t, []string{"Drama", "Sci-Fi"}, d.Genres)
	assert.Equal(t, []string{"Mosfilm"}, d.Studios)
	assert.Equal(t, []string{"PG"}, d.OfficialRatings)
	assert.Equal(t, []int{1972, 1979}, d.Years)
}

func TestCollection_GenreCount(t *testing.T) {
	c := &catalog.Collection{
		Items: []catalog.Item{
			&catalog.Movie{ID: "m1", Metadata: catalog.Metadata{Genres: []string{"Drama"}}},
			&catalog.Movie{ID: "m2", Metadata: catalog.Metadata{Genres: []string{"Drama", "Comedy"}}},
		},
	}
	assert.Equal(t, map[string]int{"Drama": 2, "Comedy": 1}, c.GenreCount())
}

func TestSeason_PosterFile(t *testing.T) {
	s := &catalog.Season{Poster: "season01-poster.jpg", SeasonAllPoster: "season-all-poster.jpg"}
	assert.Equal(t, "season01-poster.jpg", s.PosterFile())

	s.Poster = ""
	assert.Equal(t, "season-all-poster.jpg", s.PosterFile())
}
