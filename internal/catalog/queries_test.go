package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/catalog/mocks"
)

// fixtureShow has two seasons: s1 with two episodes, s2 with one.
func fixtureShow() *catalog.Show {
	return &catalog.Show{
		ID:   "sh1",
		Name: "Lost Signal",
		Seasons: []*catalog.Season{
			{
				ID: "se1", Name: "Season 1", SeasonNo: 1,
				Episodes: []*catalog.Episode{
					{ID: "ep11", Name: "01x01", SeasonNo: 1, EpisodeNo: 1},
					{ID: "ep12", Name: "01x02", SeasonNo: 1, EpisodeNo: 2},
				},
			},
			{
				ID: "se2", Name: "Season 2", SeasonNo: 2,
				Episodes: []*catalog.Episode{
					{ID: "ep21", Name: "02x01", SeasonNo: 2, EpisodeNo: 1},
				},
			},
		},
	}
}

// fixtureSnapshot publishes one movies and one shows collection.
func fixtureSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()
	builder := mocks.NewMockBuilder(gomock.NewController(t))
	builder.EXPECT().Build(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *catalog.Collection) ([]catalog.Item, error) {
			if c.Type == catalog.TypeMovies {
				return []catalog.Item{
					&catalog.Movie{ID: "m1", Name: "Casablanca Returns"},
					&catalog.Movie{ID: "m2", Name: "Solaris"},
				}, nil
			}
			return []catalog.Item{fixtureShow()}, nil
		}).Times(2)

	repo := catalog.NewRepo(builder, testLogger())
	_, err := repo.AddCollection("movies", "Movies", "movies", "/media/movies")
	require.NoError(t, err)
	_, err = repo.AddCollection("shows", "Shows", "shows", "/media/shows")
	require.NoError(t, err)
	require.NoError(t, repo.Refresh(context.Background()))
	return repo.Snapshot()
}

func TestItem_AllLevels(t *testing.T) {
	snap := fixtureSnapshot(t)

	item, ok := snap.Item("movies", "m1")
	require.True(t, ok)
	assert.IsType(t, &catalog.Movie{}, item)

	item, ok = snap.Item("shows", "sh1")
	require.True(t, ok)
	assert.IsType(t, &catalog.Show{}, item)

	item, ok = snap.Item("shows", "se2")
	require.True(t, ok)
	assert.IsType(t, &catalog.Season{}, item)

	item, ok = snap.Item("shows", "ep12")
	require.True(t, ok)
	assert.Equal(t, "01x02", item.ItemName())
}

func TestItem_Missing(t *testing.T) {
	snap := fixtureSnapshot(t)

	_, ok := snap.Item("movies", "sh1")
	assert.False(t, ok, "item from another collection must not resolve")

	_, ok = snap.Item("nope", "m1")
	assert.False(t, ok)

	_, ok = snap.Item("movies", "nope")
	assert.False(t, ok)
}

func TestItemByID_AcrossCollections(t *testing.T) {
	snap := fixtureSnapshot(t)

	c, item, ok := snap.ItemByID("ep21")
	require.True(t, ok)
	assert.Equal(t, "shows", c.ID)
	assert.Equal(t, "02x01", item.ItemName())

	_, _, ok = snap.ItemByID("nope")
	assert.False(t, ok)
}

func TestSeasonByID(t *testing.T) {
	snap := fixtureSnapshot(t)

	c, show, season, ok := snap.SeasonByID("se2")
	require.True(t, ok)
	assert.Equal(t, "shows", c.ID)
	assert.Equal(t, "sh1", show.ID)
	assert.Equal(t, 2, season.SeasonNo)
}

func TestEpisodeByID_FullAncestry(t *testing.T) {
	snap := fixtureSnapshot(t)

	c, show, season, ep, ok := snap.EpisodeByID("ep12")
	require.True(t, ok)
	assert.Equal(t, "shows", c.ID)
	assert.Equal(t, "sh1", show.ID)
	assert.Equal(t, "se1", season.ID)
	assert.Equal(t, 2, ep.EpisodeNo)
}

func TestNextUp(t *testing.T) {
	snap := fixtureSnapshot(t)

	tests := []struct {
		name    string
		watched []string
		want    []string
	}{
		{"next episode within season", []string{"ep11"}, []string{"ep12"}},
		{"rolls over to next season", []string{"ep12"}, []string{"ep21"}},
		{"mid-season progress wins", []string{"ep11", "ep12"}, []string{"ep21"}},
		{"order of watched ids is irrelevant", []string{"ep12", "ep11"}, []string{"ep21"}},
		{"last episode of last season", []string{"ep21"}, nil},
		{"unknown ids ignored", []string{"nope"}, nil},
		{"empty watched list", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snap.NextUp(tt.watched)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestSearch_Substring(t *testing.T) {
	snap := fixtureSnapshot(t)

	assert.ElementsMatch(t, []string{"m1"}, snap.Search("cas"))
	assert.ElementsMatch(t, []string{"m1"}, snap.Search("CASA"))
	assert.ElementsMatch(t, []string{"sh1"}, snap.Search("signal"))
	// Season display names participate.
	assert.ElementsMatch(t, []string{"se1", "se2"}, snap.Search("season"))
	// Episode display names participate.
	assert.ElementsMatch(t, []string{"ep21"}, snap.Search("02x01"))
	assert.Empty(t, snap.Search("zzz"))
}
