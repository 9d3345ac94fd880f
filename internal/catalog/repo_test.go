package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/catalog/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddCollection_DerivesID(t *testing.T) {
	repo := catalog.NewRepo(mocks.NewMockBuilder(gomock.NewController(t)), testLogger())

	id, err := repo.AddCollection("", "Movies", "movies", "/media/movies")
	require.NoError(t, err)
	assert.Len(t, id, 20)

	// Same name always derives the same id.
	again, err := repo.AddCollection("", "Movies", "movies", "/media/movies")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestAddCollection_ExplicitID(t *testing.T) {
	repo := catalog.NewRepo(mocks.NewMockBuilder(gomock.NewController(t)), testLogger())

	id, err := repo.AddCollection("movies-1", "Movies", "movies", "/media/movies")
	require.NoError(t, err)
	assert.Equal(t, "movies-1", id)

	c, ok := repo.Collection("movies-1")
	require.True(t, ok)
	assert.Equal(t, "Movies", c.Name)
	assert.Equal(t, catalog.TypeMovies, c.Type)
	assert.Empty(t, c.Items)
}

func TestAddCollection_UnknownType(t *testing.T) {
	repo := catalog.NewRepo(mocks.NewMockBuilder(gomock.NewController(t)), testLogger())

	_, err := repo.AddCollection("", "Music", "music", "/media/music")
	require.ErrorIs(t, err, catalog.ErrUnknownType)
	assert.Empty(t, repo.Collections())
}

func TestRefresh_PublishesItems(t *testing.T) {
	builder := mocks.NewMockBuilder(gomock.NewController(t))
	builder.EXPECT().Build(gomock.Any(), gomock.Any()).
		Return([]catalog.Item{&catalog.Movie{ID: "m1", Name: "Solaris"}}, nil)

	repo := catalog.NewRepo(builder, testLogger())
	_, err := repo.AddCollection("c1", "Movies", "movies", "/media/movies")
	require.NoError(t, err)

	require.NoError(t, repo.Refresh(context.Background()))

	c, ok := repo.Collection("c1")
	require.True(t, ok)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "m1", c.Items[0].ItemID())
}

func TestRefresh_BuildErrorKeepsPreviousItems(t *testing.T) {
	builder := mocks.NewMockBuilder(gomock.NewController(t))
	gomock.InOrder(
		builder.EXPECT().Build(gomock.Any(), gomock.Any()).
			Return([]catalog.Item{&catalog.Movie{ID: "m1", Name: "Solaris"}}, nil),
		builder.EXPECT().Build(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("disk unplugged")),
	)

	repo := catalog.NewRepo(builder, testLogger())
	_, err := repo.AddCollection("c1", "Movies", "movies", "/media/movies")
	require.NoError(t, err)

	require.NoError(t, repo.Refresh(context.Background()))
	require.NoError(t, repo.Refresh(context.Background()))

	c, ok := repo.Collection("c1")
	require.True(t, ok)
	require.Len(t, c.Items, 1, "failed rescan must keep the previous items")
	assert.Equal(t, "m1", c.Items[0].ItemID())
}

func TestRefresh_SnapshotIsolation(t *testing.T) {
	builder := mocks.NewMockBuilder(gomock.NewController(t))
	gomock.InOrder(
		builder.EXPECT().Build(gomock.Any(), gomock.Any()).
			Return([]catalog.Item{&catalog.Movie{ID: "m1", Name: "Solaris"}}, nil),
		builder.EXPECT().Build(gomock.Any(), gomock.Any()).
			Return([]catalog.Item{
				&catalog.Movie{ID: "m1", Name: "Solaris"},
				&catalog.Movie{ID: "m2", Name: "Stalker"},
			}, nil),
	)

	repo := catalog.NewRepo(builder, testLogger())
	_, err := repo.AddCollection("c1", "Movies", "movies", "/media/movies")
	require.NoError(t, err)
	require.NoError(t, repo.Refresh(context.Background()))

	before := repo.Snapshot()
	require.NoError(t, repo.Refresh(context.Background()))
	after := repo.Snapshot()

	// The old snapshot still shows the old world.
	c, ok := before.Collection("c1")
	require.True(t, ok)
	assert.Len(t, c.Items, 1)

	c, ok = after.Collection("c1")
	require.True(t, ok)
	assert.Len(t, c.Items, 2)
}

func TestRefresh_Cancelled(t *testing.T) {
	repo := catalog.NewRepo(mocks.NewMockBuilder(gomock.NewController(t)), testLogger())
	_, err := repo.AddCollection("c1", "Movies", "movies", "/media/movies")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, repo.Refresh(ctx), context.Canceled)
}

func TestSnapshot_ConcurrentReadsDuringRefresh(t *testing.T) {
	builder := mocks.NewMockBuilder(gomock.NewController(t))
	builder.EXPECT().Build(gomock.Any(), gomock.Any()).
		Return([]catalog.Item{&catalog.Movie{ID: "m1", Name: "Solaris"}}, nil).
		AnyTimes()

	repo := catalog.NewRepo(builder, testLogger())
	_, err := repo.AddCollection("c1", "Movies", "movies", "/media/movies")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = repo.Refresh(context.Background())
		}
	}()

	// Readers must always see either zero or one item, never a torn
	// intermediate state.
	for i := 0; i < 1000; i++ {
		snap := repo.Snapshot()
		c, ok := snap.Collection("c1")
		require.True(t, ok)
		assert.LessOrEqual(t, len(c.Items), 1)
	}
	<-done
}
