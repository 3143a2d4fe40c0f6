package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/feedarr/feedarr/pkg/machine"
	"github.com/feedarr/feedarr/pkg/storage"
	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSqlite(t *testing.T) storage.Storage {
	store, err := New(":memory:")
	require.Nil(t, err)
	return store
}

func strPtr(s string) *string {
	return &s
}

func int32Ptr(i int32) *int32 {
	return &i
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestNew(t *testing.T) {
	store := initSqlite(t)
	assert.NotNil(t, store)
}

func TestReleaseStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	releases, err := store.ListReleases(ctx)
	assert.Nil(t, err)
	assert.Empty(t, releases)

	_, err = store.GetRelease(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	release := storage.Release{
		Release: model.Release{
			GUID:       "guid-1",
			Title:      "Movie.Name.2021.1080p.x264.DD5.1-GRP",
			CleanTitle: strPtr("Movie Name"),
			Year:       int32Ptr(2021),
			Resolution: strPtr("1080p"),
			Codec:      strPtr("x264"),
			Audio:      strPtr("DD5.1"),
			TmdbID:     int32Ptr(603),
			NewScore:   float64Ptr(135),
			Status:     string(storage.ReleaseStatusNew),
		},
	}

	id, err := store.UpsertRelease(ctx, release)
	assert.Nil(t, err)
	assert.NotZero(t, id)

	got, err := store.GetRelease(ctx, "guid-1")
	require.Nil(t, err)
	assert.Equal(t, "Movie.Name.2021.1080p.x264.DD5.1-GRP", got.Title)
	assert.Equal(t, storage.ReleaseStatusNew, got.ReleaseStatus())
	require.NotNil(t, got.TmdbID)
	assert.Equal(t, int32(603), *got.TmdbID)
	assert.NotNil(t, got.CreatedAt)

	// same guid updates in place
	release.NewScore = float64Ptr(150)
	release.Status = string(storage.ReleaseStatusUpgradeCandidate)
	_, err = store.UpsertRelease(ctx, release)
	assert.Nil(t, err)

	releases, err = store.ListReleases(ctx)
	assert.Nil(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, storage.ReleaseStatusUpgradeCandidate, releases[0].ReleaseStatus())
	require.NotNil(t, releases[0].NewScore)
	assert.Equal(t, float64(150), *releases[0].NewScore)
	assert.Equal(t, got.ID, releases[0].ID)

	byStatus, err := store.ListReleasesByStatus(ctx, storage.ReleaseStatusUpgradeCandidate)
	assert.Nil(t, err)
	assert.Len(t, byStatus, 1)

	byStatus, err = store.ListReleasesByStatus(ctx, storage.ReleaseStatusIgnored)
	assert.Nil(t, err)
	assert.Empty(t, byStatus)
}

func TestUpdateReleaseStatus(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	release := storage.Release{
		Release: model.Release{
			GUID:   "guid-1",
			Title:  "Movie Name",
			Status: string(storage.ReleaseStatusNew),
		},
	}
	_, err := store.UpsertRelease(ctx, release)
	require.Nil(t, err)

	err = store.UpdateReleaseStatus(ctx, "guid-1", storage.ReleaseStatusAdded)
	assert.Nil(t, err)

	got, err := store.GetRelease(ctx, "guid-1")
	require.Nil(t, err)
	assert.Equal(t, storage.ReleaseStatusAdded, got.ReleaseStatus())
	assert.NotNil(t, got.LastCheckedAt)

	// terminal states have no outgoing transitions
	err = store.UpdateReleaseStatus(ctx, "guid-1", storage.ReleaseStatusIgnored)
	assert.ErrorIs(t, err, machine.ErrInvalidTransition)

	got, err = store.GetRelease(ctx, "guid-1")
	require.Nil(t, err)
	assert.Equal(t, storage.ReleaseStatusAdded, got.ReleaseStatus())
}

func TestTvReleaseStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	release := storage.TvRelease{
		TvRelease: model.TvRelease{
			GUID:     "guid-tv-1",
			Title:    "Show.Title.S02.2160p",
			ShowName: "Show Title",
			Season:   int32Ptr(2),
			TvdbID:   int32Ptr(81189),
			Status:   string(storage.TvStatusNewSeason),
		},
	}

	id, err := store.UpsertTvRelease(ctx, release)
	assert.Nil(t, err)
	assert.NotZero(t, id)

	got, err := store.GetTvRelease(ctx, "guid-tv-1")
	require.Nil(t, err)
	assert.Equal(t, "Show Title", got.ShowName)
	assert.Equal(t, storage.TvStatusNewSeason, got.TvStatus())

	err = store.UpdateTvReleaseStatus(ctx, "guid-tv-1", storage.TvStatusAdded)
	assert.Nil(t, err)

	err = store.UpdateTvReleaseStatus(ctx, "guid-tv-1", storage.TvStatusIgnored)
	assert.ErrorIs(t, err, machine.ErrInvalidTransition)

	releases, err := store.ListTvReleases(ctx)
	assert.Nil(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, storage.TvStatusAdded, releases[0].TvStatus())
}

func TestShowStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	shows, err := store.ListShows(ctx)
	assert.Nil(t, err)
	assert.Empty(t, shows)

	_, err = store.SaveShow(ctx, model.Show{
		Name:           "Breaking Bad",
		NormalizedName: "breaking bad",
		TvdbID:         int32Ptr(81189),
	})
	assert.Nil(t, err)

	// saving again without ids keeps the stored ones
	_, err = store.SaveShow(ctx, model.Show{
		Name:           "Breaking Bad",
		NormalizedName: "breaking bad",
		TmdbID:         int32Ptr(1396),
	})
	assert.Nil(t, err)

	shows, err = store.ListShows(ctx)
	assert.Nil(t, err)
	require.Len(t, shows, 1)
	require.NotNil(t, shows[0].TvdbID)
	assert.Equal(t, int32(81189), *shows[0].TvdbID)
	require.NotNil(t, shows[0].TmdbID)
	assert.Equal(t, int32(1396), *shows[0].TmdbID)
}

func TestSyncRunStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	run := model.SyncRun{
		RunID: "run-1",
		Feed:  "movies",
		Kind:  "movie",
	}

	id, err := store.CreateSyncRun(ctx, run)
	assert.Nil(t, err)
	assert.NotZero(t, id)

	run.Processed = 10
	run.NewCount = 3
	run.Ignored = 6
	run.Errors = 1
	err = store.FinishSyncRun(ctx, run)
	assert.Nil(t, err)

	runs, err := store.ListSyncRuns(ctx, 10)
	assert.Nil(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.Equal(t, int32(10), runs[0].Processed)
	assert.Equal(t, int32(3), runs[0].NewCount)
	assert.NotNil(t, runs[0].StartedAt)
	assert.NotNil(t, runs[0].FinishedAt)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	boom := errors.New("boom")
	err := store.WithTx(ctx, func(tx storage.Storage) error {
		_, err := tx.UpsertRelease(ctx, storage.Release{
			Release: model.Release{GUID: "guid-rollback", Title: "A"},
		})
		require.Nil(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.GetRelease(ctx, "guid-rollback")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.WithTx(ctx, func(tx storage.Storage) error {
		_, err := tx.UpsertRelease(ctx, storage.Release{
			Release: model.Release{GUID: "guid-commit", Title: "B"},
		})
		return err
	})
	assert.Nil(t, err)

	got, err := store.GetRelease(ctx, "guid-commit")
	require.Nil(t, err)
	assert.Equal(t, "B", got.Title)
}
