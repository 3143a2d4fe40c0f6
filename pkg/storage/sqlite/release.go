package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feedarr/feedarr/pkg/storage"
	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

const timestampFormat = "2006-01-02 15:04:05"

// UpsertRelease stores a release keyed by guid. A record seen before is
// updated in place, its id and created_at survive.
func (s *SQLite) UpsertRelease(ctx context.Context, release storage.Release) (int64, error) {
	insertColumns := table.Release.MutableColumns
	if release.CreatedAt == nil {
		insertColumns = insertColumns.Except(table.Release.CreatedAt)
	}

	stmt := table.Release.
		INSERT(insertColumns).
		MODEL(release.Release).
		ON_CONFLICT(table.Release.GUID).
		DO_UPDATE(sqlite.SET(
			table.Release.Title.SET(table.Release.EXCLUDED.Title),
			table.Release.CleanTitle.SET(table.Release.EXCLUDED.CleanTitle),
			table.Release.Year.SET(table.Release.EXCLUDED.Year),
			table.Release.Resolution.SET(table.Release.EXCLUDED.Resolution),
			table.Release.Source.SET(table.Release.EXCLUDED.Source),
			table.Release.Codec.SET(table.Release.EXCLUDED.Codec),
			table.Release.Audio.SET(table.Release.EXCLUDED.Audio),
			table.Release.SizeMb.SET(table.Release.EXCLUDED.SizeMb),
			table.Release.Languages.SET(table.Release.EXCLUDED.Languages),
			table.Release.TmdbID.SET(table.Release.EXCLUDED.TmdbID),
			table.Release.TmdbIDManual.SET(table.Release.EXCLUDED.TmdbIDManual),
			table.Release.ImdbID.SET(table.Release.EXCLUDED.ImdbID),
			table.Release.ImdbIDManual.SET(table.Release.EXCLUDED.ImdbIDManual),
			table.Release.LibraryMovieID.SET(table.Release.EXCLUDED.LibraryMovieID),
			table.Release.ExistingScore.SET(table.Release.EXCLUDED.ExistingScore),
			table.Release.NewScore.SET(table.Release.EXCLUDED.NewScore),
			table.Release.Status.SET(table.Release.EXCLUDED.Status),
			table.Release.LastCheckedAt.SET(table.Release.EXCLUDED.LastCheckedAt),
		))

	result, err := stmt.ExecContext(ctx, s.q)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetRelease fetches a release by guid
func (s *SQLite) GetRelease(ctx context.Context, guid string) (*storage.Release, error) {
	stmt := table.Release.
		SELECT(table.Release.AllColumns).
		FROM(table.Release).
		WHERE(table.Release.GUID.EQ(sqlite.String(guid)))

	release := new(storage.Release)
	err := stmt.QueryContext(ctx, s.q, release)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lookup release: %w", err)
	}

	return release, nil
}

// ListReleases lists stored releases
func (s *SQLite) ListReleases(ctx context.Context, where ...sqlite.BoolExpression) ([]*storage.Release, error) {
	releases := make([]*storage.Release, 0)

	stmt := table.Release.
		SELECT(table.Release.AllColumns).
		FROM(table.Release).
		ORDER_BY(table.Release.ID.ASC())
	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	err := stmt.QueryContext(ctx, s.q, &releases)
	return releases, err
}

// ListReleasesByStatus lists stored releases with the given status
func (s *SQLite) ListReleasesByStatus(ctx context.Context, status storage.ReleaseStatus) ([]*storage.Release, error) {
	return s.ListReleases(ctx, table.Release.Status.EQ(sqlite.String(string(status))))
}

// UpdateReleaseStatus transitions a release to the given status. Illegal
// transitions, terminal states included, return machine.ErrInvalidTransition.
func (s *SQLite) UpdateReleaseStatus(ctx context.Context, guid string, status storage.ReleaseStatus) error {
	release, err := s.GetRelease(ctx, guid)
	if err != nil {
		return err
	}

	if err := release.Machine().ToState(status); err != nil {
		return err
	}

	stmt := table.Release.
		UPDATE().
		SET(
			table.Release.Status.SET(sqlite.String(string(status))),
			table.Release.LastCheckedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().UTC().Format(timestampFormat))))).
		WHERE(table.Release.GUID.EQ(sqlite.String(guid)))

	_, err = stmt.ExecContext(ctx, s.q)
	return err
}
