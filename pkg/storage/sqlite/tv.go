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

// UpsertTvRelease stores a TV release keyed by guid
func (s *SQLite) UpsertTvRelease(ctx context.Context, release storage.TvRelease) (int64, error) {
	insertColumns := table.TvRelease.MutableColumns
	if release.CreatedAt == nil {
		insertColumns = insertColumns.Except(table.TvRelease.CreatedAt)
	}

	stmt := table.TvRelease.
		INSERT(insertColumns).
		MODEL(release.TvRelease).
		ON_CONFLICT(table.TvRelease.GUID).
		DO_UPDATE(sqlite.SET(
			table.TvRelease.Title.SET(table.TvRelease.EXCLUDED.Title),
			table.TvRelease.ShowName.SET(table.TvRelease.EXCLUDED.ShowName),
			table.TvRelease.Season.SET(table.TvRelease.EXCLUDED.Season),
			table.TvRelease.TvdbID.SET(table.TvRelease.EXCLUDED.TvdbID),
			table.TvRelease.TvdbIDManual.SET(table.TvRelease.EXCLUDED.TvdbIDManual),
			table.TvRelease.TmdbID.SET(table.TvRelease.EXCLUDED.TmdbID),
			table.TvRelease.TmdbIDManual.SET(table.TvRelease.EXCLUDED.TmdbIDManual),
			table.TvRelease.ImdbID.SET(table.TvRelease.EXCLUDED.ImdbID),
			table.TvRelease.Status.SET(table.TvRelease.EXCLUDED.Status),
			table.TvRelease.LastCheckedAt.SET(table.TvRelease.EXCLUDED.LastCheckedAt),
		))

	result, err := stmt.ExecContext(ctx, s.q)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// GetTvRelease fetches a TV release by guid
func (s *SQLite) GetTvRelease(ctx context.Context, guid string) (*storage.TvRelease, error) {
	stmt := table.TvRelease.
		SELECT(table.TvRelease.AllColumns).
		FROM(table.TvRelease).
		WHERE(table.TvRelease.GUID.EQ(sqlite.String(guid)))

	release := new(storage.TvRelease)
	err := stmt.QueryContext(ctx, s.q, release)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lookup tv release: %w", err)
	}

	return release, nil
}

// ListTvReleases lists stored TV releases
func (s *SQLite) ListTvReleases(ctx context.Context, where ...sqlite.BoolExpression) ([]*storage.TvRelease, error) {
	releases := make([]*storage.TvRelease, 0)

	stmt := table.TvRelease.
		SELECT(table.TvRelease.AllColumns).
		FROM(table.TvRelease).
		ORDER_BY(table.TvRelease.ID.ASC())
	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	err := stmt.QueryContext(ctx, s.q, &releases)
	return releases, err
}

// UpdateTvReleaseStatus transitions a TV release to the given status
func (s *SQLite) UpdateTvReleaseStatus(ctx context.Context, guid string, status storage.TvStatus) error {
	release, err := s.GetTvRelease(ctx, guid)
	if err != nil {
		return err
	}

	if err := release.Machine().ToState(status); err != nil {
		return err
	}

	stmt := table.TvRelease.
		UPDATE().
		SET(
			table.TvRelease.Status.SET(sqlite.String(string(status))),
			table.TvRelease.LastCheckedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().UTC().Format(timestampFormat))))).
		WHERE(table.TvRelease.GUID.EQ(sqlite.String(guid)))

	_, err = stmt.ExecContext(ctx, s.q)
	return err
}
