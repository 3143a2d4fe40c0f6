package sqlite

import (
	"context"

	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/sqlite"
)

// SaveShow stores a known show keyed by normalized name. Identifier columns
// only ever gain information on conflict, a nil id never clears a stored one.
func (s *SQLite) SaveShow(ctx context.Context, show model.Show) (int64, error) {
	insertColumns := table.Show.MutableColumns
	if show.CreatedAt == nil {
		insertColumns = insertColumns.Except(table.Show.CreatedAt)
	}

	stmt := table.Show.
		INSERT(insertColumns).
		MODEL(show).
		ON_CONFLICT(table.Show.NormalizedName).
		DO_UPDATE(sqlite.SET(
			table.Show.Name.SET(table.Show.EXCLUDED.Name),
			table.Show.TvdbID.SET(sqlite.IntExp(sqlite.COALESCE(table.Show.EXCLUDED.TvdbID, table.Show.TvdbID))),
			table.Show.TmdbID.SET(sqlite.IntExp(sqlite.COALESCE(table.Show.EXCLUDED.TmdbID, table.Show.TmdbID))),
		))

	result, err := stmt.ExecContext(ctx, s.q)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// ListShows lists the known shows
func (s *SQLite) ListShows(ctx context.Context) ([]*model.Show, error) {
	shows := make([]*model.Show, 0)

	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		ORDER_BY(table.Show.Name.ASC())

	err := stmt.QueryContext(ctx, s.q, &shows)
	return shows, err
}
