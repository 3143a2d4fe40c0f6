package sqlite

import (
	"context"
	"time"

	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/sqlite"
)

// CreateSyncRun records the start of a feed sync
func (s *SQLite) CreateSyncRun(ctx context.Context, run model.SyncRun) (int64, error) {
	insertColumns := table.SyncRun.MutableColumns.
		Except(table.SyncRun.FinishedAt)
	if run.StartedAt == nil {
		insertColumns = insertColumns.Except(table.SyncRun.StartedAt)
	}

	stmt := table.SyncRun.
		INSERT(insertColumns).
		MODEL(run)

	result, err := stmt.ExecContext(ctx, s.q)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// FinishSyncRun records the end of a feed sync and its final counters
func (s *SQLite) FinishSyncRun(ctx context.Context, run model.SyncRun) error {
	if run.FinishedAt == nil {
		now := time.Now().UTC()
		run.FinishedAt = &now
	}

	stmt := table.SyncRun.
		UPDATE(
			table.SyncRun.FinishedAt,
			table.SyncRun.Processed,
			table.SyncRun.NewCount,
			table.SyncRun.Upgraded,
			table.SyncRun.Ignored,
			table.SyncRun.Errors).
		MODEL(run).
		WHERE(table.SyncRun.RunID.EQ(sqlite.String(run.RunID)))

	_, err := stmt.ExecContext(ctx, s.q)
	return err
}

// ListSyncRuns lists the most recent sync runs, newest first
func (s *SQLite) ListSyncRuns(ctx context.Context, limit int64) ([]*model.SyncRun, error) {
	runs := make([]*model.SyncRun, 0)

	stmt := table.SyncRun.
		SELECT(table.SyncRun.AllColumns).
		FROM(table.SyncRun).
		ORDER_BY(table.SyncRun.StartedAt.DESC(), table.SyncRun.ID.DESC()).
		LIMIT(limit)

	err := stmt.QueryContext(ctx, s.q, &runs)
	return runs, err
}
