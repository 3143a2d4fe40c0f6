package sqlite

import (
	"context"
	"database/sql"

	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/storage"
	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db *sql.DB
	// statement target: the database itself, or an open transaction for a
	// WithTx view
	q qrm.DB
}

// New opens a sqlite database at the given path and applies pending
// migrations
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers anyway, one pooled connection keeps
	// in-memory databases coherent too
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, q: db}, nil
}

// WithTx runs fn against a transactional view of the store. Nested calls
// reuse the already-open transaction.
func (s *SQLite) WithTx(ctx context.Context, fn func(storage.Storage) error) error {
	log := logger.FromCtx(ctx)

	if _, ok := s.q.(*sql.Tx); ok {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return err
	}

	if err := fn(&SQLite{db: s.db, q: tx}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
