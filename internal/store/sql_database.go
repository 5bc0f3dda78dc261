package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/migrations"
)

// DB wraps the sql.DB connection handle together with the store logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// dbtx is the subset of database/sql operations shared by *sql.DB and
// *sql.Tx. Repository methods run against a dbtx so the Storages facade can
// compose them inside a single transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn inside a transaction. A crash or error mid-write rolls the
// whole write back, so a mutation and its derived queue item are committed
// together or not at all.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}
