package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dhairyapractice/Solo-leveling/internal/logger"
)

// Tx is the common contract for transactional units. Every engine operation
// commits its entity-flag write and its ledger write through a single Tx:
// either both land or neither does.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback rolls back a transaction and logs any error that isn't
// ErrTxClosed. Safe to defer alongside an explicit Commit.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
