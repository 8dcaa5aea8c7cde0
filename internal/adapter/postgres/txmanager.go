package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner starts transactions. *pgxpool.Pool and pgxmock pools implement it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// Nested calls are not supported: calling RunAndRollback inside a callback
// starts a second independent transaction.
type TxManager struct {
	db Beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunAndRollback executes fn within a transaction that is always rolled
// back, leaving no trace in the database. It returns the error from fn.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunAndRollback(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	fnErr := fn(withTx(ctx, tx))

	if rbErr := tx.Rollback(ctx); rbErr != nil {
		if fnErr == nil {
			return fmt.Errorf("rollback transaction: %w", rbErr)
		}
		return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, fnErr)
	}

	return fnErr
}
