package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/groupbuy-backend/pkg/txhook"
)

// TxBeginner starts transactions. Satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls are NOT supported: calling RunInTx inside a RunInTx
// callback will create a second independent transaction, which is a bug.
//
// Each transaction is also a txhook unit of work: hooks registered via
// txhook.Register inside fn run after a successful commit and are
// discarded on rollback.
type TxManager struct {
	db TxBeginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db TxBeginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits, then runs post-commit hooks in registration order.
// On error from fn: rolls back, drops hooks and returns the error.
// On panic from fn: rolls back, drops hooks and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx, hooks := txhook.Begin(withTx(ctx, tx))

	defer func() {
		if r := recover(); r != nil {
			hooks.Discard()
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		hooks.Discard()
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		hooks.Discard()
		return fmt.Errorf("commit transaction: %w", err)
	}

	// Hooks outlive the caller's cancellation; the data is already committed.
	hooks.Run(context.WithoutCancel(ctx))

	return nil
}
