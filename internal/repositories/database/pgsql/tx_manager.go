package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/SscSPs/mma_ledger_core/internal/utils/retry"
)

// PgxTransactionManager runs units of work in SERIALIZABLE transactions and
// retries them when Postgres reports a serialization conflict.
type PgxTransactionManager struct {
	pool   *pgxpool.Pool
	policy retry.Policy
}

// NewPgxTransactionManager creates a transaction manager over pool.
func NewPgxTransactionManager(pool *pgxpool.Pool, policy retry.Policy) *PgxTransactionManager {
	return &PgxTransactionManager{pool: pool, policy: policy}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// WithinSerializableTx runs fn in a fresh transaction per attempt. Only
// retryable failures are attempted again; business errors return at once.
func (m *PgxTransactionManager) WithinSerializableTx(ctx context.Context, fn portsrepo.TxFunc) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := retry.Do(ctx, m.policy, apperrors.IsRetryable, func(attempt int) error {
		if attempt > 0 {
			logger.Warn("Retrying serializable transaction", slog.Int("attempt", attempt+1))
		}
		return m.runOnce(ctx, fn)
	})
	if err != nil && apperrors.IsRetryable(err) && !errors.Is(err, apperrors.ErrRetryable) {
		return apperrors.NewRetryableError(err)
	}
	return err
}

func (m *PgxTransactionManager) runOnce(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return queryError("failed to begin transaction", err)
	}
	// Will be ignored if transaction is committed successfully
	defer func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(ctx, newStore(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return queryError("failed to commit transaction", err)
	}
	return nil
}

// Store returns repositories bound to the pool.
func (m *PgxTransactionManager) Store() portsrepo.Store {
	return newStore(m.pool)
}
