package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/utils/retry"
)

// NewRepositoryProvider wires the Postgres persistence layer. Every repository
// is reached through the transaction manager's Store.
func NewRepositoryProvider(dbPool *pgxpool.Pool, policy retry.Policy) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager: NewPgxTransactionManager(dbPool, policy),
	}
}
