package repositories

import (
	"context"
)

// Store gives access to every repository bound to one database handle. Inside
// a unit of work all repositories share the same transaction.
type Store interface {
	SourceTransactions() SourceTransactionRepositoryFacade
	LedgerAccounts() LedgerAccountReader
	Journals() JournalRepositoryFacade
	FiscalPeriods() FiscalPeriodRepositoryFacade
	ExchangeRates() ExchangeRateReader
	AuditLogs() AuditLogRepositoryFacade
}

// TxFunc is a unit of work executed against a transactional Store.
type TxFunc func(ctx context.Context, store Store) error

// TransactionManager runs units of work under serializable isolation.
type TransactionManager interface {
	// WithinSerializableTx runs fn inside one SERIALIZABLE transaction and
	// commits when fn returns nil. Serialization failures are retried with
	// backoff; fn must therefore be safe to run more than once.
	WithinSerializableTx(ctx context.Context, fn TxFunc) error

	// Store returns repositories bound to the pool, outside any transaction.
	Store() Store
}
