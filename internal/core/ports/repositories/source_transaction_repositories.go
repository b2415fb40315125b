package repositories

import (
	"context"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
)

// SourceTransactionReader defines read operations for bank-feed transactions
type SourceTransactionReader interface {
	// FindForUpdate locks and returns a non-deleted transaction of the tenant.
	// It returns an apperrors not-found error when there is none.
	FindForUpdate(ctx context.Context, tenantID, transactionID string) (*domain.SourceTransaction, error)

	// FindManyForUpdate locks and returns the non-deleted transactions of the
	// tenant among ids. Missing ids are simply absent from the result.
	FindManyForUpdate(ctx context.Context, tenantID string, transactionIDs []string) ([]domain.SourceTransaction, error)

	// ListSplitChildren returns the split records of a transaction in creation order.
	ListSplitChildren(ctx context.Context, transactionID string) ([]domain.SplitChild, error)
}

// SourceTransactionWriter defines write operations for bank-feed transactions
type SourceTransactionWriter interface {
	// LinkJournalEntry sets the journal entry of a transaction that has none.
	// It reports false when the transaction was already linked.
	LinkJournalEntry(ctx context.Context, tenantID, transactionID, entryID string) (bool, error)

	// AnnotateSplitChild records the ledger account a split was posted to.
	AnnotateSplitChild(ctx context.Context, splitID, ledgerAccountID string) error
}

// SourceTransactionRepositoryFacade combines the source transaction interfaces
type SourceTransactionRepositoryFacade interface {
	SourceTransactionReader
	SourceTransactionWriter
}
