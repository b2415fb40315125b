package services

import (
	"context"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
)

// PostingWriterSvc turns source transactions into posted journal entries.
type PostingWriterSvc interface {
	// PostTransaction posts one source transaction against one target account.
	PostTransaction(ctx context.Context, tenantID string, req dto.PostTransactionRequest, userID string) (*domain.PostingResult, error)

	// PostBulk posts every listed transaction against a shared target account, all or nothing.
	PostBulk(ctx context.Context, tenantID string, req dto.PostBulkRequest, userID string) ([]domain.PostingResult, error)

	// PostSplit posts one source transaction across several target accounts.
	PostSplit(ctx context.Context, tenantID string, req dto.PostSplitRequest, userID string) (*domain.PostingResult, error)
}

// PostingReaderSvc reads posted entries.
type PostingReaderSvc interface {
	// GetEntry retrieves a posted entry with its lines.
	GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListEntries pages through the posted entries of one of the tenant's entities.
	ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// PostingSvcFacade combines all posting service interfaces
type PostingSvcFacade interface {
	PostingWriterSvc
	PostingReaderSvc
}
