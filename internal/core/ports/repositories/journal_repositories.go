package repositories

import (
	"context"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry and its lines, scoped to the tenant.
	FindJournalEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries returns a page of the entity's entries without lines,
	// newest first, and the token of the next page if there is one.
	ListJournalEntries(ctx context.Context, tenantID, entityID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// NextEntrySequence returns the highest entry sequence of the entity plus one.
	NextEntrySequence(ctx context.Context, entityID string) (int64, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveJournalEntry persists an entry together with all of its lines.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
