package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/models"
	"github.com/SscSPs/mma_ledger_core/internal/utils/mapping"
	"github.com/SscSPs/mma_ledger_core/internal/utils/pagination"
)

// PgxJournalRepository stores posted journal entries and their lines.
type PgxJournalRepository struct {
	BaseRepository
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalEntryColumns = `
	entry_id, tenant_id, entity_id, entry_sequence, entry_number, transaction_date,
	memo, source, source_transaction_id, source_snapshot, status,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveJournalEntry inserts the entry header and queues every line in one batch.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	modelEntry := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, tenant_id, entity_id, entry_sequence, entry_number, transaction_date,
			memo, source, source_transaction_id, source_snapshot, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.DB.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.TenantID,
		modelEntry.EntityID,
		modelEntry.EntrySequence,
		modelEntry.EntryNumber,
		modelEntry.TransactionDate,
		modelEntry.Memo,
		modelEntry.Source,
		modelEntry.SourceTransactionID,
		modelEntry.SourceSnapshot,
		modelEntry.Status,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return queryError("failed to insert journal entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (
			line_id, entry_id, line_number, account_id, debit, credit, memo,
			original_currency, exchange_rate, base_debit, base_credit
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range entry.Lines {
		modelLine := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.LineNumber,
			modelLine.AccountID,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Memo,
			modelLine.OriginalCurrency,
			modelLine.ExchangeRate,
			modelLine.BaseDebit,
			modelLine.BaseCredit,
		)
	}

	// Close the batch results to surface the error of any queued insert
	if err := r.DB.SendBatch(ctx, batch).Close(); err != nil {
		return queryError("failed to insert lines of journal entry "+modelEntry.EntryID, err)
	}
	return nil
}

// NextEntrySequence returns the highest entry sequence of the entity plus one.
// Two writers may read the same value; the unique (entity_id, entry_sequence)
// constraint rejects the second insert as retryable.
func (r *PgxJournalRepository) NextEntrySequence(ctx context.Context, entityID string) (int64, error) {
	var next int64
	err := r.DB.QueryRow(ctx, `SELECT COALESCE(MAX(entry_sequence), 0) + 1 FROM journal_entries WHERE entity_id = $1;`, entityID).Scan(&next)
	if err != nil {
		return 0, queryError("failed to read entry sequence of entity "+entityID, err)
	}
	return next, nil
}

// FindJournalEntryByID retrieves an entry of the tenant with its lines in line order.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entryQuery := `SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND entry_id = $2;
	`
	rows, err := r.DB.Query(ctx, entryQuery, tenantID, entryID)
	if err != nil {
		return nil, queryError("failed to query journal entry "+entryID, err)
	}
	modelEntry, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeJournalEntryNotFound, "journal entry not found").
				WithDetail("entryId", entryID)
		}
		return nil, queryError("failed to scan journal entry "+entryID, err)
	}

	lineQuery := `
		SELECT line_id, entry_id, line_number, account_id, debit, credit, COALESCE(memo, '') AS memo,
		       original_currency, exchange_rate, base_debit, base_credit
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err = r.DB.Query(ctx, lineQuery, entryID)
	if err != nil {
		return nil, queryError("failed to query lines of journal entry "+entryID, err)
	}
	modelLines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, queryError("failed to scan lines of journal entry "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(modelEntry, modelLines)
	return &entry, nil
}

// ListJournalEntries retrieves a page of the entity's entries using
// token-based pagination on the entry sequence. Lines are not loaded.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, tenantID, entityID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	// One extra row tells whether a next page exists
	fetchLimit := limit + 1

	args := []any{tenantID, entityID}
	cursorClause := ""
	if nextToken != nil && *nextToken != "" {
		tokenEntityID, lastSequence, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken").WithDetail("nextToken", *nextToken)
		}
		if tokenEntityID != entityID {
			return nil, nil, apperrors.NewValidationError("nextToken belongs to another entity").WithDetail("nextToken", *nextToken)
		}
		args = append(args, lastSequence)
		cursorClause = fmt.Sprintf(" AND entry_sequence < $%d", len(args))
	}
	args = append(args, fetchLimit)

	query := `SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE tenant_id = $1 AND entity_id = $2` + cursorClause + `
		ORDER BY entry_sequence DESC
		LIMIT ` + fmt.Sprintf("$%d", len(args)) + `;`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, queryError("failed to list journal entries of entity "+entityID, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, queryError("failed to scan journal entries of entity "+entityID, err)
	}

	var next *string
	if len(found) > limit {
		found = found[:limit]
		token := pagination.EncodeToken(entityID, found[limit-1].EntrySequence)
		next = &token
	}

	entries := make([]domain.JournalEntry, len(found))
	for i, m := range found {
		entries[i] = mapping.ToDomainJournalEntry(m, nil)
	}
	return entries, next, nil
}
