package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/models"
	"github.com/SscSPs/mma_ledger_core/internal/utils/mapping"
)

// PgxSourceTransactionRepository reads bank-feed transactions and records their postings.
type PgxSourceTransactionRepository struct {
	BaseRepository
}

var _ portsrepo.SourceTransactionRepositoryFacade = (*PgxSourceTransactionRepository)(nil)

// Rows are locked in bank_transactions only; the bank account mapping is read
// through the join.
const sourceTransactionSelect = `
	SELECT t.transaction_id, t.tenant_id, t.bank_account_id, ba.ledger_account_id,
	       t.transaction_date, t.description, t.amount, t.currency,
	       t.journal_entry_id, t.deleted_at
	FROM bank_transactions t
	JOIN bank_accounts ba ON ba.bank_account_id = t.bank_account_id
`

// FindForUpdate locks and returns one non-deleted transaction of the tenant.
func (r *PgxSourceTransactionRepository) FindForUpdate(ctx context.Context, tenantID, transactionID string) (*domain.SourceTransaction, error) {
	query := sourceTransactionSelect + `
		WHERE t.tenant_id = $1 AND t.transaction_id = $2 AND t.deleted_at IS NULL
		FOR UPDATE OF t;
	`
	rows, err := r.DB.Query(ctx, query, tenantID, transactionID)
	if err != nil {
		return nil, queryError("failed to lock source transaction "+transactionID, err)
	}
	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SourceTransaction])
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeSourceTransactionNotFound, "source transaction not found").
				WithDetail("transactionId", transactionID)
		}
		return nil, queryError("failed to scan source transaction "+transactionID, err)
	}

	txn := mapping.ToDomainSourceTransaction(model)
	return &txn, nil
}

// FindManyForUpdate locks and returns the non-deleted transactions of the tenant among ids.
func (r *PgxSourceTransactionRepository) FindManyForUpdate(ctx context.Context, tenantID string, transactionIDs []string) ([]domain.SourceTransaction, error) {
	query := sourceTransactionSelect + `
		WHERE t.tenant_id = $1 AND t.transaction_id = ANY($2) AND t.deleted_at IS NULL
		ORDER BY t.transaction_id
		FOR UPDATE OF t;
	`
	rows, err := r.DB.Query(ctx, query, tenantID, transactionIDs)
	if err != nil {
		return nil, queryError("failed to lock source transactions", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SourceTransaction])
	if err != nil {
		return nil, queryError("failed to scan source transactions", err)
	}

	txns := make([]domain.SourceTransaction, len(found))
	for i, m := range found {
		txns[i] = mapping.ToDomainSourceTransaction(m)
	}
	return txns, nil
}

// ListSplitChildren returns the split records of a transaction in creation order.
func (r *PgxSourceTransactionRepository) ListSplitChildren(ctx context.Context, transactionID string) ([]domain.SplitChild, error) {
	query := `
		SELECT split_id, transaction_id, amount, COALESCE(memo, '') AS memo, ledger_account_id, created_at
		FROM bank_transaction_splits
		WHERE transaction_id = $1
		ORDER BY created_at, split_id;
	`
	rows, err := r.DB.Query(ctx, query, transactionID)
	if err != nil {
		return nil, queryError("failed to list split records of "+transactionID, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SplitChild])
	if err != nil {
		return nil, queryError("failed to scan split records of "+transactionID, err)
	}

	children := make([]domain.SplitChild, len(found))
	for i, m := range found {
		children[i] = mapping.ToDomainSplitChild(m)
	}
	return children, nil
}

// LinkJournalEntry sets journal_entry_id only while it is still NULL, so a
// concurrent posting can never overwrite an existing link.
func (r *PgxSourceTransactionRepository) LinkJournalEntry(ctx context.Context, tenantID, transactionID, entryID string) (bool, error) {
	query := `
		UPDATE bank_transactions
		SET journal_entry_id = $3
		WHERE tenant_id = $1 AND transaction_id = $2 AND journal_entry_id IS NULL AND deleted_at IS NULL;
	`
	tag, err := r.DB.Exec(ctx, query, tenantID, transactionID, entryID)
	if err != nil {
		return false, queryError("failed to link source transaction "+transactionID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// AnnotateSplitChild records the ledger account a split was posted to.
func (r *PgxSourceTransactionRepository) AnnotateSplitChild(ctx context.Context, splitID, ledgerAccountID string) error {
	query := `UPDATE bank_transaction_splits SET ledger_account_id = $2 WHERE split_id = $1;`
	tag, err := r.DB.Exec(ctx, query, splitID, ledgerAccountID)
	if err != nil {
		return queryError("failed to annotate split record "+splitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("", "split record not found").WithDetail("splitId", splitID)
	}
	return nil
}
