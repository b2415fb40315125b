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

// PgxLedgerAccountRepository reads the chart of accounts and ledger entities.
type PgxLedgerAccountRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerAccountReader = (*PgxLedgerAccountRepository)(nil)

// Accounts are tenant scoped through their owning entity.
const ledgerAccountSelect = `
	SELECT a.account_id, a.entity_id, a.code, a.name, a.classification, a.is_active
	FROM ledger_accounts a
	JOIN entities e ON e.entity_id = a.entity_id
`

// FindAccountByID retrieves an account owned by one of the tenant's entities.
func (r *PgxLedgerAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.LedgerAccount, error) {
	rows, err := r.DB.Query(ctx, ledgerAccountSelect+` WHERE e.tenant_id = $1 AND a.account_id = $2;`, tenantID, accountID)
	if err != nil {
		return nil, queryError("failed to query ledger account "+accountID, err)
	}
	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.LedgerAccount])
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeAccountNotFound, "ledger account not found").
				WithDetail("accountId", accountID)
		}
		return nil, queryError("failed to scan ledger account "+accountID, err)
	}

	account := mapping.ToDomainLedgerAccount(model)
	return &account, nil
}

// FindAccountsByIDs retrieves the tenant's accounts keyed by id.
func (r *PgxLedgerAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.LedgerAccount, error) {
	result := make(map[string]domain.LedgerAccount, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	rows, err := r.DB.Query(ctx, ledgerAccountSelect+` WHERE e.tenant_id = $1 AND a.account_id = ANY($2);`, tenantID, accountIDs)
	if err != nil {
		return nil, queryError("failed to query ledger accounts", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerAccount])
	if err != nil {
		return nil, queryError("failed to scan ledger accounts", err)
	}

	for _, m := range found {
		result[m.AccountID] = mapping.ToDomainLedgerAccount(m)
	}
	return result, nil
}

// FindEntityByID retrieves a ledger entity owned by the tenant.
func (r *PgxLedgerAccountRepository) FindEntityByID(ctx context.Context, tenantID, entityID string) (*domain.Entity, error) {
	query := `
		SELECT entity_id, tenant_id, name, functional_currency
		FROM entities
		WHERE tenant_id = $1 AND entity_id = $2;
	`
	rows, err := r.DB.Query(ctx, query, tenantID, entityID)
	if err != nil {
		return nil, queryError("failed to query entity "+entityID, err)
	}
	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Entity])
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeEntityNotFound, "entity not found").
				WithDetail("entityId", entityID)
		}
		return nil, queryError("failed to scan entity "+entityID, err)
	}

	entity := mapping.ToDomainEntity(model)
	return &entity, nil
}
