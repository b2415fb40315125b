package repositories

import (
	"context"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
)

// LedgerAccountReader reads the chart of accounts. The core never writes it.
type LedgerAccountReader interface {
	// FindAccountByID retrieves an account owned by one of the tenant's entities.
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.LedgerAccount, error)

	// FindAccountsByIDs retrieves the tenant's accounts keyed by id. Unknown ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.LedgerAccount, error)

	// FindEntityByID retrieves a ledger entity owned by the tenant.
	FindEntityByID(ctx context.Context, tenantID, entityID string) (*domain.Entity, error)
}
