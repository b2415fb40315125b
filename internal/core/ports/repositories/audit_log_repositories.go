package repositories

import (
	"context"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
)

// AuditLogReader defines read operations for the audit chain
type AuditLogReader interface {
	// FindChainHead returns the latest entry of the tenant, or nil for an empty chain.
	FindChainHead(ctx context.Context, tenantID string) (*domain.AuditLogEntry, error)

	// ListChain returns every entry of the tenant in chain order.
	ListChain(ctx context.Context, tenantID string) ([]domain.AuditLogEntry, error)
}

// AuditLogWriter defines write operations for the audit chain. There is no
// update or delete.
type AuditLogWriter interface {
	// LockTenantChain serializes appends for the tenant until the transaction ends.
	LockTenantChain(ctx context.Context, tenantID string) error

	// InsertEntry appends a sealed entry.
	InsertEntry(ctx context.Context, entry domain.AuditLogEntry) error
}

// AuditLogRepositoryFacade combines the audit log interfaces
type AuditLogRepositoryFacade interface {
	AuditLogReader
	AuditLogWriter
}
