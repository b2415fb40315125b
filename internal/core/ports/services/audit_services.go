package services

import (
	"context"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
)

// AuditAppender appends to a tenant chain inside the caller's transaction.
type AuditAppender interface {
	Append(ctx context.Context, store portsrepo.Store, rec domain.AuditRecord) (*domain.AuditLogEntry, error)
}

// AuditSvcFacade records and verifies tenant audit chains.
type AuditSvcFacade interface {
	AuditAppender

	// Record appends rec in a transaction of its own.
	Record(ctx context.Context, rec domain.AuditRecord) (*domain.AuditLogEntry, error)

	// Verify walks the tenant chain and reports the first broken link.
	Verify(ctx context.Context, tenantID string) (*domain.VerificationReport, error)
}
