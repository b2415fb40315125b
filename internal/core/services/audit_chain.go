package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
)

// auditService appends to and verifies the per-tenant audit hash chain.
type auditService struct {
	txManager portsrepo.TransactionManager
	now       func() time.Time
}

// AuditServiceOption configures the audit service.
type AuditServiceOption func(*auditService)

// WithAuditClock overrides the clock used for entry timestamps.
func WithAuditClock(now func() time.Time) AuditServiceOption {
	return func(s *auditService) {
		s.now = now
	}
}

// NewAuditService creates a new AuditSvcFacade.
func NewAuditService(txManager portsrepo.TransactionManager, opts ...AuditServiceOption) portssvc.AuditSvcFacade {
	s := &auditService{
		txManager: txManager,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Append links rec to the head of the tenant chain using the caller's
// transaction. The tenant chain is locked first so that concurrent writers
// queue behind each other instead of forking the chain.
func (s *auditService) Append(ctx context.Context, store portsrepo.Store, rec domain.AuditRecord) (*domain.AuditLogEntry, error) {
	if rec.TenantID == "" || rec.Model == "" || rec.RecordID == "" || rec.Action == "" {
		return nil, apperrors.NewValidationError("audit record requires tenant, model, record id and action")
	}

	logs := store.AuditLogs()
	if err := logs.LockTenantChain(ctx, rec.TenantID); err != nil {
		return nil, fmt.Errorf("lock audit chain: %w", err)
	}

	head, err := logs.FindChainHead(ctx, rec.TenantID)
	if err != nil {
		return nil, fmt.Errorf("read audit chain head: %w", err)
	}

	entry, err := domain.NewAuditLogEntry(uuid.NewString(), rec, domain.NextPointer(head), s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: build audit entry: %v", apperrors.ErrInternal, err)
	}

	if err := logs.InsertEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert audit entry: %w", err)
	}
	return &entry, nil
}

// Record appends rec in a serializable transaction of its own. It is meant for
// mutations that happen outside any posting transaction.
func (s *auditService) Record(ctx context.Context, rec domain.AuditRecord) (*domain.AuditLogEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var entry *domain.AuditLogEntry
	err := s.txManager.WithinSerializableTx(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		entry, err = s.Append(ctx, store, rec)
		return err
	})
	if err != nil {
		logger.Error("Failed to record audit entry", slog.String("tenant_id", rec.TenantID), slog.String("model", rec.Model), slog.String("record_id", rec.RecordID), slog.String("error", err.Error()))
		return nil, err
	}
	return entry, nil
}

// Verify walks the whole tenant chain. A broken chain is reported in the
// result, never repaired.
func (s *auditService) Verify(ctx context.Context, tenantID string) (*domain.VerificationReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if tenantID == "" {
		return nil, apperrors.NewValidationError("tenant id is required")
	}

	entries, err := s.txManager.Store().AuditLogs().ListChain(ctx, tenantID)
	if err != nil {
		logger.Error("Failed to load audit chain", slog.String("tenant_id", tenantID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("load audit chain: %w", err)
	}

	report, err := domain.VerifyChain(tenantID, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}

	if !report.Valid {
		logger.Warn("Audit chain verification failed",
			slog.String("tenant_id", tenantID),
			slog.String("entry_id", *report.FirstInvalidEntryID),
			slog.String("reason", report.Reason),
		)
	} else {
		logger.Info("Audit chain verified", slog.String("tenant_id", tenantID), slog.Int("entries", report.TotalEntries))
	}
	return &report, nil
}
