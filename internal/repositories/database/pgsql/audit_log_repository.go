package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/models"
	"github.com/SscSPs/mma_ledger_core/internal/utils/mapping"
)

// PgxAuditLogRepository appends to and reads the per-tenant audit chain.
// audit_logs is append-only; a trigger rejects UPDATE and DELETE.
type PgxAuditLogRepository struct {
	BaseRepository
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

const auditLogColumns = `
	audit_log_id, tenant_id, entity_id, user_id, model, record_id, action,
	before_snapshot, after_snapshot, integrity_hash, previous_hash, sequence_number, created_at
`

// LockTenantChain takes a transaction scoped advisory lock keyed by tenant.
func (r *PgxAuditLogRepository) LockTenantChain(ctx context.Context, tenantID string) error {
	if _, err := r.DB.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, tenantID); err != nil {
		return queryError("failed to lock audit chain", err)
	}
	return nil
}

// FindChainHead returns the latest entry of the tenant, or nil for an empty
// chain. Legacy rows without a sequence sort before hashed ones.
func (r *PgxAuditLogRepository) FindChainHead(ctx context.Context, tenantID string) (*domain.AuditLogEntry, error) {
	query := `SELECT ` + auditLogColumns + `
		FROM audit_logs
		WHERE tenant_id = $1
		ORDER BY sequence_number DESC NULLS LAST, created_at DESC, audit_log_id DESC
		LIMIT 1;
	`
	rows, err := r.DB.Query(ctx, query, tenantID)
	if err != nil {
		return nil, queryError("failed to query audit chain head", err)
	}
	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AuditLog])
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, queryError("failed to scan audit chain head", err)
	}

	head := mapping.ToDomainAuditLog(model)
	return &head, nil
}

// ListChain returns every entry of the tenant in chain order.
func (r *PgxAuditLogRepository) ListChain(ctx context.Context, tenantID string) ([]domain.AuditLogEntry, error) {
	query := `SELECT ` + auditLogColumns + `
		FROM audit_logs
		WHERE tenant_id = $1
		ORDER BY sequence_number ASC NULLS FIRST, created_at ASC, audit_log_id ASC;
	`
	rows, err := r.DB.Query(ctx, query, tenantID)
	if err != nil {
		return nil, queryError("failed to list audit chain", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AuditLog])
	if err != nil {
		return nil, queryError("failed to scan audit chain", err)
	}
	return mapping.ToDomainAuditLogSlice(found), nil
}

// InsertEntry appends a sealed entry.
func (r *PgxAuditLogRepository) InsertEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	m := mapping.ToModelAuditLog(entry)
	_, err := r.DB.Exec(ctx, `
		INSERT INTO audit_logs (`+auditLogColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.AuditLogID, m.TenantID, m.EntityID, m.UserID, m.Model, m.RecordID, m.Action,
		m.BeforeSnapshot, m.AfterSnapshot, m.IntegrityHash, m.PreviousHash, m.SequenceNumber, m.CreatedAt,
	)
	if err != nil {
		return queryError("failed to insert audit entry "+m.AuditLogID, err)
	}
	return nil
}
