package models

import (
	"encoding/json"
	"time"
)

// AuditLog is a row of audit_logs. The chain columns are NULL on rows written
// before hashing was introduced.
type AuditLog struct {
	AuditLogID     string          `db:"audit_log_id"`
	TenantID       string          `db:"tenant_id"`
	EntityID       *string         `db:"entity_id"`
	UserID         string          `db:"user_id"`
	Model          string          `db:"model"`
	RecordID       string          `db:"record_id"`
	Action         string          `db:"action"`
	BeforeSnapshot json.RawMessage `db:"before_snapshot"`
	AfterSnapshot  json.RawMessage `db:"after_snapshot"`
	IntegrityHash  *string         `db:"integrity_hash"`
	PreviousHash   *string         `db:"previous_hash"`
	SequenceNumber *int64          `db:"sequence_number"`
	CreatedAt      time.Time       `db:"created_at"`
}
