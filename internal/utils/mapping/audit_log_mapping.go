package mapping

import (
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/SscSPs/mma_ledger_core/internal/models"
)

// ToModelAuditLog converts a domain AuditLogEntry to a model AuditLog.
// Empty chain fields are stored as NULL.
func ToModelAuditLog(d domain.AuditLogEntry) models.AuditLog {
	m := models.AuditLog{
		AuditLogID:     d.AuditLogID,
		TenantID:       d.TenantID,
		EntityID:       d.EntityID,
		UserID:         d.UserID,
		Model:          d.Model,
		RecordID:       d.RecordID,
		Action:         string(d.Action),
		BeforeSnapshot: d.Before,
		AfterSnapshot:  d.After,
		CreatedAt:      d.CreatedAt,
	}
	if d.IntegrityHash != "" {
		hash := d.IntegrityHash
		m.IntegrityHash = &hash
	}
	if d.PreviousHash != "" {
		prev := d.PreviousHash
		m.PreviousHash = &prev
	}
	if d.SequenceNumber != 0 {
		seq := d.SequenceNumber
		m.SequenceNumber = &seq
	}
	return m
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLogEntry
func ToDomainAuditLog(m models.AuditLog) domain.AuditLogEntry {
	d := domain.AuditLogEntry{
		AuditLogID: m.AuditLogID,
		TenantID:   m.TenantID,
		EntityID:   m.EntityID,
		UserID:     m.UserID,
		Model:      m.Model,
		RecordID:   m.RecordID,
		Action:     domain.AuditAction(m.Action),
		Before:     m.BeforeSnapshot,
		After:      m.AfterSnapshot,
		CreatedAt:  m.CreatedAt,
	}
	if m.IntegrityHash != nil {
		d.IntegrityHash = *m.IntegrityHash
	}
	if m.PreviousHash != nil {
		d.PreviousHash = *m.PreviousHash
	}
	if m.SequenceNumber != nil {
		d.SequenceNumber = *m.SequenceNumber
	}
	return d
}

// ToDomainAuditLogSlice converts a slice of model AuditLogs to a slice of domain AuditLogEntries
func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLogEntry {
	ds := make([]domain.AuditLogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
