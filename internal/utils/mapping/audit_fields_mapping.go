package mapping

import (
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/SscSPs/mma_ledger_core/internal/models"
)

// The two AuditFields types differ only in struct tags, so they convert directly.

func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields(d)
}

func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields(m)
}
