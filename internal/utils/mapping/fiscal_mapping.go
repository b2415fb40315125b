package mapping

import (
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/SscSPs/mma_ledger_core/internal/models"
)

// ToModelFiscalCalendar converts a domain FiscalCalendar to a model FiscalCalendar
func ToModelFiscalCalendar(d domain.FiscalCalendar) models.FiscalCalendar {
	return models.FiscalCalendar{
		CalendarID:  d.CalendarID,
		TenantID:    d.TenantID,
		EntityID:    d.EntityID,
		FiscalYear:  d.FiscalYear,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelFiscalPeriod converts a domain FiscalPeriod to a model FiscalPeriod
func ToModelFiscalPeriod(d domain.FiscalPeriod) models.FiscalPeriod {
	return models.FiscalPeriod{
		PeriodID:     d.PeriodID,
		CalendarID:   d.CalendarID,
		TenantID:     d.TenantID,
		EntityID:     d.EntityID,
		PeriodNumber: d.PeriodNumber,
		Name:         d.Name,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Status:       string(d.Status),
		LockedAt:     d.LockedAt,
		LockedBy:     d.LockedBy,
		ClosedAt:     d.ClosedAt,
		ClosedBy:     d.ClosedBy,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFiscalPeriod converts a model FiscalPeriod to a domain FiscalPeriod
func ToDomainFiscalPeriod(m models.FiscalPeriod) domain.FiscalPeriod {
	return domain.FiscalPeriod{
		PeriodID:     m.PeriodID,
		CalendarID:   m.CalendarID,
		TenantID:     m.TenantID,
		EntityID:     m.EntityID,
		PeriodNumber: m.PeriodNumber,
		Name:         m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       domain.PeriodStatus(m.Status),
		LockedAt:     m.LockedAt,
		LockedBy:     m.LockedBy,
		ClosedAt:     m.ClosedAt,
		ClosedBy:     m.ClosedBy,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFiscalPeriodSlice converts a slice of model FiscalPeriods to a slice of domain FiscalPeriods
func ToDomainFiscalPeriodSlice(ms []models.FiscalPeriod) []domain.FiscalPeriod {
	ds := make([]domain.FiscalPeriod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFiscalPeriod(m)
	}
	return ds
}
