package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
)

// FiscalPeriodReader defines read operations for fiscal calendars and periods
type FiscalPeriodReader interface {
	// FindPeriodCoveringDate returns the entity's period containing date, or nil
	// when no calendar covers it.
	FindPeriodCoveringDate(ctx context.Context, entityID string, date time.Time) (*domain.FiscalPeriod, error)

	// FindPeriodForUpdate locks and returns a period of the tenant.
	FindPeriodForUpdate(ctx context.Context, tenantID, periodID string) (*domain.FiscalPeriod, error)

	// ListCalendarPeriods returns every period of a calendar ordered by number.
	ListCalendarPeriods(ctx context.Context, calendarID string) ([]domain.FiscalPeriod, error)

	// CalendarExists reports whether the entity already has a calendar for the year.
	CalendarExists(ctx context.Context, entityID string, fiscalYear int) (bool, error)
}

// FiscalPeriodWriter defines write operations for fiscal calendars and periods
type FiscalPeriodWriter interface {
	// SaveCalendar persists a calendar and its periods.
	SaveCalendar(ctx context.Context, calendar domain.FiscalCalendar) error

	// UpdatePeriodStatus persists the status and lock/close markers of a period.
	UpdatePeriodStatus(ctx context.Context, period domain.FiscalPeriod) error
}

// FiscalPeriodRepositoryFacade combines the fiscal period interfaces
type FiscalPeriodRepositoryFacade interface {
	FiscalPeriodReader
	FiscalPeriodWriter
}
