package services

import (
	"context"
	"time"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
)

// FiscalGate answers whether a posting may land on a date. It runs against
// the store of the caller's transaction.
type FiscalGate interface {
	CheckPostingDate(ctx context.Context, store portsrepo.Store, entityID string, date time.Time) error
}

// FiscalPeriodSvcFacade manages fiscal calendars and period transitions.
type FiscalPeriodSvcFacade interface {
	FiscalGate

	// CreateCalendar sets up twelve monthly OPEN periods for an entity year.
	CreateCalendar(ctx context.Context, tenantID string, req dto.CreateFiscalCalendarRequest, userID string) (*domain.FiscalCalendar, error)

	// LockPeriod moves an OPEN period to LOCKED.
	LockPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error)

	// ClosePeriod moves a LOCKED period to CLOSED once all earlier periods are closed.
	ClosePeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error)

	// ReopenPeriod moves a LOCKED or CLOSED period back to OPEN.
	ReopenPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error)
}
