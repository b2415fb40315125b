package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
)

// fiscalPeriodService gates postings by fiscal period and drives period transitions.
type fiscalPeriodService struct {
	txManager portsrepo.TransactionManager
	audit     portssvc.AuditAppender
	now       func() time.Time
}

// FiscalServiceOption configures the fiscal period service.
type FiscalServiceOption func(*fiscalPeriodService)

// WithFiscalClock overrides the clock used for transition timestamps.
func WithFiscalClock(now func() time.Time) FiscalServiceOption {
	return func(s *fiscalPeriodService) {
		s.now = now
	}
}

// NewFiscalPeriodService creates a new FiscalPeriodSvcFacade.
func NewFiscalPeriodService(txManager portsrepo.TransactionManager, audit portssvc.AuditAppender, opts ...FiscalServiceOption) portssvc.FiscalPeriodSvcFacade {
	s := &fiscalPeriodService{
		txManager: txManager,
		audit:     audit,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)

// CheckPostingDate allows a posting when no period covers date or the covering
// period is OPEN. It must run on the store of the posting transaction.
func (s *fiscalPeriodService) CheckPostingDate(ctx context.Context, store portsrepo.Store, entityID string, date time.Time) error {
	period, err := store.FiscalPeriods().FindPeriodCoveringDate(ctx, entityID, date)
	if err != nil {
		return fmt.Errorf("find fiscal period: %w", err)
	}
	if period == nil || period.AcceptsPostings() {
		return nil
	}
	return apperrors.NewBusinessError(apperrors.ErrConflict, apperrors.CodeFiscalPeriodClosed,
		fmt.Sprintf("fiscal period %d is %s", period.PeriodNumber, period.Status)).
		WithDetail("periodId", period.PeriodID).
		WithDetail("periodNumber", period.PeriodNumber).
		WithDetail("status", string(period.Status))
}

// CreateCalendar sets up twelve monthly OPEN periods for an entity year.
func (s *fiscalPeriodService) CreateCalendar(ctx context.Context, tenantID string, req dto.CreateFiscalCalendarRequest, userID string) (*domain.FiscalCalendar, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var calendar domain.FiscalCalendar
	err := s.txManager.WithinSerializableTx(ctx, func(ctx context.Context, store portsrepo.Store) error {
		entity, err := store.LedgerAccounts().FindEntityByID(ctx, tenantID, req.EntityID)
		if err != nil {
			return err
		}

		exists, err := store.FiscalPeriods().CalendarExists(ctx, entity.EntityID, req.FiscalYear)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewBusinessError(apperrors.ErrDuplicate, apperrors.CodeCalendarExists, "fiscal calendar already exists").
				WithDetail("entityId", entity.EntityID).
				WithDetail("fiscalYear", req.FiscalYear)
		}

		now := s.now()
		audit := domain.NewAuditFields(userID, now)
		calendar = domain.FiscalCalendar{
			CalendarID:  uuid.NewString(),
			TenantID:    tenantID,
			EntityID:    entity.EntityID,
			FiscalYear:  req.FiscalYear,
			Periods:     domain.NewMonthlyPeriods(req.FiscalYear, time.Month(req.StartMonth)),
			AuditFields: audit,
		}
		for i := range calendar.Periods {
			p := &calendar.Periods[i]
			p.PeriodID = uuid.NewString()
			p.CalendarID = calendar.CalendarID
			p.TenantID = tenantID
			p.EntityID = entity.EntityID
			p.AuditFields = audit
		}
		calendar.StartDate = calendar.Periods[0].StartDate
		calendar.EndDate = calendar.Periods[len(calendar.Periods)-1].EndDate

		if err := store.FiscalPeriods().SaveCalendar(ctx, calendar); err != nil {
			return err
		}

		_, err = s.audit.Append(ctx, store, domain.AuditRecord{
			TenantID: tenantID,
			UserID:   userID,
			EntityID: &calendar.EntityID,
			Model:    domain.AuditModelFiscalCalendar,
			RecordID: calendar.CalendarID,
			Action:   domain.AuditCreate,
			After:    calendar,
		})
		return err
	})
	if err != nil {
		logFailure(logger, "Failed to create fiscal calendar", err, slog.String("entity_id", req.EntityID), slog.Int("fiscal_year", req.FiscalYear))
		return nil, err
	}

	logger.Info("Fiscal calendar created", slog.String("calendar_id", calendar.CalendarID), slog.String("entity_id", calendar.EntityID), slog.Int("fiscal_year", calendar.FiscalYear))
	return &calendar, nil
}

// LockPeriod moves an OPEN period to LOCKED.
func (s *fiscalPeriodService) LockPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error) {
	return s.transition(ctx, tenantID, periodID, userID, domain.AuditLock, func(_ context.Context, _ portsrepo.Store, p *domain.FiscalPeriod, at time.Time) error {
		return p.Lock(userID, at)
	})
}

// ClosePeriod moves a LOCKED period to CLOSED. Every earlier period of the
// calendar must already be CLOSED.
func (s *fiscalPeriodService) ClosePeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error) {
	return s.transition(ctx, tenantID, periodID, userID, domain.AuditClose, func(ctx context.Context, store portsrepo.Store, p *domain.FiscalPeriod, at time.Time) error {
		periods, err := store.FiscalPeriods().ListCalendarPeriods(ctx, p.CalendarID)
		if err != nil {
			return err
		}
		return p.Close(periods, userID, at)
	})
}

// ReopenPeriod moves a LOCKED or CLOSED period back to OPEN.
func (s *fiscalPeriodService) ReopenPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error) {
	return s.transition(ctx, tenantID, periodID, userID, domain.AuditReopen, func(_ context.Context, _ portsrepo.Store, p *domain.FiscalPeriod, at time.Time) error {
		return p.Reopen(userID, at)
	})
}

type periodTransition func(ctx context.Context, store portsrepo.Store, p *domain.FiscalPeriod, at time.Time) error

func (s *fiscalPeriodService) transition(ctx context.Context, tenantID, periodID, userID string, action domain.AuditAction, apply periodTransition) (*domain.FiscalPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var updated domain.FiscalPeriod
	err := s.txManager.WithinSerializableTx(ctx, func(ctx context.Context, store portsrepo.Store) error {
		period, err := store.FiscalPeriods().FindPeriodForUpdate(ctx, tenantID, periodID)
		if err != nil {
			return err
		}

		before := *period
		if err := apply(ctx, store, period, s.now()); err != nil {
			return toPeriodError(err, before)
		}

		if err := store.FiscalPeriods().UpdatePeriodStatus(ctx, *period); err != nil {
			return err
		}

		if _, err := s.audit.Append(ctx, store, domain.AuditRecord{
			TenantID: tenantID,
			UserID:   userID,
			EntityID: &period.EntityID,
			Model:    domain.AuditModelFiscalPeriod,
			RecordID: period.PeriodID,
			Action:   action,
			Before:   before,
			After:    period,
		}); err != nil {
			return err
		}
		updated = *period
		return nil
	})
	if err != nil {
		logFailure(logger, "Fiscal period transition rejected", err, slog.String("period_id", periodID), slog.String("action", string(action)))
		return nil, err
	}

	logger.Info("Fiscal period transitioned", slog.String("period_id", periodID), slog.String("action", string(action)), slog.String("status", string(updated.Status)))
	return &updated, nil
}

// toPeriodError converts a domain transition error into its coded business error.
func toPeriodError(err error, period domain.FiscalPeriod) error {
	var code apperrors.Code
	switch {
	case errors.Is(err, domain.ErrPeriodAlreadyLocked):
		code = apperrors.CodePeriodAlreadyLocked
	case errors.Is(err, domain.ErrPeriodClosedReopenFirst):
		code = apperrors.CodePeriodClosed
	case errors.Is(err, domain.ErrPeriodAlreadyClosed):
		code = apperrors.CodePeriodAlreadyClosed
	case errors.Is(err, domain.ErrPeriodNotLocked):
		code = apperrors.CodePeriodNotLocked
	case errors.Is(err, domain.ErrPreviousPeriodsNotClosed):
		code = apperrors.CodePreviousPeriodsNotClosed
	case errors.Is(err, domain.ErrPeriodAlreadyOpen):
		code = apperrors.CodePeriodAlreadyOpen
	default:
		return err
	}
	return apperrors.NewBusinessError(apperrors.ErrConflict, code, err.Error()).
		WithDetail("periodId", period.PeriodID).
		WithDetail("periodNumber", period.PeriodNumber).
		WithDetail("status", string(period.Status))
}

// logFailure logs business rejections at Warn and everything else at Error.
func logFailure(logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))
	if apperrors.IsBusiness(err) {
		logger.Warn(msg, append(attrs, slog.String("code", string(apperrors.CodeOf(err))))...)
		return
	}
	logger.Error(msg, attrs...)
}
