package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/core/services"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
)

type FiscalPeriodServiceTestSuite struct {
	suite.Suite
	state   *memState
	tx      *fakeTxManager
	now     time.Time
	service portssvc.FiscalPeriodSvcFacade
}

func (suite *FiscalPeriodServiceTestSuite) SetupTest() {
	suite.state = seedLedger()
	suite.tx = newFakeTxManager(suite.state)
	suite.now = time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	audit := services.NewAuditService(suite.tx)
	suite.service = services.NewFiscalPeriodService(suite.tx, audit, services.WithFiscalClock(func() time.Time { return suite.now }))
}

func TestFiscalPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FiscalPeriodServiceTestSuite))
}

func (suite *FiscalPeriodServiceTestSuite) TestCheckPostingDate() {
	addPeriod(suite.state, "p-01", 1, domain.PeriodClosed)
	addPeriod(suite.state, "p-02", 2, domain.PeriodLocked)
	addPeriod(suite.state, "p-03", 3, domain.PeriodOpen)
	store := suite.tx.Store()

	tests := []struct {
		name   string
		date   time.Time
		status domain.PeriodStatus
	}{
		{name: "no covering period", date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "open period", date: march14},
		{name: "last day of open period", date: time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)},
		{name: "locked period", date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), status: domain.PeriodLocked},
		{name: "closed period", date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), status: domain.PeriodClosed},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.service.CheckPostingDate(context.Background(), store, entityCAD, tt.date)
			if tt.status == "" {
				suite.NoError(err)
				return
			}
			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrConflict)
			suite.Equal(apperrors.CodeFiscalPeriodClosed, apperrors.CodeOf(err))
			suite.Equal(string(tt.status), apperrors.DetailsOf(err)["status"])
		})
	}

	suite.Equal(domain.PeriodLocked, suite.tx.committed().periods["p-02"].Status)
}

func (suite *FiscalPeriodServiceTestSuite) TestCheckPostingDateIgnoresOtherLedgers() {
	p := addPeriod(suite.state, "p-03", 3, domain.PeriodClosed)
	p.EntityID = entityOther
	suite.state.periods["p-03"] = p

	suite.NoError(suite.service.CheckPostingDate(context.Background(), suite.tx.Store(), entityCAD, march14))
}

func (suite *FiscalPeriodServiceTestSuite) TestLockCloseReopen() {
	ctx := context.Background()
	addPeriod(suite.state, "p-01", 1, domain.PeriodOpen)

	locked, err := suite.service.LockPeriod(ctx, tenantID, "p-01", userID)
	suite.Require().NoError(err)
	suite.Equal(domain.PeriodLocked, locked.Status)
	suite.Require().NotNil(locked.LockedBy)
	suite.Equal(userID, *locked.LockedBy)
	suite.Equal(suite.now, *locked.LockedAt)

	closed, err := suite.service.ClosePeriod(ctx, tenantID, "p-01", userID)
	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, closed.Status)
	suite.NotNil(closed.ClosedAt)

	reopened, err := suite.service.ReopenPeriod(ctx, tenantID, "p-01", userID)
	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, reopened.Status)
	suite.Nil(reopened.LockedAt)
	suite.Nil(reopened.ClosedAt)

	committed := suite.tx.committed()
	suite.Equal(domain.PeriodOpen, committed.periods["p-01"].Status)
	suite.Require().Len(committed.audit, 3)
	suite.Equal(domain.AuditLock, committed.audit[0].Action)
	suite.Equal(domain.AuditClose, committed.audit[1].Action)
	suite.Equal(domain.AuditReopen, committed.audit[2].Action)
	suite.Equal(domain.AuditModelFiscalPeriod, committed.audit[0].Model)
	suite.Contains(string(committed.audit[0].Before), `"status":"OPEN"`)
	suite.Contains(string(committed.audit[0].After), `"status":"LOCKED"`)
}

func (suite *FiscalPeriodServiceTestSuite) TestTransitionRejections() {
	tests := []struct {
		name   string
		status domain.PeriodStatus
		apply  func(ctx context.Context) error
		code   apperrors.Code
	}{
		{
			name:   "lock locked",
			status: domain.PeriodLocked,
			apply: func(ctx context.Context) error {
				_, err := suite.service.LockPeriod(ctx, tenantID, "p-03", userID)
				return err
			},
			code: apperrors.CodePeriodAlreadyLocked,
		},
		{
			name:   "lock closed",
			status: domain.PeriodClosed,
			apply: func(ctx context.Context) error {
				_, err := suite.service.LockPeriod(ctx, tenantID, "p-03", userID)
				return err
			},
			code: apperrors.CodePeriodClosed,
		},
		{
			name:   "close open",
			status: domain.PeriodOpen,
			apply: func(ctx context.Context) error {
				_, err := suite.service.ClosePeriod(ctx, tenantID, "p-03", userID)
				return err
			},
			code: apperrors.CodePeriodNotLocked,
		},
		{
			name:   "close closed",
			status: domain.PeriodClosed,
			apply: func(ctx context.Context) error {
				_, err := suite.service.ClosePeriod(ctx, tenantID, "p-03", userID)
				return err
			},
			code: apperrors.CodePeriodAlreadyClosed,
		},
		{
			name:   "reopen open",
			status: domain.PeriodOpen,
			apply: func(ctx context.Context) error {
				_, err := suite.service.ReopenPeriod(ctx, tenantID, "p-03", userID)
				return err
			},
			code: apperrors.CodePeriodAlreadyOpen,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			addPeriod(suite.state, "p-03", 3, tt.status)

			err := tt.apply(context.Background())

			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrConflict)
			suite.Equal(tt.code, apperrors.CodeOf(err))
			suite.Equal(tt.status, suite.tx.committed().periods["p-03"].Status)
			suite.Empty(suite.tx.committed().audit)
		})
	}
}

func (suite *FiscalPeriodServiceTestSuite) TestCloseRequiresEarlierPeriodsClosed() {
	addPeriod(suite.state, "p-01", 1, domain.PeriodClosed)
	addPeriod(suite.state, "p-02", 2, domain.PeriodLocked)
	addPeriod(suite.state, "p-03", 3, domain.PeriodLocked)

	_, err := suite.service.ClosePeriod(context.Background(), tenantID, "p-03", userID)

	suite.Require().Error(err)
	suite.Equal(apperrors.CodePreviousPeriodsNotClosed, apperrors.CodeOf(err))
	suite.Equal(3, apperrors.DetailsOf(err)["periodNumber"])
	suite.Equal(domain.PeriodLocked, suite.tx.committed().periods["p-03"].Status)

	_, err = suite.service.ClosePeriod(context.Background(), tenantID, "p-02", userID)
	suite.Require().NoError(err)
	_, err = suite.service.ClosePeriod(context.Background(), tenantID, "p-03", userID)
	suite.NoError(err)
}

func (suite *FiscalPeriodServiceTestSuite) TestTransitionOnOtherTenantPeriod() {
	addPeriod(suite.state, "p-03", 3, domain.PeriodOpen)

	_, err := suite.service.LockPeriod(context.Background(), otherTenant, "p-03", userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(apperrors.CodeFiscalPeriodNotFound, apperrors.CodeOf(err))
}

func (suite *FiscalPeriodServiceTestSuite) TestCreateCalendar() {
	ctx := context.Background()
	req := dto.CreateFiscalCalendarRequest{EntityID: entityCAD, FiscalYear: 2025, StartMonth: 4}

	calendar, err := suite.service.CreateCalendar(ctx, tenantID, req, userID)

	suite.Require().NoError(err)
	suite.Require().Len(calendar.Periods, 12)
	suite.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), calendar.StartDate)
	suite.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), calendar.EndDate)
	for i, p := range calendar.Periods {
		suite.Equal(i+1, p.PeriodNumber)
		suite.Equal(domain.PeriodOpen, p.Status)
		suite.Equal(calendar.CalendarID, p.CalendarID)
		suite.NotEmpty(p.PeriodID)
	}
	suite.Equal("2025-04", calendar.Periods[0].Name)
	suite.Equal("2026-03", calendar.Periods[11].Name)

	committed := suite.tx.committed()
	suite.Len(committed.periods, 12)
	suite.Require().Len(committed.audit, 1)
	suite.Equal(domain.AuditCreate, committed.audit[0].Action)
	suite.Equal(domain.AuditModelFiscalCalendar, committed.audit[0].Model)

	_, err = suite.service.CreateCalendar(ctx, tenantID, req, userID)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(apperrors.CodeCalendarExists, apperrors.CodeOf(err))
}

func (suite *FiscalPeriodServiceTestSuite) TestCreateCalendarRejections() {
	ctx := context.Background()

	_, err := suite.service.CreateCalendar(ctx, tenantID, dto.CreateFiscalCalendarRequest{EntityID: entityCAD, FiscalYear: 2025, StartMonth: 13}, userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateCalendar(ctx, otherTenant, dto.CreateFiscalCalendarRequest{EntityID: entityCAD, FiscalYear: 2025, StartMonth: 1}, userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.tx.committed().calendars)
}
