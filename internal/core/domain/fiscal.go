package domain

import (
	"errors"
	"fmt"
	"time"
)

// PeriodStatus is the lifecycle state of a fiscal period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodLocked PeriodStatus = "LOCKED"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Transition errors. The service layer maps them to stable error codes.
var (
	ErrPeriodAlreadyLocked      = errors.New("period is already locked")
	ErrPeriodClosedReopenFirst  = errors.New("period is closed, reopen it before locking")
	ErrPeriodAlreadyClosed      = errors.New("period is already closed")
	ErrPeriodNotLocked          = errors.New("period must be locked before it can be closed")
	ErrPreviousPeriodsNotClosed = errors.New("previous periods must be closed first")
	ErrPeriodAlreadyOpen        = errors.New("period is already open")
)

// FiscalCalendar groups the periods of one entity's fiscal year.
type FiscalCalendar struct {
	CalendarID string         `json:"calendarID"`
	TenantID   string         `json:"tenantID"`
	EntityID   string         `json:"entityID"`
	FiscalYear int            `json:"fiscalYear"`
	StartDate  time.Time      `json:"startDate"`
	EndDate    time.Time      `json:"endDate"`
	Periods    []FiscalPeriod `json:"periods,omitempty"`
	AuditFields
}

// FiscalPeriod is one numbered slice of a fiscal calendar. StartDate and
// EndDate are inclusive calendar days.
type FiscalPeriod struct {
	PeriodID     string       `json:"periodID"`
	CalendarID   string       `json:"calendarID"`
	TenantID     string       `json:"tenantID"`
	EntityID     string       `json:"entityID"`
	PeriodNumber int          `json:"periodNumber"`
	Name         string       `json:"name"` // e.g. "2025-03"
	StartDate    time.Time    `json:"startDate"`
	EndDate      time.Time    `json:"endDate"`
	Status       PeriodStatus `json:"status"`
	LockedAt     *time.Time   `json:"lockedAt,omitempty"`
	LockedBy     *string      `json:"lockedBy,omitempty"`
	ClosedAt     *time.Time   `json:"closedAt,omitempty"`
	ClosedBy     *string      `json:"closedBy,omitempty"`
	AuditFields
}

// Covers reports whether date falls within the period, compared by calendar day.
func (p FiscalPeriod) Covers(date time.Time) bool {
	d := truncateDay(date)
	return !d.Before(truncateDay(p.StartDate)) && !d.After(truncateDay(p.EndDate))
}

// AcceptsPostings reports whether new entries may land in the period.
func (p FiscalPeriod) AcceptsPostings() bool {
	return p.Status == PeriodOpen
}

// Lock moves an OPEN period to LOCKED.
func (p *FiscalPeriod) Lock(userID string, at time.Time) error {
	switch p.Status {
	case PeriodLocked:
		return ErrPeriodAlreadyLocked
	case PeriodClosed:
		return ErrPeriodClosedReopenFirst
	}
	p.Status = PeriodLocked
	p.LockedAt = &at
	p.LockedBy = &userID
	p.Touch(userID, at)
	return nil
}

// Close moves a LOCKED period to CLOSED. earlier must hold every period of
// the same calendar with a smaller period number.
func (p *FiscalPeriod) Close(earlier []FiscalPeriod, userID string, at time.Time) error {
	switch p.Status {
	case PeriodClosed:
		return ErrPeriodAlreadyClosed
	case PeriodOpen:
		return ErrPeriodNotLocked
	}
	if pending := PendingBefore(earlier, p.PeriodNumber); len(pending) > 0 {
		return fmt.Errorf("%w: periods %v are not closed", ErrPreviousPeriodsNotClosed, pending)
	}
	p.Status = PeriodClosed
	p.ClosedAt = &at
	p.ClosedBy = &userID
	p.Touch(userID, at)
	return nil
}

// Reopen moves a LOCKED or CLOSED period back to OPEN.
func (p *FiscalPeriod) Reopen(userID string, at time.Time) error {
	if p.Status == PeriodOpen {
		return ErrPeriodAlreadyOpen
	}
	p.Status = PeriodOpen
	p.LockedAt, p.LockedBy = nil, nil
	p.ClosedAt, p.ClosedBy = nil, nil
	p.Touch(userID, at)
	return nil
}

// PendingBefore returns the numbers of periods below number that are not CLOSED.
func PendingBefore(periods []FiscalPeriod, number int) []int {
	var pending []int
	for _, other := range periods {
		if other.PeriodNumber < number && other.Status != PeriodClosed {
			pending = append(pending, other.PeriodNumber)
		}
	}
	return pending
}

// NewMonthlyPeriods lays out twelve consecutive monthly OPEN periods starting
// on the first day of startMonth in the given year.
func NewMonthlyPeriods(year int, startMonth time.Month) []FiscalPeriod {
	periods := make([]FiscalPeriod, 0, 12)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		periodStart := start.AddDate(0, i, 0)
		periods = append(periods, FiscalPeriod{
			PeriodNumber: i + 1,
			Name:         periodStart.Format("2006-01"),
			StartDate:    periodStart,
			EndDate:      periodStart.AddDate(0, 1, -1),
			Status:       PeriodOpen,
		})
	}
	return periods
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
