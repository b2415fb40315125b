package models

import "time"

// FiscalCalendar is a row of fiscal_calendars.
type FiscalCalendar struct {
	CalendarID string    `db:"calendar_id"`
	TenantID   string    `db:"tenant_id"`
	EntityID   string    `db:"entity_id"`
	FiscalYear int       `db:"fiscal_year"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	AuditFields
}

// FiscalPeriod is a row of fiscal_periods.
type FiscalPeriod struct {
	PeriodID     string     `db:"period_id"`
	CalendarID   string     `db:"calendar_id"`
	TenantID     string     `db:"tenant_id"`
	EntityID     string     `db:"entity_id"`
	PeriodNumber int        `db:"period_number"`
	Name         string     `db:"name"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      time.Time  `db:"end_date"`
	Status       string     `db:"status"`
	LockedAt     *time.Time `db:"locked_at"`
	LockedBy     *string    `db:"locked_by"`
	ClosedAt     *time.Time `db:"closed_at"`
	ClosedBy     *string    `db:"closed_by"`
	AuditFields
}
