package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/models"
	"github.com/SscSPs/mma_ledger_core/internal/utils/mapping"
)

// PgxFiscalPeriodRepository stores fiscal calendars and their periods.
type PgxFiscalPeriodRepository struct {
	BaseRepository
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*PgxFiscalPeriodRepository)(nil)

const fiscalPeriodColumns = `
	period_id, calendar_id, tenant_id, entity_id, period_number, name, start_date, end_date,
	status, locked_at, locked_by, closed_at, closed_by,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindPeriodCoveringDate returns the entity's period containing date, or nil.
// The row is read with FOR SHARE so a concurrent lock or close waits for the
// posting that checked it.
func (r *PgxFiscalPeriodRepository) FindPeriodCoveringDate(ctx context.Context, entityID string, date time.Time) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods
		WHERE entity_id = $1 AND start_date <= $2::date AND end_date >= $2::date
		ORDER BY start_date DESC
		LIMIT 1
		FOR SHARE;
	`
	rows, err := r.DB.Query(ctx, query, entityID, date)
	if err != nil {
		return nil, queryError("failed to query fiscal period", err)
	}
	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.FiscalPeriod])
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, queryError("failed to scan fiscal period", err)
	}

	period := mapping.ToDomainFiscalPeriod(model)
	return &period, nil
}

// FindPeriodForUpdate locks and returns a period of the tenant.
func (r *PgxFiscalPeriodRepository) FindPeriodForUpdate(ctx context.Context, tenantID, periodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods
		WHERE tenant_id = $1 AND period_id = $2
		FOR UPDATE;
	`
	rows, err := r.DB.Query(ctx, query, tenantID, periodID)
	if err != nil {
		return nil, queryError("failed to lock fiscal period "+periodID, err)
	}
	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.FiscalPeriod])
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeFiscalPeriodNotFound, "fiscal period not found").
				WithDetail("periodId", periodID)
		}
		return nil, queryError("failed to scan fiscal period "+periodID, err)
	}

	period := mapping.ToDomainFiscalPeriod(model)
	return &period, nil
}

// ListCalendarPeriods returns every period of a calendar ordered by number.
func (r *PgxFiscalPeriodRepository) ListCalendarPeriods(ctx context.Context, calendarID string) ([]domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods
		WHERE calendar_id = $1
		ORDER BY period_number;
	`
	rows, err := r.DB.Query(ctx, query, calendarID)
	if err != nil {
		return nil, queryError("failed to list periods of calendar "+calendarID, err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FiscalPeriod])
	if err != nil {
		return nil, queryError("failed to scan periods of calendar "+calendarID, err)
	}
	return mapping.ToDomainFiscalPeriodSlice(found), nil
}

// CalendarExists reports whether the entity already has a calendar for the year.
func (r *PgxFiscalPeriodRepository) CalendarExists(ctx context.Context, entityID string, fiscalYear int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM fiscal_calendars WHERE entity_id = $1 AND fiscal_year = $2);`,
		entityID, fiscalYear,
	).Scan(&exists)
	if err != nil {
		return false, queryError("failed to check fiscal calendar", err)
	}
	return exists, nil
}

// SaveCalendar inserts a calendar and batches the inserts of its periods.
func (r *PgxFiscalPeriodRepository) SaveCalendar(ctx context.Context, calendar domain.FiscalCalendar) error {
	c := mapping.ToModelFiscalCalendar(calendar)
	_, err := r.DB.Exec(ctx, `
		INSERT INTO fiscal_calendars (
			calendar_id, tenant_id, entity_id, fiscal_year, start_date, end_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		c.CalendarID, c.TenantID, c.EntityID, c.FiscalYear, c.StartDate, c.EndDate,
		c.CreatedAt, c.CreatedBy, c.LastUpdatedAt, c.LastUpdatedBy,
	)
	if err != nil {
		return queryError("failed to insert fiscal calendar "+c.CalendarID, err)
	}

	batch := &pgx.Batch{}
	periodQuery := `
		INSERT INTO fiscal_periods (` + fiscalPeriodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	for _, period := range calendar.Periods {
		p := mapping.ToModelFiscalPeriod(period)
		batch.Queue(periodQuery,
			p.PeriodID, p.CalendarID, p.TenantID, p.EntityID, p.PeriodNumber, p.Name, p.StartDate, p.EndDate,
			p.Status, p.LockedAt, p.LockedBy, p.ClosedAt, p.ClosedBy,
			p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
		)
	}
	if err := r.DB.SendBatch(ctx, batch).Close(); err != nil {
		return queryError("failed to insert periods of fiscal calendar "+c.CalendarID, err)
	}
	return nil
}

// UpdatePeriodStatus persists the status and lock/close markers of a period.
func (r *PgxFiscalPeriodRepository) UpdatePeriodStatus(ctx context.Context, period domain.FiscalPeriod) error {
	p := mapping.ToModelFiscalPeriod(period)
	tag, err := r.DB.Exec(ctx, `
		UPDATE fiscal_periods
		SET status = $2, locked_at = $3, locked_by = $4, closed_at = $5, closed_by = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE period_id = $1;`,
		p.PeriodID, p.Status, p.LockedAt, p.LockedBy, p.ClosedAt, p.ClosedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		return queryError("failed to update fiscal period "+p.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.CodeFiscalPeriodNotFound, "fiscal period not found").
			WithDetail("periodId", p.PeriodID)
	}
	return nil
}
