package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/models"
	"github.com/SscSPs/mma_ledger_core/internal/utils/mapping"
)

// PgxExchangeRateRepository reads the append-only fx_rates table.
type PgxExchangeRateRepository struct {
	BaseRepository
}

var _ portsrepo.ExchangeRateReader = (*PgxExchangeRateRepository)(nil)

// FindLatestRate returns the most recent rate for the pair effective on or before asOf.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, baseCurrency, quoteCurrency string, asOf time.Time) (*domain.ExchangeRate, error) {
	// Normalize currency codes to uppercase
	base := strings.ToUpper(baseCurrency)
	quote := strings.ToUpper(quoteCurrency)

	query := `
		SELECT fx_rate_id, base_currency, quote_currency, rate, effective_date
		FROM fx_rates
		WHERE base_currency = $1 AND quote_currency = $2 AND effective_date <= $3
		ORDER BY effective_date DESC
		LIMIT 1;
	`
	rows, err := r.DB.Query(ctx, query, base, quote, asOf)
	if err != nil {
		return nil, queryError("failed to query exchange rate", err)
	}
	model, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError("", "exchange rate not found").
				WithDetail("from", base).
				WithDetail("to", quote)
		}
		return nil, queryError("failed to scan exchange rate", err)
	}

	rate := mapping.ToDomainExchangeRate(model)
	return &rate, nil
}
