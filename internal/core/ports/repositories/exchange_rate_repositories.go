package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
)

// ExchangeRateReader reads the append-only rate table.
type ExchangeRateReader interface {
	// FindLatestRate returns the most recent rate for base→quote effective on or
	// before asOf. It returns an apperrors not-found error when there is none.
	FindLatestRate(ctx context.Context, baseCurrency, quoteCurrency string, asOf time.Time) (*domain.ExchangeRate, error)
}
