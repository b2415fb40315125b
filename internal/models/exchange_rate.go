package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of fx_rates: one BaseCurrency unit buys Rate QuoteCurrency units.
type ExchangeRate struct {
	ExchangeRateID string          `db:"fx_rate_id"`
	BaseCurrency   string          `db:"base_currency"`
	QuoteCurrency  string          `db:"quote_currency"`
	Rate           decimal.Decimal `db:"rate"`
	EffectiveDate  time.Time       `db:"effective_date"`
}
