package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts one unit of BaseCurrency into Rate units of QuoteCurrency.
// Rates are append-only reference data maintained outside the core.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	BaseCurrency   string          `json:"baseCurrency"`
	QuoteCurrency  string          `json:"quoteCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	EffectiveDate  time.Time       `json:"effectiveDate"`
}

// RateSource records where a resolved rate came from.
type RateSource string

const (
	RateSourceIdentity RateSource = "IDENTITY"
	RateSourceOverride RateSource = "OVERRIDE"
	RateSourceTable    RateSource = "TABLE"
)

// ResolvedRate is the outcome of rate resolution for one posting.
type ResolvedRate struct {
	SourceCurrency     string
	FunctionalCurrency string
	Rate               decimal.Decimal
	Source             RateSource
	EffectiveDate      *time.Time // Set for table lookups
}

// NeedsConversion reports whether amounts must be converted into the functional currency.
func (r ResolvedRate) NeedsConversion() bool {
	return r.Source != RateSourceIdentity
}
