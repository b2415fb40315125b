package services

import (
	"context"
	"time"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// RateResolverSvc picks the exchange rate used to convert a posting into the
// ledger's functional currency.
type RateResolverSvc interface {
	ResolveRate(ctx context.Context, store portsrepo.Store, sourceCurrency, functionalCurrency string, asOf time.Time, override *decimal.Decimal) (domain.ResolvedRate, error)
}
