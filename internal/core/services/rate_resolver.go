package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/shopspring/decimal"
)

// rateResolver picks the rate for converting a posting into the functional currency.
type rateResolver struct{}

// NewRateResolver creates a new RateResolverSvc.
func NewRateResolver() portssvc.RateResolverSvc {
	return &rateResolver{}
}

var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

// ResolveRate returns the identity rate for same-currency postings, the
// override when one is supplied, and otherwise the latest table rate effective
// on or before asOf. A missing table rate is an error, never a silent 1.
func (r *rateResolver) ResolveRate(ctx context.Context, store portsrepo.Store, sourceCurrency, functionalCurrency string, asOf time.Time, override *decimal.Decimal) (domain.ResolvedRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	source := strings.ToUpper(sourceCurrency)
	functional := strings.ToUpper(functionalCurrency)

	resolved := domain.ResolvedRate{SourceCurrency: source, FunctionalCurrency: functional}
	if source == functional {
		resolved.Rate = decimal.NewFromInt(1)
		resolved.Source = domain.RateSourceIdentity
		return resolved, nil
	}

	if override != nil {
		resolved.Rate = *override
		resolved.Source = domain.RateSourceOverride
		logger.Info("Using caller supplied exchange rate", slog.String("from", source), slog.String("to", functional), slog.String("rate", override.String()))
		return resolved, nil
	}

	rate, err := store.ExchangeRates().FindLatestRate(ctx, source, functional, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No exchange rate available", slog.String("from", source), slog.String("to", functional), slog.String("as_of", asOf.Format(time.DateOnly)))
			return domain.ResolvedRate{}, apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeMissingFXRate, "no exchange rate available for currency pair").
				WithDetail("from", source).
				WithDetail("to", functional).
				WithDetail("asOf", asOf.Format(time.DateOnly))
		}
		return domain.ResolvedRate{}, err
	}

	effective := rate.EffectiveDate
	resolved.Rate = rate.Rate
	resolved.Source = domain.RateSourceTable
	resolved.EffectiveDate = &effective
	return resolved, nil
}
