package services

import (
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The audit chain is shared: every mutating service appends through it
	container.Audit = NewAuditService(repos.TxManager)
	container.RateResolver = NewRateResolver()
	container.FiscalPeriod = NewFiscalPeriodService(repos.TxManager, container.Audit)
	container.Posting = NewPostingService(repos.TxManager, container.RateResolver, container.FiscalPeriod, container.Audit)

	return container
}
