package pgsql

import (
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
)

// pgxStore hands out repositories sharing one database handle.
type pgxStore struct {
	sourceTxns *PgxSourceTransactionRepository
	accounts   *PgxLedgerAccountRepository
	journals   *PgxJournalRepository
	fiscal     *PgxFiscalPeriodRepository
	rates      *PgxExchangeRateRepository
	auditLogs  *PgxAuditLogRepository
}

func newStore(db DBTX) *pgxStore {
	base := BaseRepository{DB: db}
	return &pgxStore{
		sourceTxns: &PgxSourceTransactionRepository{BaseRepository: base},
		accounts:   &PgxLedgerAccountRepository{BaseRepository: base},
		journals:   &PgxJournalRepository{BaseRepository: base},
		fiscal:     &PgxFiscalPeriodRepository{BaseRepository: base},
		rates:      &PgxExchangeRateRepository{BaseRepository: base},
		auditLogs:  &PgxAuditLogRepository{BaseRepository: base},
	}
}

var _ portsrepo.Store = (*pgxStore)(nil)

func (s *pgxStore) SourceTransactions() portsrepo.SourceTransactionRepositoryFacade {
	return s.sourceTxns
}

func (s *pgxStore) LedgerAccounts() portsrepo.LedgerAccountReader {
	return s.accounts
}

func (s *pgxStore) Journals() portsrepo.JournalRepositoryFacade {
	return s.journals
}

func (s *pgxStore) FiscalPeriods() portsrepo.FiscalPeriodRepositoryFacade {
	return s.fiscal
}

func (s *pgxStore) ExchangeRates() portsrepo.ExchangeRateReader {
	return s.rates
}

func (s *pgxStore) AuditLogs() portsrepo.AuditLogRepositoryFacade {
	return s.auditLogs
}
