package mapping

import (
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/SscSPs/mma_ledger_core/internal/models"
)

// ToDomainSourceTransaction converts a model SourceTransaction to a domain SourceTransaction
func ToDomainSourceTransaction(m models.SourceTransaction) domain.SourceTransaction {
	return domain.SourceTransaction{
		TransactionID:       m.TransactionID,
		TenantID:            m.TenantID,
		BankAccountID:       m.BankAccountID,
		BankLedgerAccountID: m.LedgerAccountID,
		Date:                m.TransactionDate,
		Description:         m.Description,
		Amount:              m.Amount,
		Currency:            m.Currency,
		JournalEntryID:      m.JournalEntryID,
		DeletedAt:           m.DeletedAt,
	}
}

// ToDomainSplitChild converts a model SplitChild to a domain SplitChild
func ToDomainSplitChild(m models.SplitChild) domain.SplitChild {
	return domain.SplitChild{
		SplitID:         m.SplitID,
		TransactionID:   m.TransactionID,
		Amount:          m.Amount,
		Memo:            m.Memo,
		LedgerAccountID: m.LedgerAccountID,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainLedgerAccount converts a model LedgerAccount to a domain LedgerAccount
func ToDomainLedgerAccount(m models.LedgerAccount) domain.LedgerAccount {
	return domain.LedgerAccount{
		AccountID:      m.AccountID,
		EntityID:       m.EntityID,
		Code:           m.Code,
		Name:           m.Name,
		Classification: domain.AccountClassification(m.Classification),
		IsActive:       m.IsActive,
	}
}

// ToDomainEntity converts a model Entity to a domain Entity
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:           m.EntityID,
		TenantID:           m.TenantID,
		Name:               m.Name,
		FunctionalCurrency: m.FunctionalCurrency,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		BaseCurrency:   m.BaseCurrency,
		QuoteCurrency:  m.QuoteCurrency,
		Rate:           m.Rate,
		EffectiveDate:  m.EffectiveDate,
	}
}
