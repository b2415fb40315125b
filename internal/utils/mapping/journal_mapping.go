package mapping

import (
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/SscSPs/mma_ledger_core/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:             d.EntryID,
		TenantID:            d.TenantID,
		EntityID:            d.EntityID,
		EntrySequence:       d.EntrySequence,
		EntryNumber:         d.EntryNumber,
		TransactionDate:     d.TransactionDate,
		Memo:                d.Memo,
		Source:              string(d.Source),
		SourceTransactionID: d.SourceTransactionID,
		SourceSnapshot:      d.SourceSnapshot,
		Status:              string(d.Status),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:             m.EntryID,
		TenantID:            m.TenantID,
		EntityID:            m.EntityID,
		EntrySequence:       m.EntrySequence,
		EntryNumber:         m.EntryNumber,
		TransactionDate:     m.TransactionDate,
		Memo:                m.Memo,
		Source:              domain.EntrySource(m.Source),
		SourceTransactionID: m.SourceTransactionID,
		SourceSnapshot:      m.SourceSnapshot,
		Status:              domain.EntryStatus(m.Status),
		Lines:               ToDomainJournalLineSlice(lines),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:           d.LineID,
		EntryID:          d.EntryID,
		LineNumber:       d.LineNumber,
		AccountID:        d.AccountID,
		Debit:            d.Debit,
		Credit:           d.Credit,
		Memo:             d.Memo,
		OriginalCurrency: d.OriginalCurrency,
		ExchangeRate:     d.ExchangeRate,
		BaseDebit:        d.BaseDebit,
		BaseCredit:       d.BaseCredit,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:           m.LineID,
		EntryID:          m.EntryID,
		LineNumber:       m.LineNumber,
		AccountID:        m.AccountID,
		Debit:            m.Debit,
		Credit:           m.Credit,
		Memo:             m.Memo,
		OriginalCurrency: m.OriginalCurrency,
		ExchangeRate:     m.ExchangeRate,
		BaseDebit:        m.BaseDebit,
		BaseCredit:       m.BaseCredit,
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to a slice of domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
