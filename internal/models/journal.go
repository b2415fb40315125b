package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of journal_entries.
type JournalEntry struct {
	EntryID             string          `db:"entry_id"`
	TenantID            string          `db:"tenant_id"`
	EntityID            string          `db:"entity_id"`
	EntrySequence       int64           `db:"entry_sequence"`
	EntryNumber         string          `db:"entry_number"`
	TransactionDate     time.Time       `db:"transaction_date"`
	Memo                string          `db:"memo"`
	Source              string          `db:"source"`
	SourceTransactionID *string         `db:"source_transaction_id"`
	SourceSnapshot      json.RawMessage `db:"source_snapshot"`
	Status              string          `db:"status"`
	AuditFields
}

// JournalLine is a row of journal_lines. The currency columns are NULL for
// lines of a functional currency entry.
type JournalLine struct {
	LineID           string           `db:"line_id"`
	EntryID          string           `db:"entry_id"`
	LineNumber       int              `db:"line_number"`
	AccountID        string           `db:"account_id"`
	Debit            int64            `db:"debit"`
	Credit           int64            `db:"credit"`
	Memo             string           `db:"memo"`
	OriginalCurrency *string          `db:"original_currency"`
	ExchangeRate     *decimal.Decimal `db:"exchange_rate"`
	BaseDebit        *int64           `db:"base_debit"`
	BaseCredit       *int64           `db:"base_credit"`
}
