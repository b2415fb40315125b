package models

import "time"

// SourceTransaction is a row of bank_transactions joined with the ledger
// mapping of its bank account.
type SourceTransaction struct {
	TransactionID   string     `db:"transaction_id"`
	TenantID        string     `db:"tenant_id"`
	BankAccountID   string     `db:"bank_account_id"`
	LedgerAccountID *string    `db:"ledger_account_id"` // Nullable: bank account not mapped yet
	TransactionDate time.Time  `db:"transaction_date"`
	Description     string     `db:"description"`
	Amount          int64      `db:"amount"`
	Currency        string     `db:"currency"`
	JournalEntryID  *string    `db:"journal_entry_id"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

// SplitChild is a row of bank_transaction_splits.
type SplitChild struct {
	SplitID         string    `db:"split_id"`
	TransactionID   string    `db:"transaction_id"`
	Amount          int64     `db:"amount"`
	Memo            string    `db:"memo"`
	LedgerAccountID *string   `db:"ledger_account_id"`
	CreatedAt       time.Time `db:"created_at"`
}
