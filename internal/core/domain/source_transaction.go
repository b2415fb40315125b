package domain

import (
	"encoding/json"
	"time"
)

// SourceTransaction is an externally sourced bank-feed record. Amount is signed:
// positive for inflows and negative for outflows.
type SourceTransaction struct {
	TransactionID       string     `json:"transactionID"`
	TenantID            string     `json:"tenantID"`
	BankAccountID       string     `json:"bankAccountID"`
	BankLedgerAccountID *string    `json:"bankLedgerAccountID,omitempty"` // Mapping of the bank account to the ledger
	Date                time.Time  `json:"date"`
	Description         string     `json:"description"`
	Amount              int64      `json:"amount"`
	Currency            string     `json:"currency"`
	JournalEntryID      *string    `json:"journalEntryID,omitempty"`
	DeletedAt           *time.Time `json:"deletedAt,omitempty"`
}

// IsPosted reports whether the transaction is already linked to a journal entry.
func (t SourceTransaction) IsPosted() bool {
	return t.JournalEntryID != nil
}

// IsInflow reports whether money entered the bank account.
func (t SourceTransaction) IsInflow() bool {
	return t.Amount > 0
}

// AbsAmount returns the unsigned line amount.
func (t SourceTransaction) AbsAmount() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// SourceSnapshot is the allow-listed copy of a source transaction stored on the
// journal entry. Only these fields are ever captured.
type SourceSnapshot struct {
	TransactionID string `json:"transactionId"`
	BankAccountID string `json:"bankAccountId"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

// Snapshot captures the immutable allow-listed view of the transaction.
func (t SourceTransaction) Snapshot() (json.RawMessage, error) {
	return json.Marshal(SourceSnapshot{
		TransactionID: t.TransactionID,
		BankAccountID: t.BankAccountID,
		Date:          t.Date.Format(time.DateOnly),
		Description:   t.Description,
		Amount:        t.Amount,
		Currency:      t.Currency,
	})
}

// SplitChild is a per-split record a collaborator created under a source
// transaction. The engine annotates it with the resolved ledger account.
type SplitChild struct {
	SplitID         string    `json:"splitID"`
	TransactionID   string    `json:"transactionID"`
	Amount          int64     `json:"amount"`
	Memo            string    `json:"memo"`
	LedgerAccountID *string   `json:"ledgerAccountID,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
