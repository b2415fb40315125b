package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// EntrySource classifies where a journal entry originated.
type EntrySource string

const (
	SourceBankFeed EntrySource = "BANK_FEED"
	SourceManual   EntrySource = "MANUAL"
)

var (
	ErrLineBothSides     = errors.New("journal line must carry exactly one of debit or credit")
	ErrLineNegative      = errors.New("journal line amounts must not be negative")
	ErrEntryMinLines     = errors.New("journal entry must have at least two lines")
	ErrEntryUnbalanced   = errors.New("journal entry debits and credits do not balance")
	ErrBaseAmountMissing = errors.New("foreign currency line is missing its base amounts")
	ErrAmountOverflow    = errors.New("amount total exceeds the representable range")
)

// AddAmount returns total+amount for non-negative minor-unit amounts, failing
// instead of wrapping around.
func AddAmount(total, amount int64) (int64, error) {
	if amount < 0 || total < 0 {
		return 0, fmt.Errorf("%w: cannot add negative amount", ErrLineNegative)
	}
	if total > math.MaxInt64-amount {
		return 0, fmt.Errorf("%w: %d + %d", ErrAmountOverflow, total, amount)
	}
	return total + amount, nil
}

// FormatEntryNumber renders the per-ledger sequence as a human readable number.
func FormatEntryNumber(sequence int64) string {
	return fmt.Sprintf("JE-%03d", sequence)
}

// JournalEntry is a balanced set of lines posted to one ledger.
type JournalEntry struct {
	EntryID             string          `json:"entryID"`
	TenantID            string          `json:"tenantID"`
	EntityID            string          `json:"entityID"`
	EntrySequence       int64           `json:"entrySequence"`
	EntryNumber         string          `json:"entryNumber"` // JE-003
	TransactionDate     time.Time       `json:"transactionDate"`
	Memo                string          `json:"memo"`
	Source              EntrySource     `json:"source"`
	SourceTransactionID *string         `json:"sourceTransactionID,omitempty"`
	SourceSnapshot      json.RawMessage `json:"sourceSnapshot,omitempty"` // Captured at posting time, never refreshed
	Status              EntryStatus     `json:"status"`
	Lines               []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// JournalLine affects one account. Amounts are minor currency units of the
// source currency; the Base* fields hold functional currency equivalents and
// are only set when the entry involves a foreign currency.
type JournalLine struct {
	LineID           string           `json:"lineID"`
	EntryID          string           `json:"entryID"`
	LineNumber       int              `json:"lineNumber"`
	AccountID        string           `json:"accountID"`
	Debit            int64            `json:"debit"`
	Credit           int64            `json:"credit"`
	Memo             string           `json:"memo,omitempty"`
	OriginalCurrency *string          `json:"originalCurrency,omitempty"`
	ExchangeRate     *decimal.Decimal `json:"exchangeRate,omitempty"`
	BaseDebit        *int64           `json:"baseDebit,omitempty"`
	BaseCredit       *int64           `json:"baseCredit,omitempty"`
}

// IsForeign reports whether the line carries functional currency equivalents.
func (l JournalLine) IsForeign() bool {
	return l.OriginalCurrency != nil
}

// FunctionalDebit returns the debit in functional currency terms.
func (l JournalLine) FunctionalDebit() int64 {
	if l.BaseDebit != nil {
		return *l.BaseDebit
	}
	return l.Debit
}

// FunctionalCredit returns the credit in functional currency terms.
func (l JournalLine) FunctionalCredit() int64 {
	if l.BaseCredit != nil {
		return *l.BaseCredit
	}
	return l.Credit
}

// Validate checks the single-line invariants.
func (l JournalLine) Validate() error {
	if l.Debit < 0 || l.Credit < 0 {
		return fmt.Errorf("%w: line %d", ErrLineNegative, l.LineNumber)
	}
	if (l.Debit == 0) == (l.Credit == 0) {
		return fmt.Errorf("%w: line %d has debit %d and credit %d", ErrLineBothSides, l.LineNumber, l.Debit, l.Credit)
	}
	if l.IsForeign() {
		if l.BaseDebit == nil || l.BaseCredit == nil || l.ExchangeRate == nil {
			return fmt.Errorf("%w: line %d", ErrBaseAmountMissing, l.LineNumber)
		}
		if *l.BaseDebit < 0 || *l.BaseCredit < 0 {
			return fmt.Errorf("%w: line %d base amounts", ErrLineNegative, l.LineNumber)
		}
	}
	return nil
}

// Validate checks that every line is well formed and that the entry balances,
// in functional currency terms when a foreign currency is involved.
func (e JournalEntry) Validate() error {
	if len(e.Lines) < 2 {
		return ErrEntryMinLines
	}

	var debits, credits, baseDebits, baseCredits int64
	foreign := false
	for _, line := range e.Lines {
		if err := line.Validate(); err != nil {
			return err
		}
		var err error
		if debits, err = AddAmount(debits, line.Debit); err != nil {
			return err
		}
		if credits, err = AddAmount(credits, line.Credit); err != nil {
			return err
		}
		if baseDebits, err = AddAmount(baseDebits, line.FunctionalDebit()); err != nil {
			return err
		}
		if baseCredits, err = AddAmount(baseCredits, line.FunctionalCredit()); err != nil {
			return err
		}
		if line.IsForeign() {
			foreign = true
		}
	}

	if debits != credits {
		return fmt.Errorf("%w: debits sum is %d and credits sum is %d", ErrEntryUnbalanced, debits, credits)
	}
	if foreign && baseDebits != baseCredits {
		return fmt.Errorf("%w: base debits sum is %d and base credits sum is %d", ErrEntryUnbalanced, baseDebits, baseCredits)
	}
	return nil
}

// PostingResult is returned for every journal entry created by the posting engine.
type PostingResult struct {
	EntryID             string           `json:"entryID"`
	EntryNumber         string           `json:"entryNumber"`
	EntityID            string           `json:"entityID"`
	SourceTransactionID string           `json:"sourceTransactionID"`
	Status              EntryStatus      `json:"status"`
	ExchangeRate        *decimal.Decimal `json:"exchangeRate,omitempty"`
	Lines               []JournalLine    `json:"lines"`
}
