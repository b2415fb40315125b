package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/google/uuid"
)

var ErrNoTargets = errors.New("posting needs at least one target line")

// TargetLine is one counter-account leg of a bank posting.
type TargetLine struct {
	AccountID string
	Amount    int64 // Positive, in source currency minor units
	Memo      string
}

// PostingLines describes the two sides of a bank-feed posting.
type PostingLines struct {
	EntryID       string
	BankAccountID string
	Inflow        bool
	Currency      string
	Rate          domain.ResolvedRate
	Targets       []TargetLine
}

// BuildLines turns a bank posting into balanced journal lines. For an inflow
// the bank line is debited first and the targets are credited; for an outflow
// the targets are debited and the bank line is credited last. When a
// conversion applies the target base amounts come from Allocate and the bank
// line carries their sum.
func BuildLines(p PostingLines) ([]domain.JournalLine, error) {
	if len(p.Targets) == 0 {
		return nil, ErrNoTargets
	}

	amounts := make([]int64, len(p.Targets))
	for i, target := range p.Targets {
		if target.Amount <= 0 {
			return nil, fmt.Errorf("target amount must be positive for account %s", target.AccountID)
		}
		amounts[i] = target.Amount
	}
	total, err := Sum(amounts)
	if err != nil {
		return nil, err
	}

	var base []int64
	if p.Rate.NeedsConversion() {
		if base, err = Allocate(amounts, p.Rate.Rate); err != nil {
			return nil, err
		}
	}

	targetLines := make([]domain.JournalLine, len(p.Targets))
	for i, target := range p.Targets {
		line := domain.JournalLine{AccountID: target.AccountID, Memo: target.Memo}
		var baseAmount *int64
		if base != nil {
			baseAmount = &base[i]
		}
		// Targets sit on the opposite side of the bank line.
		setSide(&line, !p.Inflow, target.Amount, baseAmount, p)
		targetLines[i] = line
	}

	bankLine := domain.JournalLine{AccountID: p.BankAccountID}
	var bankBase *int64
	if base != nil {
		sum, err := Sum(base)
		if err != nil {
			return nil, err
		}
		bankBase = &sum
	}
	setSide(&bankLine, p.Inflow, total, bankBase, p)

	lines := make([]domain.JournalLine, 0, len(targetLines)+1)
	if p.Inflow {
		lines = append(lines, bankLine)
		lines = append(lines, targetLines...)
	} else {
		lines = append(lines, targetLines...)
		lines = append(lines, bankLine)
	}

	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = p.EntryID
		lines[i].LineNumber = i + 1
	}

	entry := domain.JournalEntry{Lines: lines}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return lines, nil
}

func setSide(line *domain.JournalLine, debit bool, amount int64, base *int64, p PostingLines) {
	if debit {
		line.Debit = amount
	} else {
		line.Credit = amount
	}
	if base == nil {
		return
	}

	var baseDebit, baseCredit int64
	if debit {
		baseDebit = *base
	} else {
		baseCredit = *base
	}
	currency := p.Currency
	rate := p.Rate.Rate
	line.OriginalCurrency = &currency
	line.ExchangeRate = &rate
	line.BaseDebit = &baseDebit
	line.BaseCredit = &baseCredit
}
