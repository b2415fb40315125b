package dto

import (
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostTransactionRequest posts one source transaction against one target account.
type PostTransactionRequest struct {
	SourceTransactionID string           `json:"sourceTransactionID" validate:"required"`
	TargetAccountID     string           `json:"targetAccountID" validate:"required"`
	RateOverride        *decimal.Decimal `json:"rateOverride,omitempty"` // Used verbatim when set
}

// Validate checks the request shape.
func (r PostTransactionRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateRateOverride(r.RateOverride)
}

// PostBulkRequest posts many source transactions against one shared target account.
type PostBulkRequest struct {
	SourceTransactionIDs []string         `json:"sourceTransactionIDs" validate:"required,min=1,max=500,unique,dive,required"`
	TargetAccountID      string           `json:"targetAccountID" validate:"required"`
	RateOverride         *decimal.Decimal `json:"rateOverride,omitempty"`
}

// Validate checks the request shape.
func (r PostBulkRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateRateOverride(r.RateOverride)
}

// SplitRequest is one target leg of a split posting.
type SplitRequest struct {
	AccountID string `json:"accountID" validate:"required"`
	Amount    int64  `json:"amount" validate:"gt=0"` // Minor units of the transaction currency
	Memo      string `json:"memo,omitempty" validate:"max=500"`
}

// PostSplitRequest posts one source transaction across several target accounts.
type PostSplitRequest struct {
	SourceTransactionID string           `json:"sourceTransactionID" validate:"required"`
	Splits              []SplitRequest   `json:"splits" validate:"required,min=1,max=100,dive"`
	RateOverride        *decimal.Decimal `json:"rateOverride,omitempty"`
}

// Validate checks the request shape.
func (r PostSplitRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return validateRateOverride(r.RateOverride)
}

// BulkPostingResponse lists one result per transaction in request order.
type BulkPostingResponse struct {
	Results []domain.PostingResult `json:"results"`
	Count   int                    `json:"count"`
}

// JournalEntryResponse is the read model of a posted entry.
type JournalEntryResponse struct {
	Entry domain.JournalEntry `json:"entry"`
}

// ListEntriesParams pages through the posted entries of one entity, newest first.
type ListEntriesParams struct {
	EntityID  string  `form:"entityID" validate:"required"`
	Limit     int     `form:"limit" validate:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// Validate checks the request shape.
func (p ListEntriesParams) Validate() error {
	return validateStruct(p)
}

// ListEntriesResponse is one page of entries. Lines are not included.
type ListEntriesResponse struct {
	Entries   []domain.JournalEntry `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}
