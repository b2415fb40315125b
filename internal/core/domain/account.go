package domain

// AccountClassification defines the fundamental accounting type of a ledger account.
type AccountClassification string

const (
	Asset     AccountClassification = "ASSET"
	Liability AccountClassification = "LIABILITY"
	Equity    AccountClassification = "EQUITY"
	Revenue   AccountClassification = "REVENUE"
	Expense   AccountClassification = "EXPENSE"
)

// LedgerAccount is an account from the chart of accounts. The posting core
// only reads it.
type LedgerAccount struct {
	AccountID      string                `json:"accountID"`
	EntityID       string                `json:"entityID"` // Owning ledger
	Code           string                `json:"code"`     // e.g. "1000"
	Name           string                `json:"name"`
	Classification AccountClassification `json:"classification"`
	IsActive       bool                  `json:"isActive"`
}

// Entity is a ledger owned by a tenant. All amounts of its journal entries
// balance in its functional currency.
type Entity struct {
	EntityID           string `json:"entityID"`
	TenantID           string `json:"tenantID"`
	Name               string `json:"name"`
	FunctionalCurrency string `json:"functionalCurrency"`
}
