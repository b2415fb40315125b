package models

// LedgerAccount is a row of ledger_accounts.
type LedgerAccount struct {
	AccountID      string `db:"account_id"`
	EntityID       string `db:"entity_id"`
	Code           string `db:"code"`
	Name           string `db:"name"`
	Classification string `db:"classification"`
	IsActive       bool   `db:"is_active"`
}

// Entity is a row of entities.
type Entity struct {
	EntityID           string `db:"entity_id"`
	TenantID           string `db:"tenant_id"`
	Name               string `db:"name"`
	FunctionalCurrency string `db:"functional_currency"`
}
