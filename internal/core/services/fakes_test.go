package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/mma_ledger_core/internal/utils/pagination"
)

// --- In-memory store ---

// memState is the committed state of the fake database.
type memState struct {
	txns      map[string]domain.SourceTransaction
	splits    map[string][]domain.SplitChild
	accounts  map[string]domain.LedgerAccount
	entities  map[string]domain.Entity
	entries   map[string]domain.JournalEntry
	calendars map[string]domain.FiscalCalendar
	periods   map[string]domain.FiscalPeriod
	rates     []domain.ExchangeRate
	audit     []domain.AuditLogEntry
}

func newMemState() *memState {
	return &memState{
		txns:      map[string]domain.SourceTransaction{},
		splits:    map[string][]domain.SplitChild{},
		accounts:  map[string]domain.LedgerAccount{},
		entities:  map[string]domain.Entity{},
		entries:   map[string]domain.JournalEntry{},
		calendars: map[string]domain.FiscalCalendar{},
		periods:   map[string]domain.FiscalPeriod{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.txns {
		c.txns[k] = v
	}
	for k, v := range s.splits {
		c.splits[k] = append([]domain.SplitChild(nil), v...)
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.entities {
		c.entities[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = v
	}
	for k, v := range s.calendars {
		c.calendars[k] = v
	}
	for k, v := range s.periods {
		c.periods[k] = v
	}
	c.rates = append([]domain.ExchangeRate(nil), s.rates...)
	c.audit = append([]domain.AuditLogEntry(nil), s.audit...)
	return c
}

// memStore implements every repository interface over a memState.
type memStore struct {
	state *memState
	// rates, when set, replaces the in-memory rate table.
	rates portsrepo.ExchangeRateReader
}

var _ portsrepo.Store = (*memStore)(nil)

func (m *memStore) SourceTransactions() portsrepo.SourceTransactionRepositoryFacade { return m }
func (m *memStore) LedgerAccounts() portsrepo.LedgerAccountReader { return m }
func (m *memStore) Journals() portsrepo.JournalRepositoryFacade { return m }
func (m *memStore) FiscalPeriods() portsrepo.FiscalPeriodRepositoryFacade { return m }
func (m *memStore) AuditLogs() portsrepo.AuditLogRepositoryFacade { return m }

func (m *memStore) ExchangeRates() portsrepo.ExchangeRateReader {
	if m.rates != nil {
		return m.rates
	}
	return m
}

func (m *memStore) FindForUpdate(_ context.Context, tenantID, transactionID string) (*domain.SourceTransaction, error) {
	txn, ok := m.state.txns[transactionID]
	if !ok || txn.TenantID != tenantID || txn.DeletedAt != nil {
		return nil, apperrors.NewNotFoundError(apperrors.CodeSourceTransactionNotFound, "source transaction not found")
	}
	return &txn, nil
}

func (m *memStore) FindManyForUpdate(_ context.Context, tenantID string, ids []string) ([]domain.SourceTransaction, error) {
	var out []domain.SourceTransaction
	for _, id := range ids {
		if txn, ok := m.state.txns[id]; ok && txn.TenantID == tenantID && txn.DeletedAt == nil {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (m *memStore) ListSplitChildren(_ context.Context, transactionID string) ([]domain.SplitChild, error) {
	children := append([]domain.SplitChild(nil), m.state.splits[transactionID]...)
	sort.SliceStable(children, func(i, j int) bool { return children[i].CreatedAt.Before(children[j].CreatedAt) })
	return children, nil
}

func (m *memStore) LinkJournalEntry(_ context.Context, tenantID, transactionID, entryID string) (bool, error) {
	txn, ok := m.state.txns[transactionID]
	if !ok || txn.TenantID != tenantID || txn.JournalEntryID != nil {
		return false, nil
	}
	txn.JournalEntryID = &entryID
	m.state.txns[transactionID] = txn
	return true, nil
}

func (m *memStore) AnnotateSplitChild(_ context.Context, splitID, ledgerAccountID string) error {
	for txnID, children := range m.state.splits {
		for i := range children {
			if children[i].SplitID == splitID {
				id := ledgerAccountID
				children[i].LedgerAccountID = &id
				m.state.splits[txnID] = children
				return nil
			}
		}
	}
	return apperrors.NewNotFoundError("", "split not found")
}

func (m *memStore) tenantOwnsEntity(tenantID, entityID string) bool {
	entity, ok := m.state.entities[entityID]
	return ok && entity.TenantID == tenantID
}

func (m *memStore) FindAccountByID(_ context.Context, tenantID, accountID string) (*domain.LedgerAccount, error) {
	account, ok := m.state.accounts[accountID]
	if !ok || !m.tenantOwnsEntity(tenantID, account.EntityID) {
		return nil, apperrors.NewNotFoundError(apperrors.CodeAccountNotFound, "ledger account not found")
	}
	return &account, nil
}

func (m *memStore) FindAccountsByIDs(_ context.Context, tenantID string, ids []string) (map[string]domain.LedgerAccount, error) {
	out := map[string]domain.LedgerAccount{}
	for _, id := range ids {
		if account, ok := m.state.accounts[id]; ok && m.tenantOwnsEntity(tenantID, account.EntityID) {
			out[id] = account
		}
	}
	return out, nil
}

func (m *memStore) FindEntityByID(_ context.Context, tenantID, entityID string) (*domain.Entity, error) {
	if !m.tenantOwnsEntity(tenantID, entityID) {
		return nil, apperrors.NewNotFoundError(apperrors.CodeEntityNotFound, "entity not found")
	}
	entity := m.state.entities[entityID]
	return &entity, nil
}

func (m *memStore) FindJournalEntryByID(_ context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	entry, ok := m.state.entries[entryID]
	if !ok || entry.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError(apperrors.CodeJournalEntryNotFound, "journal entry not found")
	}
	return &entry, nil
}

func (m *memStore) ListJournalEntries(_ context.Context, tenantID, entityID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	var before int64
	if nextToken != nil {
		tokenEntityID, sequence, err := pagination.DecodeToken(*nextToken)
		if err != nil || tokenEntityID != entityID {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		before = sequence
	}

	var page []domain.JournalEntry
	for _, entry := range m.state.entries {
		if entry.TenantID == tenantID && entry.EntityID == entityID && (before == 0 || entry.EntrySequence < before) {
			entry.Lines = nil
			page = append(page, entry)
		}
	}
	sort.Slice(page, func(i, j int) bool { return page[i].EntrySequence > page[j].EntrySequence })

	var next *string
	if len(page) > limit {
		page = page[:limit]
		token := pagination.EncodeToken(entityID, page[limit-1].EntrySequence)
		next = &token
	}
	return page, next, nil
}

func (m *memStore) NextEntrySequence(_ context.Context, entityID string) (int64, error) {
	var highest int64
	for _, entry := range m.state.entries {
		if entry.EntityID == entityID && entry.EntrySequence > highest {
			highest = entry.EntrySequence
		}
	}
	return highest + 1, nil
}

func (m *memStore) SaveJournalEntry(_ context.Context, entry domain.JournalEntry) error {
	m.state.entries[entry.EntryID] = entry
	return nil
}

func (m *memStore) FindPeriodCoveringDate(_ context.Context, entityID string, date time.Time) (*domain.FiscalPeriod, error) {
	for _, p := range m.state.periods {
		if p.EntityID == entityID && p.Covers(date) {
			period := p
			return &period, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindPeriodForUpdate(_ context.Context, tenantID, periodID string) (*domain.FiscalPeriod, error) {
	p, ok := m.state.periods[periodID]
	if !ok || p.TenantID != tenantID {
		return nil, apperrors.NewNotFoundError(apperrors.CodeFiscalPeriodNotFound, "fiscal period not found")
	}
	return &p, nil
}

func (m *memStore) ListCalendarPeriods(_ context.Context, calendarID string) ([]domain.FiscalPeriod, error) {
	var out []domain.FiscalPeriod
	for _, p := range m.state.periods {
		if p.CalendarID == calendarID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodNumber < out[j].PeriodNumber })
	return out, nil
}

func (m *memStore) CalendarExists(_ context.Context, entityID string, fiscalYear int) (bool, error) {
	for _, c := range m.state.calendars {
		if c.EntityID == entityID && c.FiscalYear == fiscalYear {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) SaveCalendar(_ context.Context, calendar domain.FiscalCalendar) error {
	for _, p := range calendar.Periods {
		m.state.periods[p.PeriodID] = p
	}
	calendar.Periods = nil
	m.state.calendars[calendar.CalendarID] = calendar
	return nil
}

func (m *memStore) UpdatePeriodStatus(_ context.Context, period domain.FiscalPeriod) error {
	m.state.periods[period.PeriodID] = period
	return nil
}

func (m *memStore) FindLatestRate(_ context.Context, base, quote string, asOf time.Time) (*domain.ExchangeRate, error) {
	var best *domain.ExchangeRate
	for i := range m.state.rates {
		r := m.state.rates[i]
		if r.BaseCurrency != base || r.QuoteCurrency != quote || r.EffectiveDate.After(asOf) {
			continue
		}
		if best == nil || r.EffectiveDate.After(best.EffectiveDate) {
			best = &r
		}
	}
	if best == nil {
		return nil, apperrors.NewNotFoundError("", "exchange rate not found")
	}
	return best, nil
}

func (m *memStore) LockTenantChain(context.Context, string) error { return nil }

func (m *memStore) FindChainHead(_ context.Context, tenantID string) (*domain.AuditLogEntry, error) {
	var head *domain.AuditLogEntry
	for i := range m.state.audit {
		e := m.state.audit[i]
		if e.TenantID == tenantID {
			head = &e
		}
	}
	return head, nil
}

func (m *memStore) ListChain(_ context.Context, tenantID string) ([]domain.AuditLogEntry, error) {
	var out []domain.AuditLogEntry
	for _, e := range m.state.audit {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) InsertEntry(_ context.Context, entry domain.AuditLogEntry) error {
	m.state.audit = append(m.state.audit, entry)
	return nil
}

// fakeTxManager runs units of work one at a time against a copy of the state
// and commits the copy only when the work succeeds.
type fakeTxManager struct {
	mu      sync.Mutex
	state   *memState
	rates   portsrepo.ExchangeRateReader
	txCount int
	failAt  int // When set, the failAt-th and every later transaction fail
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

func newFakeTxManager(state *memState) *fakeTxManager {
	return &fakeTxManager{state: state}
}

func (f *fakeTxManager) WithinSerializableTx(ctx context.Context, fn portsrepo.TxFunc) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.txCount++
	if f.failAt > 0 && f.txCount >= f.failAt {
		return apperrors.NewAppError(500, "database unavailable", nil)
	}

	work := f.state.clone()
	if err := fn(ctx, &memStore{state: work, rates: f.rates}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.state = work
	return nil
}

func (f *fakeTxManager) Store() portsrepo.Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &memStore{state: f.state, rates: f.rates}
}

// committed returns the last committed state.
func (f *fakeTxManager) committed() *memState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// --- Mock ExchangeRateReader ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, base, quote string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, base, quote, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Fixtures ---

const (
	tenantID    = "tenant-1"
	otherTenant = "tenant-2"
	userID      = "user-1"
	entityCAD   = "entity-cad"
	entityOther = "entity-other"
)

var march14 = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// seedLedger returns a state with one CAD ledger and a handful of bank-feed transactions.
func seedLedger() *memState {
	s := newMemState()
	s.entities[entityCAD] = domain.Entity{EntityID: entityCAD, TenantID: tenantID, Name: "Maple Co", FunctionalCurrency: "CAD"}
	s.entities[entityOther] = domain.Entity{EntityID: entityOther, TenantID: tenantID, Name: "Other Co", FunctionalCurrency: "CAD"}
	s.entities["entity-t2"] = domain.Entity{EntityID: "entity-t2", TenantID: otherTenant, Name: "Foreign", FunctionalCurrency: "CAD"}

	for _, a := range []domain.LedgerAccount{
		{AccountID: "1000", EntityID: entityCAD, Code: "1000", Name: "Bank", Classification: domain.Asset, IsActive: true},
		{AccountID: "4000", EntityID: entityCAD, Code: "4000", Name: "Sales", Classification: domain.Revenue, IsActive: true},
		{AccountID: "5000", EntityID: entityCAD, Code: "5000", Name: "Meals", Classification: domain.Expense, IsActive: true},
		{AccountID: "5100", EntityID: entityCAD, Code: "5100", Name: "Travel", Classification: domain.Expense, IsActive: true},
		{AccountID: "5200", EntityID: entityCAD, Code: "5200", Name: "Supplies", Classification: domain.Expense, IsActive: true},
		{AccountID: "5999", EntityID: entityCAD, Code: "5999", Name: "Old", Classification: domain.Expense, IsActive: false},
		{AccountID: "9000", EntityID: entityOther, Code: "9000", Name: "Elsewhere", Classification: domain.Expense, IsActive: true},
		{AccountID: "t2-4000", EntityID: "entity-t2", Code: "4000", Name: "Other tenant", Classification: domain.Revenue, IsActive: true},
	} {
		s.accounts[a.AccountID] = a
	}

	for _, t := range []domain.SourceTransaction{
		{TransactionID: "txn-in", Amount: 3500, Currency: "CAD", Description: "Invoice 42"},
		{TransactionID: "txn-out", Amount: -4599, Currency: "CAD", Description: "Lunch"},
		{TransactionID: "txn-usd", Amount: 10000, Currency: "USD", Description: "US client"},
		{TransactionID: "txn-usd-out", Amount: -3, Currency: "USD", Description: "Tiny fees"},
		{TransactionID: "txn-usd-fees", Amount: -8, Currency: "USD", Description: "Card fees"},
		{TransactionID: "txn-zero", Amount: 0, Currency: "CAD", Description: "Nothing"},
	} {
		t.TenantID = tenantID
		t.BankAccountID = "bank-1"
		t.BankLedgerAccountID = strPtr("1000")
		t.Date = march14
		s.txns[t.TransactionID] = t
	}
	s.txns["txn-unmapped"] = domain.SourceTransaction{
		TransactionID: "txn-unmapped", TenantID: tenantID, BankAccountID: "bank-2",
		Date: march14, Amount: 100, Currency: "CAD",
	}
	deleted := march14
	s.txns["txn-deleted"] = domain.SourceTransaction{
		TransactionID: "txn-deleted", TenantID: tenantID, BankAccountID: "bank-1", BankLedgerAccountID: strPtr("1000"),
		Date: march14, Amount: 100, Currency: "CAD", DeletedAt: &deleted,
	}
	s.txns["txn-t2"] = domain.SourceTransaction{
		TransactionID: "txn-t2", TenantID: otherTenant, BankAccountID: "bank-9", BankLedgerAccountID: strPtr("t2-4000"),
		Date: march14, Amount: 100, Currency: "CAD",
	}
	return s
}

// addPeriod stores period number n of entityCAD, covering month n of 2025.
func addPeriod(s *memState, id string, number int, status domain.PeriodStatus) domain.FiscalPeriod {
	start := time.Date(2025, time.Month(number), 1, 0, 0, 0, 0, time.UTC)
	p := domain.FiscalPeriod{
		PeriodID:     id,
		CalendarID:   "cal-2025",
		TenantID:     tenantID,
		EntityID:     entityCAD,
		PeriodNumber: number,
		Name:         start.Format("2006-01"),
		StartDate:    start,
		EndDate:      start.AddDate(0, 1, -1),
		Status:       status,
	}
	s.periods[id] = p
	return p
}
