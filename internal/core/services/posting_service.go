package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/SscSPs/mma_ledger_core/internal/utils/accounting"
)

// postingService turns bank-feed source transactions into posted journal entries.
type postingService struct {
	txManager portsrepo.TransactionManager
	rates     portssvc.RateResolverSvc
	gate      portssvc.FiscalGate
	audit     portssvc.AuditAppender
	now       func() time.Time
}

// PostingServiceOption configures the posting service.
type PostingServiceOption func(*postingService)

// WithPostingClock overrides the clock used for entry timestamps.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates a new PostingSvcFacade.
func NewPostingService(txManager portsrepo.TransactionManager, rates portssvc.RateResolverSvc, gate portssvc.FiscalGate, audit portssvc.AuditAppender, opts ...PostingServiceOption) portssvc.PostingSvcFacade {
	s := &postingService{
		txManager: txManager,
		rates:     rates,
		gate:      gate,
		audit:     audit,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// postingInput is everything needed to post one source transaction once its
// accounts have been validated.
type postingInput struct {
	tenantID string
	userID   string
	txn      domain.SourceTransaction
	bank     domain.LedgerAccount
	targets  []accounting.TargetLine
	override *decimal.Decimal
}

// PostTransaction posts one source transaction against one target account.
// Implements portssvc.PostingWriterSvc
func (s *postingService) PostTransaction(ctx context.Context, tenantID string, req dto.PostTransactionRequest, userID string) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result *domain.PostingResult
	err := s.txManager.WithinSerializableTx(ctx, func(ctx context.Context, store portsrepo.Store) error {
		txn, err := s.loadUnposted(ctx, store, tenantID, req.SourceTransactionID)
		if err != nil {
			return err
		}

		bank, err := s.resolveBankAccount(ctx, store, tenantID, *txn)
		if err != nil {
			return err
		}

		target, err := store.LedgerAccounts().FindAccountByID(ctx, tenantID, req.TargetAccountID)
		if err != nil {
			return err
		}
		if err := checkTargetAccount(*target, bank.EntityID); err != nil {
			return err
		}

		result, err = s.post(ctx, store, postingInput{
			tenantID: tenantID,
			userID:   userID,
			txn:      *txn,
			bank:     *bank,
			targets:  []accounting.TargetLine{{AccountID: target.AccountID, Amount: txn.AbsAmount()}},
			override: req.RateOverride,
		})
		return err
	})
	if err != nil {
		logFailure(logger, "Failed to post source transaction", err, slog.String("tenant_id", tenantID), slog.String("source_transaction_id", req.SourceTransactionID))
		return nil, err
	}

	logger.Info("Source transaction posted", slog.String("tenant_id", tenantID), slog.String("source_transaction_id", req.SourceTransactionID), slog.String("entry_number", result.EntryNumber))
	return result, nil
}

// PostBulk posts every listed source transaction against one shared target
// account. Either every transaction is posted or none is.
// Implements portssvc.PostingWriterSvc
func (s *postingService) PostBulk(ctx context.Context, tenantID string, req dto.PostBulkRequest, userID string) ([]domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var results []domain.PostingResult
	err := s.txManager.WithinSerializableTx(ctx, func(ctx context.Context, store portsrepo.Store) error {
		results = make([]domain.PostingResult, 0, len(req.SourceTransactionIDs))

		found, err := store.SourceTransactions().FindManyForUpdate(ctx, tenantID, req.SourceTransactionIDs)
		if err != nil {
			return err
		}
		byID := make(map[string]domain.SourceTransaction, len(found))
		for _, txn := range found {
			byID[txn.TransactionID] = txn
		}

		var missing, posted []string
		for _, id := range req.SourceTransactionIDs {
			txn, ok := byID[id]
			switch {
			case !ok:
				missing = append(missing, id)
			case txn.IsPosted():
				posted = append(posted, id)
			}
		}
		if len(missing) > 0 {
			return apperrors.NewBusinessError(apperrors.ErrNotFound, apperrors.CodeSourceTransactionsNotFound, "some source transactions were not found").
				WithDetail("missingIds", missing)
		}
		if len(posted) > 0 {
			return apperrors.NewBusinessError(apperrors.ErrConflict, apperrors.CodeAlreadyPosted, "some source transactions are already posted").
				WithDetail("postedIds", posted)
		}

		target, err := store.LedgerAccounts().FindAccountByID(ctx, tenantID, req.TargetAccountID)
		if err != nil {
			return err
		}

		banks, err := s.resolveBankAccounts(ctx, store, tenantID, req.SourceTransactionIDs, byID)
		if err != nil {
			return err
		}

		for _, id := range req.SourceTransactionIDs {
			txn := byID[id]
			bank := banks[*txn.BankLedgerAccountID]
			if err := checkTargetAccount(*target, bank.EntityID); err != nil {
				return err
			}

			result, err := s.post(ctx, store, postingInput{
				tenantID: tenantID,
				userID:   userID,
				txn:      txn,
				bank:     bank,
				targets:  []accounting.TargetLine{{AccountID: target.AccountID, Amount: txn.AbsAmount()}},
				override: req.RateOverride,
			})
			if err != nil {
				return err
			}
			results = append(results, *result)
		}
		return nil
	})
	if err != nil {
		logFailure(logger, "Failed to bulk post source transactions", err, slog.String("tenant_id", tenantID), slog.Int("count", len(req.SourceTransactionIDs)))
		return nil, err
	}

	logger.Info("Source transactions bulk posted", slog.String("tenant_id", tenantID), slog.Int("count", len(results)))
	return results, nil
}

// PostSplit posts one source transaction across several target accounts.
// Once committed, the transaction's split records are annotated with the
// accounts they were posted to.
// Implements portssvc.PostingWriterSvc
func (s *postingService) PostSplit(ctx context.Context, tenantID string, req dto.PostSplitRequest, userID string) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result *domain.PostingResult
	err := s.txManager.WithinSerializableTx(ctx, func(ctx context.Context, store portsrepo.Store) error {
		txn, err := s.loadUnposted(ctx, store, tenantID, req.SourceTransactionID)
		if err != nil {
			return err
		}

		targets := make([]accounting.TargetLine, len(req.Splits))
		amounts := make([]int64, len(req.Splits))
		for i, split := range req.Splits {
			targets[i] = accounting.TargetLine{AccountID: split.AccountID, Amount: split.Amount, Memo: split.Memo}
			amounts[i] = split.Amount
		}
		splitTotal, err := accounting.Sum(amounts)
		if err != nil {
			return apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeSplitAmountMismatch, "split amounts exceed the representable range").
				WithDetail("transactionAmount", txn.AbsAmount())
		}
		if splitTotal != txn.AbsAmount() {
			return apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeSplitAmountMismatch, "split amounts do not add up to the transaction amount").
				WithDetail("transactionAmount", txn.AbsAmount()).
				WithDetail("splitTotal", splitTotal)
		}

		bank, err := s.resolveBankAccount(ctx, store, tenantID, *txn)
		if err != nil {
			return err
		}

		accountIDs := make([]string, 0, len(targets))
		for _, target := range targets {
			accountIDs = append(accountIDs, target.AccountID)
		}
		accounts, err := store.LedgerAccounts().FindAccountsByIDs(ctx, tenantID, uniqueStrings(accountIDs))
		if err != nil {
			return err
		}
		for _, target := range targets {
			account, ok := accounts[target.AccountID]
			if !ok {
				return apperrors.NewNotFoundError(apperrors.CodeAccountNotFound, "ledger account not found").
					WithDetail("accountId", target.AccountID)
			}
			if err := checkTargetAccount(account, bank.EntityID); err != nil {
				return err
			}
		}

		result, err = s.post(ctx, store, postingInput{
			tenantID: tenantID,
			userID:   userID,
			txn:      *txn,
			bank:     *bank,
			targets:  targets,
			override: req.RateOverride,
		})
		return err
	})
	if err != nil {
		logFailure(logger, "Failed to split post source transaction", err, slog.String("tenant_id", tenantID), slog.String("source_transaction_id", req.SourceTransactionID))
		return nil, err
	}

	logger.Info("Source transaction split posted", slog.String("tenant_id", tenantID), slog.String("source_transaction_id", req.SourceTransactionID), slog.String("entry_number", result.EntryNumber), slog.Int("splits", len(req.Splits)))

	s.annotateSplitChildren(ctx, req.SourceTransactionID, req.Splits)
	return result, nil
}

// GetEntry retrieves a posted entry with its lines.
// Implements portssvc.PostingReaderSvc
func (s *postingService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.txManager.Store().Journals().FindJournalEntryByID(ctx, tenantID, entryID)
	if err != nil {
		logFailure(logger, "Failed to get journal entry", err, slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

// ListEntries pages through the posted entries of one of the tenant's entities.
// Implements portssvc.PostingReaderSvc
func (s *postingService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := params.Validate(); err != nil {
		logger.Warn("Invalid list entries request", slog.String("error", err.Error()))
		return nil, err
	}

	store := s.txManager.Store()
	if _, err := store.LedgerAccounts().FindEntityByID(ctx, tenantID, params.EntityID); err != nil {
		logFailure(logger, "Failed to list journal entries", err, slog.String("entity_id", params.EntityID))
		return nil, err
	}

	entries, nextToken, err := store.Journals().ListJournalEntries(ctx, tenantID, params.EntityID, params.Limit, params.NextToken)
	if err != nil {
		logFailure(logger, "Failed to list journal entries", err, slog.String("entity_id", params.EntityID))
		return nil, err
	}
	return &dto.ListEntriesResponse{Entries: entries, NextToken: nextToken}, nil
}

// post builds, validates and stores the journal entry for one source
// transaction, links the transaction to it and records the audit entry. It
// runs inside the caller's transaction.
func (s *postingService) post(ctx context.Context, store portsrepo.Store, in postingInput) (*domain.PostingResult, error) {
	txn := in.txn
	if txn.Amount == 0 {
		return nil, apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeZeroAmount, "source transaction has no amount to post").
			WithDetail("transactionId", txn.TransactionID)
	}

	entity, err := store.LedgerAccounts().FindEntityByID(ctx, in.tenantID, in.bank.EntityID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.CheckPostingDate(ctx, store, entity.EntityID, txn.Date); err != nil {
		return nil, err
	}

	rate, err := s.rates.ResolveRate(ctx, store, txn.Currency, entity.FunctionalCurrency, txn.Date, in.override)
	if err != nil {
		return nil, err
	}

	sequence, err := store.Journals().NextEntrySequence(ctx, entity.EntityID)
	if err != nil {
		return nil, fmt.Errorf("mint entry number: %w", err)
	}

	snapshot, err := txn.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot source transaction: %v", apperrors.ErrInternal, err)
	}

	entryID := uuid.NewString()
	lines, err := accounting.BuildLines(accounting.PostingLines{
		EntryID:       entryID,
		BankAccountID: in.bank.AccountID,
		Inflow:        txn.IsInflow(),
		Currency:      txn.Currency,
		Rate:          rate,
		Targets:       in.targets,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEntryUnbalanced) {
			return nil, apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeUnbalancedEntry, err.Error())
		}
		if errors.Is(err, domain.ErrAmountOverflow) {
			return nil, apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeAmountOverflow, err.Error()).
				WithDetail("transactionId", txn.TransactionID)
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	now := s.now()
	sourceID := txn.TransactionID
	entry := domain.JournalEntry{
		EntryID:             entryID,
		TenantID:            in.tenantID,
		EntityID:            entity.EntityID,
		EntrySequence:       sequence,
		EntryNumber:         domain.FormatEntryNumber(sequence),
		TransactionDate:     txn.Date,
		Memo:                txn.Description,
		Source:              domain.SourceBankFeed,
		SourceTransactionID: &sourceID,
		SourceSnapshot:      snapshot,
		Status:              domain.Posted,
		Lines:               lines,
		AuditFields:         domain.NewAuditFields(in.userID, now),
	}

	if err := store.Journals().SaveJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("save journal entry: %w", err)
	}

	linked, err := store.SourceTransactions().LinkJournalEntry(ctx, in.tenantID, txn.TransactionID, entryID)
	if err != nil {
		return nil, fmt.Errorf("link source transaction: %w", err)
	}
	if !linked {
		return nil, alreadyPosted(txn.TransactionID, nil)
	}

	if _, err := s.audit.Append(ctx, store, domain.AuditRecord{
		TenantID: in.tenantID,
		UserID:   in.userID,
		EntityID: &entry.EntityID,
		Model:    domain.AuditModelJournalEntry,
		RecordID: entry.EntryID,
		Action:   domain.AuditPost,
		After:    entry,
	}); err != nil {
		return nil, fmt.Errorf("append audit entry: %w", err)
	}

	result := &domain.PostingResult{
		EntryID:             entry.EntryID,
		EntryNumber:         entry.EntryNumber,
		EntityID:            entry.EntityID,
		SourceTransactionID: txn.TransactionID,
		Status:              entry.Status,
		Lines:               lines,
	}
	if rate.NeedsConversion() {
		r := rate.Rate
		result.ExchangeRate = &r
	}
	return result, nil
}

// loadUnposted locks the source transaction and rejects one that is already posted.
func (s *postingService) loadUnposted(ctx context.Context, store portsrepo.Store, tenantID, transactionID string) (*domain.SourceTransaction, error) {
	txn, err := store.SourceTransactions().FindForUpdate(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsPosted() {
		return nil, alreadyPosted(txn.TransactionID, txn.JournalEntryID)
	}
	return txn, nil
}

// resolveBankAccount returns the ledger account the transaction's bank account is mapped to.
func (s *postingService) resolveBankAccount(ctx context.Context, store portsrepo.Store, tenantID string, txn domain.SourceTransaction) (*domain.LedgerAccount, error) {
	if txn.BankLedgerAccountID == nil {
		return nil, bankNotMapped([]string{txn.BankAccountID})
	}
	return store.LedgerAccounts().FindAccountByID(ctx, tenantID, *txn.BankLedgerAccountID)
}

// resolveBankAccounts resolves the mapped ledger accounts of many
// transactions, reporting every unmapped bank account at once.
func (s *postingService) resolveBankAccounts(ctx context.Context, store portsrepo.Store, tenantID string, ids []string, byID map[string]domain.SourceTransaction) (map[string]domain.LedgerAccount, error) {
	var unmapped, ledgerIDs []string
	for _, id := range ids {
		txn := byID[id]
		if txn.BankLedgerAccountID == nil {
			unmapped = append(unmapped, txn.BankAccountID)
			continue
		}
		ledgerIDs = append(ledgerIDs, *txn.BankLedgerAccountID)
	}
	if len(unmapped) > 0 {
		return nil, bankNotMapped(uniqueStrings(unmapped))
	}

	ledgerIDs = uniqueStrings(ledgerIDs)
	accounts, err := store.LedgerAccounts().FindAccountsByIDs(ctx, tenantID, ledgerIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range ledgerIDs {
		if _, ok := accounts[id]; !ok {
			return nil, apperrors.NewNotFoundError(apperrors.CodeAccountNotFound, "mapped bank ledger account not found").
				WithDetail("accountId", id)
		}
	}
	return accounts, nil
}

// checkTargetAccount requires an active account on the bank account's ledger.
func checkTargetAccount(account domain.LedgerAccount, entityID string) error {
	if !account.IsActive {
		return apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeAccountInactive, "ledger account is inactive").
			WithDetail("accountId", account.AccountID)
	}
	if account.EntityID != entityID {
		return apperrors.NewBusinessError(apperrors.ErrCrossScope, apperrors.CodeCrossEntityReference, "ledger account belongs to a different ledger than the bank account").
			WithDetail("accountId", account.AccountID).
			WithDetail("accountEntityId", account.EntityID).
			WithDetail("bankEntityId", entityID)
	}
	return nil
}

// annotateSplitChildren records the resolved account on each split record,
// matched by creation order. It runs after the posting committed, so a
// failure is logged and never undoes the posting.
func (s *postingService) annotateSplitChildren(ctx context.Context, transactionID string, splits []dto.SplitRequest) {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.txManager.WithinSerializableTx(ctx, func(ctx context.Context, store portsrepo.Store) error {
		children, err := store.SourceTransactions().ListSplitChildren(ctx, transactionID)
		if err != nil {
			return err
		}
		if len(children) != len(splits) {
			logger.Warn("Split record count differs from posted splits",
				slog.String("source_transaction_id", transactionID),
				slog.Int("records", len(children)),
				slog.Int("splits", len(splits)),
			)
		}
		for i, child := range children {
			if i >= len(splits) {
				break
			}
			if err := store.SourceTransactions().AnnotateSplitChild(ctx, child.SplitID, splits[i].AccountID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("Failed to annotate split records", slog.String("source_transaction_id", transactionID), slog.String("error", err.Error()))
	}
}

func alreadyPosted(transactionID string, entryID *string) *apperrors.AppError {
	err := apperrors.NewBusinessError(apperrors.ErrConflict, apperrors.CodeAlreadyPosted, "source transaction is already posted").
		WithDetail("transactionId", transactionID)
	if entryID != nil {
		err.WithDetail("journalEntryId", *entryID)
	}
	return err
}

func bankNotMapped(bankAccountIDs []string) *apperrors.AppError {
	return apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeBankAccountNotMapped, "bank account is not mapped to a ledger account").
		WithDetail("bankAccountIds", bankAccountIDs)
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
