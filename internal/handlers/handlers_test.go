package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
	"github.com/SscSPs/mma_ledger_core/internal/handlers"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/SscSPs/mma_ledger_core/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostTransaction(ctx context.Context, tenantID string, req dto.PostTransactionRequest, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) PostBulk(ctx context.Context, tenantID string, req dto.PostBulkRequest, userID string) ([]domain.PostingResult, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) PostSplit(ctx context.Context, tenantID string, req dto.PostSplitRequest, userID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockPostingService) GetEntry(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Mock FiscalPeriodService ---
type MockFiscalPeriodService struct {
	mock.Mock
}

func (m *MockFiscalPeriodService) CheckPostingDate(ctx context.Context, store portsrepo.Store, entityID string, date time.Time) error {
	args := m.Called(ctx, store, entityID, date)
	return args.Error(0)
}

func (m *MockFiscalPeriodService) CreateCalendar(ctx context.Context, tenantID string, req dto.CreateFiscalCalendarRequest, userID string) (*domain.FiscalCalendar, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalCalendar), args.Error(1)
}

func (m *MockFiscalPeriodService) LockPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error) {
	return m.period(m.Called(ctx, tenantID, periodID, userID))
}

func (m *MockFiscalPeriodService) ClosePeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error) {
	return m.period(m.Called(ctx, tenantID, periodID, userID))
}

func (m *MockFiscalPeriodService) ReopenPeriod(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error) {
	return m.period(m.Called(ctx, tenantID, periodID, userID))
}

func (m *MockFiscalPeriodService) period(args mock.Arguments) (*domain.FiscalPeriod, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

var _ portssvc.FiscalPeriodSvcFacade = (*MockFiscalPeriodService)(nil)

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Append(ctx context.Context, store portsrepo.Store, rec domain.AuditRecord) (*domain.AuditLogEntry, error) {
	args := m.Called(ctx, store, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditLogEntry), args.Error(1)
}

func (m *MockAuditService) Record(ctx context.Context, rec domain.AuditRecord) (*domain.AuditLogEntry, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditLogEntry), args.Error(1)
}

func (m *MockAuditService) Verify(ctx context.Context, tenantID string) (*domain.VerificationReport, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationReport), args.Error(1)
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

const (
	testJWTSecret = "handler-test-secret"
	testIssuer    = "ledger-test"
	testTenantID  = "tenant-1"
	testUserID    = "user-1"
)

type HandlersTestSuite struct {
	suite.Suite
	router  *gin.Engine
	posting *MockPostingService
	fiscal  *MockFiscalPeriodService
	audit   *MockAuditService
	token   string
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.posting = new(MockPostingService)
	suite.fiscal = new(MockFiscalPeriodService)
	suite.audit = new(MockAuditService)

	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: testIssuer}
	container := &portssvc.ServiceContainer{
		Posting:      suite.posting,
		FiscalPeriod: suite.fiscal,
		Audit:        suite.audit,
	}
	limiterInstance, err := middleware.NewLimiter("1000-M")
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, limiterInstance)

	claims := middleware.TenantClaims{
		TenantID: testTenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   testUserID,
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	suite.token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	suite.Require().NoError(err)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.posting.AssertExpectations(suite.T())
	suite.fiscal.AssertExpectations(suite.T())
	suite.audit.AssertExpectations(suite.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *HandlersTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestSwaggerDoc() {
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	suite.Equal("/api/v1", doc.BasePath)
	for path, method := range map[string]string{
		"/postings":                       "post",
		"/postings/bulk":                  "post",
		"/postings/split":                 "post",
		"/entries":                        "get",
		"/entries/{entryID}":              "get",
		"/fiscal-calendars":               "post",
		"/fiscal-periods/{periodID}/lock": "post",
		"/audit/verify":                   "get",
	} {
		suite.Contains(doc.Paths[path], method, path)
	}
}

func (suite *HandlersTestSuite) TestSwaggerDoc_HiddenInProduction() {
	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: testIssuer, IsProduction: true}
	router := gin.New()
	handlers.RegisterRoutes(router, cfg, &portssvc.ServiceContainer{
		Posting:      suite.posting,
		FiscalPeriod: suite.fiscal,
		Audit:        suite.audit,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestPostTransaction_Success() {
	req := dto.PostTransactionRequest{SourceTransactionID: "txn-1", TargetAccountID: "acc-expense"}
	result := &domain.PostingResult{
		EntryID:             "entry-1",
		EntryNumber:         "JE-001",
		EntityID:            "entity-1",
		SourceTransactionID: "txn-1",
		Status:              domain.Posted,
	}
	suite.posting.On("PostTransaction", mock.Anything, testTenantID, req, testUserID).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings", `{"sourceTransactionID":"txn-1","targetAccountID":"acc-expense"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.PostingResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("JE-001", got.EntryNumber)
	suite.Equal("entry-1", got.EntryID)
}

func (suite *HandlersTestSuite) TestPostTransaction_RateOverridePassedThrough() {
	suite.posting.On("PostTransaction", mock.Anything, testTenantID,
		mock.MatchedBy(func(r dto.PostTransactionRequest) bool {
			return r.RateOverride != nil && r.RateOverride.Equal(decimal.RequireFromString("1.35"))
		}), testUserID).
		Return(&domain.PostingResult{EntryID: "entry-1"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings", `{"sourceTransactionID":"txn-1","targetAccountID":"acc-expense","rateOverride":"1.35"}`)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlersTestSuite) TestPostTransaction_Errors() {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantCode      string
		wantRetryable bool
		wantMessage   string
	}{
		{
			name: "missing rate",
			err: apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeMissingFXRate, "no exchange rate available").
				WithDetail("from", "USD").WithDetail("to", "CAD"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "MISSING_FX_RATE",
			wantMessage: "no exchange rate available",
		},
		{
			name:        "already posted",
			err:         apperrors.NewBusinessError(apperrors.ErrConflict, apperrors.CodeAlreadyPosted, "source transaction is already posted"),
			wantStatus:  http.StatusConflict,
			wantCode:    "ALREADY_POSTED",
			wantMessage: "source transaction is already posted",
		},
		{
			name:        "not found",
			err:         apperrors.NewNotFoundError(apperrors.CodeSourceTransactionNotFound, "source transaction not found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "SOURCE_TRANSACTION_NOT_FOUND",
			wantMessage: "source transaction not found",
		},
		{
			name:          "serialization failure",
			err:           apperrors.NewRetryableError(errors.New("could not serialize access")),
			wantStatus:    http.StatusServiceUnavailable,
			wantCode:      "SERIALIZATION_FAILURE",
			wantRetryable: true,
			wantMessage:   "concurrent update detected, retry the request",
		},
		{
			name:        "unclassified failure",
			err:         errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.posting.On("PostTransaction", mock.Anything, testTenantID, mock.Anything, testUserID).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/postings", `{"sourceTransactionID":"txn-1","targetAccountID":"acc-expense"}`)

			suite.Equal(tt.wantStatus, w.Code)
			body := suite.decodeError(w)
			suite.Equal(tt.wantCode, body["code"])
			suite.Equal(tt.wantRetryable, body["retryable"])
			suite.Equal(tt.wantMessage, body["message"])
			suite.NotContains(w.Body.String(), "connection reset")
		})
	}
}

func (suite *HandlersTestSuite) TestPostTransaction_ErrorDetails() {
	err := apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeMissingFXRate, "no exchange rate available").
		WithDetail("from", "USD").
		WithDetail("to", "CAD")
	suite.posting.On("PostTransaction", mock.Anything, testTenantID, mock.Anything, testUserID).Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings", `{"sourceTransactionID":"txn-1","targetAccountID":"acc-expense"}`)

	body := suite.decodeError(w)
	suite.Equal(map[string]any{"from": "USD", "to": "CAD"}, body["details"])
}

func (suite *HandlersTestSuite) TestPostTransaction_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/v1/postings", `{"sourceTransactionID":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_REQUEST", suite.decodeError(w)["code"])
	suite.posting.AssertNotCalled(suite.T(), "PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestPostTransaction_Unauthorized() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/postings", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestPostBulk_Success() {
	req := dto.PostBulkRequest{SourceTransactionIDs: []string{"txn-1", "txn-2"}, TargetAccountID: "acc-expense"}
	results := []domain.PostingResult{
		{EntryID: "entry-1", EntryNumber: "JE-001", SourceTransactionID: "txn-1"},
		{EntryID: "entry-2", EntryNumber: "JE-002", SourceTransactionID: "txn-2"},
	}
	suite.posting.On("PostBulk", mock.Anything, testTenantID, req, testUserID).Return(results, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/bulk", `{"sourceTransactionIDs":["txn-1","txn-2"],"targetAccountID":"acc-expense"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.BulkPostingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(2, got.Count)
	suite.Equal("JE-002", got.Results[1].EntryNumber)
}

func (suite *HandlersTestSuite) TestPostBulk_MissingTransactions() {
	err := apperrors.NewNotFoundError(apperrors.CodeSourceTransactionsNotFound, "source transactions not found").
		WithDetail("missingIds", []string{"ghost-1"})
	suite.posting.On("PostBulk", mock.Anything, testTenantID, mock.Anything, testUserID).Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/bulk", `{"sourceTransactionIDs":["txn-1","ghost-1"],"targetAccountID":"acc-expense"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	body := suite.decodeError(w)
	suite.Equal("SOURCE_TRANSACTIONS_NOT_FOUND", body["code"])
	suite.Equal(map[string]any{"missingIds": []any{"ghost-1"}}, body["details"])
}

func (suite *HandlersTestSuite) TestPostSplit_Mismatch() {
	err := apperrors.NewBusinessError(apperrors.ErrValidation, apperrors.CodeSplitAmountMismatch, "split amounts do not add up to the transaction amount").
		WithDetail("transactionAmount", int64(4599)).
		WithDetail("splitTotal", int64(4500))
	suite.posting.On("PostSplit", mock.Anything, testTenantID,
		mock.MatchedBy(func(r dto.PostSplitRequest) bool { return len(r.Splits) == 2 }), testUserID).
		Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/v1/postings/split",
		`{"sourceTransactionID":"txn-1","splits":[{"accountID":"a","amount":3000},{"accountID":"b","amount":1500}]}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	body := suite.decodeError(w)
	suite.Equal("SPLIT_AMOUNT_MISMATCH", body["code"])
	suite.Equal(map[string]any{"transactionAmount": float64(4599), "splitTotal": float64(4500)}, body["details"])
}

func (suite *HandlersTestSuite) TestGetEntry() {
	entry := &domain.JournalEntry{EntryID: "entry-1", EntryNumber: "JE-001", TenantID: testTenantID}
	suite.posting.On("GetEntry", mock.Anything, testTenantID, "entry-1").Return(entry, nil).Once()
	suite.posting.On("GetEntry", mock.Anything, testTenantID, "missing").
		Return(nil, apperrors.NewNotFoundError(apperrors.CodeJournalEntryNotFound, "journal entry not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries/entry-1", "")
	suite.Equal(http.StatusOK, w.Code)
	var got dto.JournalEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("JE-001", got.Entry.EntryNumber)

	w = suite.do(http.MethodGet, "/api/v1/entries/missing", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("JOURNAL_ENTRY_NOT_FOUND", suite.decodeError(w)["code"])
}

func (suite *HandlersTestSuite) TestListEntries() {
	next := "ZW50aXR5LTF8Mg"
	page := &dto.ListEntriesResponse{
		Entries:   []domain.JournalEntry{{EntryID: "entry-3", EntryNumber: "JE-003"}},
		NextToken: &next,
	}
	suite.posting.On("ListEntries", mock.Anything, testTenantID,
		mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.EntityID == "entity-1" && p.Limit == 1 && p.NextToken != nil && *p.NextToken == "abc"
		})).
		Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries?entityID=entity-1&limit=1&nextToken=abc", "")

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got.Entries, 1)
	suite.Equal("JE-003", got.Entries[0].EntryNumber)
	suite.Require().NotNil(got.NextToken)
	suite.Equal(next, *got.NextToken)
}

func (suite *HandlersTestSuite) TestListEntries_BadLimit() {
	w := suite.do(http.MethodGet, "/api/v1/entries?entityID=entity-1&limit=many", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_REQUEST", suite.decodeError(w)["code"])
}

func (suite *HandlersTestSuite) TestCreateCalendar() {
	req := dto.CreateFiscalCalendarRequest{EntityID: "entity-1", FiscalYear: 2025, StartMonth: 4}
	calendar := &domain.FiscalCalendar{CalendarID: "cal-1", EntityID: "entity-1", FiscalYear: 2025}
	suite.fiscal.On("CreateCalendar", mock.Anything, testTenantID, req, testUserID).Return(calendar, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/fiscal-calendars", `{"entityID":"entity-1","fiscalYear":2025,"startMonth":4}`)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.FiscalCalendar
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("cal-1", got.CalendarID)
}

func (suite *HandlersTestSuite) TestPeriodTransitions() {
	locked := &domain.FiscalPeriod{PeriodID: "p-1", Status: domain.PeriodLocked}
	closed := &domain.FiscalPeriod{PeriodID: "p-1", Status: domain.PeriodClosed}
	opened := &domain.FiscalPeriod{PeriodID: "p-1", Status: domain.PeriodOpen}
	suite.fiscal.On("LockPeriod", mock.Anything, testTenantID, "p-1", testUserID).Return(locked, nil).Once()
	suite.fiscal.On("ClosePeriod", mock.Anything, testTenantID, "p-1", testUserID).Return(closed, nil).Once()
	suite.fiscal.On("ReopenPeriod", mock.Anything, testTenantID, "p-1", testUserID).Return(opened, nil).Once()
	suite.fiscal.On("LockPeriod", mock.Anything, testTenantID, "p-2", testUserID).
		Return(nil, apperrors.NewBusinessError(apperrors.ErrConflict, apperrors.CodePeriodAlreadyLocked, "period is already locked")).Once()

	for path, want := range map[string]domain.PeriodStatus{
		"/api/v1/fiscal-periods/p-1/lock":   domain.PeriodLocked,
		"/api/v1/fiscal-periods/p-1/close":  domain.PeriodClosed,
		"/api/v1/fiscal-periods/p-1/reopen": domain.PeriodOpen,
	} {
		w := suite.do(http.MethodPost, path, "")
		suite.Equal(http.StatusOK, w.Code, path)
		var got domain.FiscalPeriod
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
		suite.Equal(want, got.Status, path)
	}

	w := suite.do(http.MethodPost, "/api/v1/fiscal-periods/p-2/lock", "")
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("PERIOD_ALREADY_LOCKED", suite.decodeError(w)["code"])
}

func (suite *HandlersTestSuite) TestVerifyAuditChain() {
	invalidID := "audit-2"
	report := &domain.VerificationReport{
		TenantID:            testTenantID,
		Valid:               false,
		TotalEntries:        3,
		CheckedEntries:      2,
		FirstInvalidEntryID: &invalidID,
		Reason:              domain.ReasonIntegrityMismatch,
	}
	suite.audit.On("Verify", mock.Anything, testTenantID).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/audit/verify", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"tenantID":"tenant-1","valid":false,"totalEntries":3,"checkedEntries":2,"firstInvalidEntryID":"audit-2","reason":"integrity mismatch"}`, w.Body.String())
}
