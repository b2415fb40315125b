package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is in a state that does not allow the operation.
var ErrConflict = errors.New("conflict")

// ErrCrossScope indicates that two referenced records belong to different ledgers.
var ErrCrossScope = errors.New("cross scope reference")

// ErrIntegrity indicates that persisted data failed an integrity check.
var ErrIntegrity = errors.New("integrity violation")

// ErrInternal indicates an unclassified failure.
var ErrInternal = errors.New("internal error")

// ErrRetryable marks failures caused by concurrent transactions that may succeed when retried.
var ErrRetryable = errors.New("transaction could not be serialized")

// Code is a stable, machine readable error code returned to callers.
type Code string

const (
	CodeSourceTransactionNotFound  Code = "SOURCE_TRANSACTION_NOT_FOUND"
	CodeSourceTransactionsNotFound Code = "SOURCE_TRANSACTIONS_NOT_FOUND"
	CodeAccountNotFound            Code = "ACCOUNT_NOT_FOUND"
	CodeEntityNotFound             Code = "ENTITY_NOT_FOUND"
	CodeJournalEntryNotFound       Code = "JOURNAL_ENTRY_NOT_FOUND"
	CodeFiscalPeriodNotFound       Code = "FISCAL_PERIOD_NOT_FOUND"

	CodeAlreadyPosted            Code = "ALREADY_POSTED"
	CodePeriodAlreadyLocked      Code = "PERIOD_ALREADY_LOCKED"
	CodePeriodClosed             Code = "PERIOD_CLOSED"
	CodePeriodAlreadyClosed      Code = "PERIOD_ALREADY_CLOSED"
	CodePeriodNotLocked          Code = "PERIOD_NOT_LOCKED"
	CodePreviousPeriodsNotClosed Code = "PREVIOUS_PERIODS_NOT_CLOSED"
	CodePeriodAlreadyOpen        Code = "PERIOD_ALREADY_OPEN"
	CodeFiscalPeriodClosed       Code = "FISCAL_PERIOD_CLOSED"
	CodeCalendarExists           Code = "FISCAL_CALENDAR_EXISTS"

	CodeMissingFXRate        Code = "MISSING_FX_RATE"
	CodeSplitAmountMismatch  Code = "SPLIT_AMOUNT_MISMATCH"
	CodeBankAccountNotMapped Code = "BANK_ACCOUNT_NOT_MAPPED"
	CodeAccountInactive      Code = "ACCOUNT_INACTIVE"
	CodeInvalidRequest       Code = "INVALID_REQUEST"
	CodeZeroAmount           Code = "ZERO_AMOUNT_TRANSACTION"
	CodeUnbalancedEntry      Code = "UNBALANCED_ENTRY"
	CodeAmountOverflow       Code = "AMOUNT_OVERFLOW"
	CodeCrossEntityReference Code = "CROSS_ENTITY_REFERENCE"
	CodeSerializationFailure Code = "SERIALIZATION_FAILURE"
	CodeInternal             Code = "INTERNAL_ERROR"
)

// AppError is the structured error returned by the core. Kind is one of the
// sentinel errors above so callers can classify it with errors.Is.
type AppError struct {
	StatusCode int
	Code       Code
	Kind       error
	Message    string
	Details    map[string]any
	Err        error
}

func (e *AppError) Error() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString(string(e.Code))
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Details[k])
		}
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the wrapped cause.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// WithDetail attaches one piece of structured context and returns the same error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewAppError creates an error with an HTTP status code, mapping the status to a kind.
func NewAppError(statusCode int, message string, err error) *AppError {
	kind := ErrInternal
	code := CodeInternal
	switch statusCode {
	case http.StatusNotFound:
		kind = ErrNotFound
		code = ""
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = ErrValidation
		code = CodeInvalidRequest
	case http.StatusConflict:
		kind = ErrConflict
		code = ""
	}
	return &AppError{StatusCode: statusCode, Code: code, Kind: kind, Message: message, Err: err}
}

// NewBusinessError creates a typed business-rule error.
func NewBusinessError(kind error, code Code, message string) *AppError {
	return &AppError{StatusCode: ToHTTPStatus(kind), Code: code, Kind: kind, Message: message}
}

// NewNotFoundError creates a NOT_FOUND error with the given code.
func NewNotFoundError(code Code, message string) *AppError {
	return NewBusinessError(ErrNotFound, code, message)
}

// NewValidationError creates a VALIDATION error with the generic request code.
func NewValidationError(message string) *AppError {
	return NewBusinessError(ErrValidation, CodeInvalidRequest, message)
}

// NewRetryableError wraps a serialization failure so callers can retry it.
func NewRetryableError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       CodeSerializationFailure,
		Kind:       ErrRetryable,
		Message:    "concurrent update detected, retry the request",
		Err:        err,
	}
}

// ToHTTPStatus maps an error kind to the status used by the HTTP adapter.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRetryable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrCrossScope), errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the stable code of the first AppError in the chain.
func CodeOf(err error) Code {
	if IsRetryable(err) {
		return CodeSerializationFailure
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != "" {
		return appErr.Code
	}
	return CodeInternal
}

// DetailsOf returns the structured details of the first AppError in the chain.
func DetailsOf(err error) map[string]any {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return nil
}

// IsBusiness reports whether err is a typed business-rule failure that must not be retried.
func IsBusiness(err error) bool {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrValidation, ErrCrossScope, ErrDuplicate} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateUniqueViolation      = "23505"
)

// Unique constraints whose violations mean a concurrent writer got there
// first. A retry either mints the next number or reports the transaction as
// already posted.
var retryableConstraints = map[string]struct{}{
	"journal_entries_entity_sequence_key":    {},
	"audit_logs_tenant_sequence_key":         {},
	"journal_entries_source_transaction_key": {},
}

// IsRetryable reports whether err was caused by a serialization conflict.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRetryable) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected:
		return true
	case sqlStateUniqueViolation:
		_, ok := retryableConstraints[pgErr.ConstraintName]
		return ok
	}
	return false
}
