package dto

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateStruct runs the struct tags of req and converts failures into a
// VALIDATION error listing every offending field.
func validateStruct(req any) error {
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace())
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return apperrors.NewValidationError(strings.Join(msgs, "; ")).WithDetail("fields", fields)
}

func validateRateOverride(rate *decimal.Decimal) error {
	if rate != nil && !rate.IsPositive() {
		return apperrors.NewValidationError("rate override must be positive").WithDetail("rateOverride", rate.String())
	}
	return nil
}
