package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code      apperrors.Code `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Retryable bool           `json:"retryable"`
}

// respondError writes err with the status of its kind. Internal failures are
// logged in full and reported with a generic message.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.ToHTTPStatus(err)
	body := errorResponse{
		Code:      apperrors.CodeOf(err),
		Details:   apperrors.DetailsOf(err),
		Retryable: apperrors.IsRetryable(err),
	}

	var appErr *apperrors.AppError
	switch {
	case body.Retryable:
		logger.Warn(action+" hit a concurrent update", slog.String("error", err.Error()))
		body.Message = "concurrent update detected, retry the request"
	case apperrors.IsBusiness(err) && errors.As(err, &appErr):
		logger.Warn(action+" rejected", slog.String("code", string(body.Code)), slog.String("error", err.Error()))
		body.Message = appErr.Message
	default:
		logger.Error(action+" failed", slog.String("error", err.Error()))
		body.Code = apperrors.CodeInternal
		body.Details = nil
		body.Message = "internal server error"
	}
	c.JSON(status, body)
}

// bindJSON decodes the request body, answering 400 on malformed JSON.
func bindJSON(c *gin.Context, req any, action string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errorResponse{
			Code:    apperrors.CodeInvalidRequest,
			Message: "invalid request format",
		})
		return false
	}
	return true
}

// identity returns the tenant and user the request was authenticated for.
func identity(c *gin.Context) (tenantID, userID string, ok bool) {
	tenantID, tenantOK := middleware.GetTenantIDFromContext(c)
	userID, userOK := middleware.GetUserIDFromContext(c)
	if !tenantOK || !userOK {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return tenantID, userID, true
}
