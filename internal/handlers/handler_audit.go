package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// registerAuditRoutes registers the audit chain verification route.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := &auditHandler{auditService: auditService}
	rg.GET("/audit/verify", h.verify)
}

// verify godoc
// @Summary Verify the audit chain
// @Description Walks the caller's tenant hash chain. A broken chain is still a 200; the report carries the first invalid entry
// @Tags audit
// @Produce  json
// @Success 200 {object} domain.VerificationReport
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal server error"
// @Security BearerAuth
// @Router /audit/verify [get]
func (h *auditHandler) verify(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	report, err := h.auditService.Verify(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Verifying audit chain")
		return
	}

	if !report.Valid {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Audit chain verification failed",
			slog.String("reason", report.Reason),
			slog.Int("checked_entries", report.CheckedEntries))
	}
	c.JSON(http.StatusOK, report)
}
