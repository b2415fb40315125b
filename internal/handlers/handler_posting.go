package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/mma_ledger_core/internal/apperrors"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler handles HTTP requests that post source transactions.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(ps portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{
		postingService: ps,
	}
}

// registerPostingRoutes registers routes related to postings and posted entries.
func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPostingHandler(postingService)

	postings := rg.Group("/postings")
	{
		postings.POST("", h.postTransaction)
		postings.POST("/bulk", h.postBulk)
		postings.POST("/split", h.postSplit)
	}
	rg.GET("/entries", h.listEntries)
	rg.GET("/entries/:entryID", h.getEntry)
}

// postTransaction godoc
// @Summary Post a source transaction
// @Description Posts one bank-feed transaction against a target ledger account as a balanced journal entry
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   posting body dto.PostTransactionRequest true "Source transaction and target account"
// @Success 201 {object} domain.PostingResult
// @Failure 400 {object} errorResponse "Invalid request format"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Source transaction or account not found"
// @Failure 409 {object} errorResponse "Already posted or fiscal period closed"
// @Failure 422 {object} errorResponse "Validation failed, missing rate or cross entity reference"
// @Failure 503 {object} errorResponse "Concurrent update, retry"
// @Security BearerAuth
// @Router /postings [post]
func (h *postingHandler) postTransaction(c *gin.Context) {
	var req dto.PostTransactionRequest
	if !bindJSON(c, &req, "PostTransaction") {
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.postingService.PostTransaction(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Posting transaction "+req.SourceTransactionID)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction posted",
		slog.String("source_transaction_id", req.SourceTransactionID),
		slog.String("entry_id", result.EntryID))
	c.JSON(http.StatusCreated, result)
}

// postBulk godoc
// @Summary Post many source transactions
// @Description Posts every listed transaction against one shared target account, all or nothing
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   postings body dto.PostBulkRequest true "Source transactions and shared target account"
// @Success 201 {object} dto.BulkPostingResponse
// @Failure 400 {object} errorResponse "Invalid request format"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Some source transactions not found"
// @Failure 409 {object} errorResponse "Some source transactions already posted"
// @Failure 422 {object} errorResponse "Validation failed"
// @Failure 503 {object} errorResponse "Concurrent update, retry"
// @Security BearerAuth
// @Router /postings/bulk [post]
func (h *postingHandler) postBulk(c *gin.Context) {
	var req dto.PostBulkRequest
	if !bindJSON(c, &req, "PostBulk") {
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	results, err := h.postingService.PostBulk(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Bulk posting")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bulk posting completed", slog.Int("count", len(results)))
	c.JSON(http.StatusCreated, dto.BulkPostingResponse{Results: results, Count: len(results)})
}

// postSplit godoc
// @Summary Split a source transaction
// @Description Posts one transaction across several target accounts; split amounts must add up to the transaction amount
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   split body dto.PostSplitRequest true "Source transaction and splits"
// @Success 201 {object} domain.PostingResult
// @Failure 400 {object} errorResponse "Invalid request format"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Source transaction or account not found"
// @Failure 409 {object} errorResponse "Already posted or fiscal period closed"
// @Failure 422 {object} errorResponse "Split amount mismatch or validation failed"
// @Failure 503 {object} errorResponse "Concurrent update, retry"
// @Security BearerAuth
// @Router /postings/split [post]
func (h *postingHandler) postSplit(c *gin.Context) {
	var req dto.PostSplitRequest
	if !bindJSON(c, &req, "PostSplit") {
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.postingService.PostSplit(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Split posting of "+req.SourceTransactionID)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Split transaction posted",
		slog.String("source_transaction_id", req.SourceTransactionID),
		slog.String("entry_id", result.EntryID),
		slog.Int("splits", len(req.Splits)))
	c.JSON(http.StatusCreated, result)
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Returns a posted entry of the tenant with its lines
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Journal entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *postingHandler) getEntry(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")

	entry, err := h.postingService.GetEntry(c.Request.Context(), tenantID, entryID)
	if err != nil {
		respondError(c, err, "Getting entry "+entryID)
		return
	}
	c.JSON(http.StatusOK, dto.JournalEntryResponse{Entry: *entry})
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns one page of an entity's posted entries, newest first, without lines
// @Tags entries
// @Produce  json
// @Param   entityID query string true "Entity ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} errorResponse "Invalid query parameters"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Entity not found"
// @Failure 422 {object} errorResponse "Invalid token"
// @Security BearerAuth
// @Router /entries [get]
func (h *postingHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, errorResponse{Code: apperrors.CodeInvalidRequest, Message: "invalid query parameters"})
		return
	}
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	page, err := h.postingService.ListEntries(c.Request.Context(), tenantID, params)
	if err != nil {
		respondError(c, err, "Listing entries of entity "+params.EntityID)
		return
	}
	c.JSON(http.StatusOK, page)
}
