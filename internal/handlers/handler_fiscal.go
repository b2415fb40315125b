package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mma_ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/mma_ledger_core/internal/core/ports/services"
	"github.com/SscSPs/mma_ledger_core/internal/dto"
	"github.com/SscSPs/mma_ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalHandler handles fiscal calendar setup and period transitions.
type fiscalHandler struct {
	fiscalService portssvc.FiscalPeriodSvcFacade
}

func newFiscalHandler(fs portssvc.FiscalPeriodSvcFacade) *fiscalHandler {
	return &fiscalHandler{fiscalService: fs}
}

// registerFiscalRoutes registers routes related to fiscal calendars and periods.
func registerFiscalRoutes(rg *gin.RouterGroup, fiscalService portssvc.FiscalPeriodSvcFacade) {
	h := newFiscalHandler(fiscalService)

	rg.POST("/fiscal-calendars", h.createCalendar)
	periods := rg.Group("/fiscal-periods/:periodID")
	{
		periods.POST("/lock", h.lockPeriod)
		periods.POST("/close", h.closePeriod)
		periods.POST("/reopen", h.reopenPeriod)
	}
}

// createCalendar godoc
// @Summary Create a fiscal calendar
// @Description Creates a fiscal year for an entity and generates its open periods
// @Tags fiscal
// @Accept  json
// @Produce  json
// @Param   calendar body dto.CreateFiscalCalendarRequest true "Fiscal calendar details"
// @Success 201 {object} domain.FiscalCalendar
// @Failure 400 {object} errorResponse "Invalid request format"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Entity not found"
// @Failure 409 {object} errorResponse "Fiscal year already exists"
// @Security BearerAuth
// @Router /fiscal-calendars [post]
func (h *fiscalHandler) createCalendar(c *gin.Context) {
	var req dto.CreateFiscalCalendarRequest
	if !bindJSON(c, &req, "CreateCalendar") {
		return
	}
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	calendar, err := h.fiscalService.CreateCalendar(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err, "Creating fiscal calendar")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Fiscal calendar created",
		slog.String("calendar_id", calendar.CalendarID),
		slog.String("entity_id", calendar.EntityID),
		slog.Int("fiscal_year", calendar.FiscalYear))
	c.JSON(http.StatusCreated, calendar)
}

// lockPeriod godoc
// @Summary Lock a fiscal period
// @Description Moves an open period to locked; only manual adjustments may post into it
// @Tags fiscal
// @Produce  json
// @Param   periodID path string true "Fiscal period ID"
// @Success 200 {object} domain.FiscalPeriod
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Fiscal period not found"
// @Failure 409 {object} errorResponse "Transition not allowed from the current status"
// @Security BearerAuth
// @Router /fiscal-periods/{periodID}/lock [post]
func (h *fiscalHandler) lockPeriod(c *gin.Context) {
	h.transition(c, "Lock", h.fiscalService.LockPeriod)
}

// closePeriod godoc
// @Summary Close a fiscal period
// @Description Moves an open or locked period to closed; nothing may post into it afterwards
// @Tags fiscal
// @Produce  json
// @Param   periodID path string true "Fiscal period ID"
// @Success 200 {object} domain.FiscalPeriod
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Fiscal period not found"
// @Failure 409 {object} errorResponse "Transition not allowed from the current status"
// @Security BearerAuth
// @Router /fiscal-periods/{periodID}/close [post]
func (h *fiscalHandler) closePeriod(c *gin.Context) {
	h.transition(c, "Close", h.fiscalService.ClosePeriod)
}

// reopenPeriod godoc
// @Summary Reopen a fiscal period
// @Description Moves a locked or closed period back to open
// @Tags fiscal
// @Produce  json
// @Param   periodID path string true "Fiscal period ID"
// @Success 200 {object} domain.FiscalPeriod
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Fiscal period not found"
// @Failure 409 {object} errorResponse "Transition not allowed from the current status"
// @Security BearerAuth
// @Router /fiscal-periods/{periodID}/reopen [post]
func (h *fiscalHandler) reopenPeriod(c *gin.Context) {
	h.transition(c, "Reopen", h.fiscalService.ReopenPeriod)
}

type periodTransitionFunc func(ctx context.Context, tenantID, periodID, userID string) (*domain.FiscalPeriod, error)

// transition applies one period status change and writes the updated period.
func (h *fiscalHandler) transition(c *gin.Context, name string, apply periodTransitionFunc) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}
	periodID := c.Param("periodID")

	period, err := apply(c.Request.Context(), tenantID, periodID, userID)
	if err != nil {
		respondError(c, err, name+" of fiscal period "+periodID)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Fiscal period transitioned",
		slog.String("period_id", periodID),
		slog.String("status", string(period.Status)))
	c.JSON(http.StatusOK, period)
}
