package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// LedgerHandler handles ledger and entry requests.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ls portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ls}
}

// registerLedgerRoutes sets up the routes for ledger management.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := NewLedgerHandler(ledgerService)

	ledgers := rg.Group("/organizations/:org_id/ledgers")
	{
		ledgers.POST("", h.CreateLedger)
		ledgers.GET("", h.ListLedgers)
		ledgers.GET("/:ledger_id", h.GetLedger)
		ledgers.GET("/:ledger_id/entries", h.ListEntries)
		ledgers.POST("/:ledger_id/transactions", h.PostTransaction)
	}
}

// CreateLedger godoc
// @Summary Create a ledger
// @Description Creates a ledger whose closing balance starts at the opening balance.
// @Tags ledgers
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param ledger body dto.CreateLedgerRequest true "Ledger details"
// @Success 201 {object} dto.LedgerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/ledgers [post]
func (h *LedgerHandler) CreateLedger(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerResponse(ledger))
}

// ListLedgers godoc
// @Summary List ledgers
// @Tags ledgers
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.LedgerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/ledgers [get]
func (h *LedgerHandler) ListLedgers(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	ledgers, err := h.ledgerService.ListLedgers(c.Request.Context(), c.Param("org_id"), *caller, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponses(ledgers))
}

// GetLedger godoc
// @Summary Get a ledger
// @Tags ledgers
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param ledger_id path string true "Ledger ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/ledgers/{ledger_id} [get]
func (h *LedgerHandler) GetLedger(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	ledger, err := h.ledgerService.GetLedgerByID(c.Request.Context(), c.Param("org_id"), c.Param("ledger_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// ListEntries godoc
// @Summary List ledger entries
// @Description Returns the append-only entry trail of a ledger, oldest first.
// @Tags ledgers
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param ledger_id path string true "Ledger ID"
// @Success 200 {array} dto.EntryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/ledgers/{ledger_id}/entries [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	entries, err := h.ledgerService.ListEntries(c.Request.Context(), c.Param("org_id"), c.Param("ledger_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// PostTransaction godoc
// @Summary Post a transaction
// @Description Applies one credit or debit to the ledger and returns the new immutable entry with its closing balance snapshot.
// @Tags ledgers
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param ledger_id path string true "Ledger ID"
// @Param transaction body dto.PostTransactionRequest true "Transaction details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/ledgers/{ledger_id}/transactions [post]
func (h *LedgerHandler) PostTransaction(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.ledgerService.PostTransaction(c.Request.Context(), c.Param("org_id"), c.Param("ledger_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}
