package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// ExpenseHandler handles expense and expense category requests.
type ExpenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(es portssvc.ExpenseSvcFacade) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es}
}

// registerExpenseRoutes sets up the routes for expense tracking.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := NewExpenseHandler(expenseService)

	expenses := rg.Group("/organizations/:org_id/expenses")
	{
		expenses.POST("", h.CreateExpense)
		expenses.GET("", h.ListExpenses)
		expenses.GET("/:expense_id", h.GetExpense)
	}

	categories := rg.Group("/organizations/:org_id/expense-categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
	}
}

// CreateExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// ListExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), c.Param("org_id"), *caller, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

// GetExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/expenses/{expense_id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("org_id"), c.Param("expense_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// CreateCategory godoc
// @Summary Create an expense category
// @Tags expenses
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param category body dto.CreateExpenseCategoryRequest true "Category details"
// @Success 201 {object} dto.ExpenseCategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/expense-categories [post]
func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.expenseService.CreateCategory(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseCategoryResponse(category))
}

// ListCategories godoc
// @Summary List expense categories
// @Tags expenses
// @Produce json
// @Param org_id path string true "Organization ID"
// @Success 200 {array} dto.ExpenseCategoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/expense-categories [get]
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	categories, err := h.expenseService.ListCategories(c.Request.Context(), c.Param("org_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponses(categories))
}
