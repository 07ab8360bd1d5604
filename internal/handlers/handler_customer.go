package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// CustomerHandler handles customer record requests.
type CustomerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs portssvc.CustomerSvcFacade) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// registerCustomerRoutes sets up the routes for customer management.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := NewCustomerHandler(customerService)

	customers := rg.Group("/organizations/:org_id/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:customer_id", h.GetCustomer)
		customers.PUT("/:customer_id", h.UpdateCustomer)
	}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// ListCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), c.Param("org_id"), *caller, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// GetCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/customers/{customer_id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("org_id"), c.Param("customer_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param customer_id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/customers/{customer_id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("org_id"), c.Param("customer_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}
