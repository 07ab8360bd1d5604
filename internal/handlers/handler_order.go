package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// OrderHandler handles order workflow requests. The tax rate is fixed at
// startup and only affects response totals, never stored amounts.
type OrderHandler struct {
	orderService portssvc.OrderSvcFacade
	taxRate      decimal.Decimal
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os portssvc.OrderSvcFacade, taxRate decimal.Decimal) *OrderHandler {
	return &OrderHandler{orderService: os, taxRate: taxRate}
}

// registerOrderRoutes sets up the routes for the order workflow.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, taxRate decimal.Decimal) {
	h := NewOrderHandler(orderService, taxRate)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/pending", h.ListPending)
		orders.GET("/accepted", h.ListAccepted)
		orders.GET("/:order_id", h.GetOrder)
		orders.PUT("/:order_id", h.EditOrder)
		orders.DELETE("/:order_id", h.CancelOrder)
		orders.POST("/:order_id/actions/:action", h.ApplyAction)
	}
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Reserves stock for every line and creates a PENDING order owned by the caller. Fails without side effects if any line cannot be fully reserved.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.PlaceOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), *caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order, h.taxRate))
}

// ListOrders godoc
// @Summary List orders
// @Description Lists orders of the caller's organization, newest first.
// @Tags orders
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), *caller, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponses(orders, h.taxRate))
}

// ListPending godoc
// @Summary List pending orders for the caller
// @Description Lists PENDING orders assigned to the caller or unassigned, within the caller's ownership scope.
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/pending [get]
func (h *OrderHandler) ListPending(c *gin.Context) {
	h.listByView(c, portssvc.ViewPending)
}

// ListAccepted godoc
// @Summary List accepted orders for the caller
// @Description Lists ACCEPTED orders assigned to the caller.
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/accepted [get]
func (h *OrderHandler) ListAccepted(c *gin.Context) {
	h.listByView(c, portssvc.ViewAccepted)
}

func (h *OrderHandler) listByView(c *gin.Context, view portssvc.OrderListView) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	orders, err := h.orderService.ListOrdersByView(c.Request.Context(), *caller, view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponses(orders, h.taxRate))
}

// GetOrder godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(c.Request.Context(), *caller, c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order, h.taxRate))
}

// EditOrder godoc
// @Summary Edit an order
// @Description Edits a PENDING order. When the items key is present the full item set is replaced, releasing and re-reserving stock atomically.
// @Tags orders
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param order body dto.EditOrderRequest true "Fields to update"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{order_id} [put]
func (h *OrderHandler) EditOrder(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.orderService.EditOrder(c.Request.Context(), *caller, c.Param("order_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order, h.taxRate))
}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Marks the order CANCELLED and returns its reserved stock. Items are kept for history.
// @Tags orders
// @Param order_id path string true "Order ID"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{order_id} [delete]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.orderService.CancelOrder(c.Request.Context(), *caller, c.Param("order_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyAction godoc
// @Summary Apply a workflow action
// @Description Applies accept, decline or decline_accepted to the order. A transition whose preconditions do not hold returns 404.
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Param action path string true "Action" Enums(accept, decline, decline_accepted)
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orders/{order_id}/actions/{action} [post]
func (h *OrderHandler) ApplyAction(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	action := portssvc.OrderAction(c.Param("action"))
	order, err := h.orderService.ApplyAction(c.Request.Context(), *caller, c.Param("order_id"), action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order, h.taxRate))
}
