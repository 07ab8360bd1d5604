package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// VariantHandler handles variant and variant field requests. Variants are
// addressed by SKU once created.
type VariantHandler struct {
	variantService portssvc.VariantSvcFacade
}

// NewVariantHandler creates a new VariantHandler.
func NewVariantHandler(vs portssvc.VariantSvcFacade) *VariantHandler {
	return &VariantHandler{variantService: vs}
}

// registerVariantRoutes sets up the routes for variant management.
func registerVariantRoutes(rg *gin.RouterGroup, variantService portssvc.VariantSvcFacade) {
	h := NewVariantHandler(variantService)

	variants := rg.Group("/organizations/:org_id/variants")
	{
		variants.POST("", h.CreateVariant)
		variants.GET("/:sku", h.GetVariant)
		variants.PUT("/:sku", h.UpdateVariant)
	}
	rg.POST("/organizations/:org_id/fields", h.CreateField)
}

// CreateVariant godoc
// @Summary Create a variant
// @Description Creates a variant of a product. The SKU is generated from the product name and field values and is never accepted from the client.
// @Tags variants
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param variant body dto.CreateVariantRequest true "Variant details"
// @Success 201 {object} dto.VariantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/variants [post]
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	variant, err := h.variantService.CreateVariant(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVariantResponse(variant))
}

// GetVariant godoc
// @Summary Get a variant by SKU
// @Tags variants
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param sku path string true "Variant SKU"
// @Success 200 {object} dto.VariantResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/variants/{sku} [get]
func (h *VariantHandler) GetVariant(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	variant, err := h.variantService.GetVariantBySKU(c.Request.Context(), c.Param("org_id"), c.Param("sku"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVariantResponse(variant))
}

// UpdateVariant godoc
// @Summary Update a variant
// @Description Updates price, quantity, image or flags of the variant identified by SKU.
// @Tags variants
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param sku path string true "Variant SKU"
// @Param variant body dto.UpdateVariantRequest true "Fields to update"
// @Success 200 {object} dto.VariantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/variants/{sku} [put]
func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	variant, err := h.variantService.UpdateVariant(c.Request.Context(), c.Param("org_id"), c.Param("sku"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVariantResponse(variant))
}

// CreateField godoc
// @Summary Create a variant field
// @Description Creates a reusable name/value attribute for variants.
// @Tags variants
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param field body dto.CreateVariantFieldRequest true "Field details"
// @Success 201 {object} dto.VariantFieldResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/fields [post]
func (h *VariantHandler) CreateField(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateVariantFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	field, err := h.variantService.CreateField(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVariantFieldResponse(field))
}
