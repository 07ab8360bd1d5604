package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// ProductHandler handles catalog product requests.
type ProductHandler struct {
	productService portssvc.ProductSvcFacade
	variantService portssvc.VariantSvcFacade
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ps portssvc.ProductSvcFacade, vs portssvc.VariantSvcFacade) *ProductHandler {
	return &ProductHandler{productService: ps, variantService: vs}
}

// registerProductRoutes sets up the routes for the product catalog.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, variantService portssvc.VariantSvcFacade) {
	h := NewProductHandler(productService, variantService)

	products := rg.Group("/organizations/:org_id/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:product_id", h.GetProduct)
		products.PUT("/:product_id", h.UpdateProduct)
		products.GET("/:product_id/variants", h.ListProductVariants)
	}
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product, nil))
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), c.Param("org_id"), *caller, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, dto.ToProductResponse(&products[i], nil))
	}
	c.JSON(http.StatusOK, resp)
}

// GetProduct godoc
// @Summary Get a product
// @Description Returns a product with its variants and default-variant price.
// @Tags products
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param product_id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/products/{product_id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	product, variants, err := h.productService.GetProductByID(c.Request.Context(), c.Param("org_id"), c.Param("product_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product, variants))
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param product_id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/products/{product_id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("org_id"), c.Param("product_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product, nil))
}

// ListProductVariants godoc
// @Summary List variants of a product
// @Tags products
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param product_id path string true "Product ID"
// @Success 200 {array} dto.VariantResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/products/{product_id}/variants [get]
func (h *ProductHandler) ListProductVariants(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	variants, err := h.variantService.ListVariantsByProduct(c.Request.Context(), c.Param("org_id"), c.Param("product_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVariantResponses(variants))
}
