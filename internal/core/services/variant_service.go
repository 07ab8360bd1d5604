package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

const skuGenMaxAttempts = 5

// VariantService implements variant operations. SKUs are generated here,
// never accepted from clients, and are unique system-wide.
type VariantService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	variantRepo portsrepo.VariantRepositoryFacade
}

var _ portssvc.VariantSvcFacade = (*VariantService)(nil)

// NewVariantService creates a new VariantService.
func NewVariantService(productRepo portsrepo.ProductRepositoryFacade, variantRepo portsrepo.VariantRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *VariantService {
	return &VariantService{
		BaseService: BaseService{OrgAuthorizer: authorizer},
		productRepo: productRepo,
		variantRepo: variantRepo,
	}
}

// CreateVariant creates a variant with its attribute fields and a generated
// unique SKU. The variant only becomes orderable once this returns, so the
// SKU is always present before any reservation can reference it.
func (s *VariantService) CreateVariant(ctx context.Context, organizationID string, req dto.CreateVariantRequest, caller domain.User) (*domain.Variant, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, organizationID, req.ProductID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: product does not exist in this organization", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to resolve product for variant: %w", err)
	}

	fields := make([]domain.VariantField, 0, len(req.Fields))
	values := make([]string, 0, len(req.Fields))
	for _, f := range req.Fields {
		field := domain.VariantField{
			FieldID:        uuid.NewString(),
			OrganizationID: organizationID,
			Name:           strings.TrimSpace(f.Name),
			Value:          strings.TrimSpace(f.Value),
		}
		if err := s.variantRepo.SaveField(ctx, field); err != nil {
			s.LogError(ctx, err, "Failed to save variant field", "field_name", field.Name)
			return nil, fmt.Errorf("failed to save variant field: %w", err)
		}
		fields = append(fields, field)
		values = append(values, field.Value)
	}

	sku, err := s.generateSKU(ctx, product.Name, values)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	variant := domain.Variant{
		VariantID:      uuid.NewString(),
		ProductID:      product.ProductID,
		OrganizationID: organizationID,
		Price:          req.Price,
		Quantity:       req.Quantity,
		SKU:            sku,
		ImageURL:       req.ImageURL,
		IsDefault:      req.IsDefault,
		IsActive:       true,
		Fields:         fields,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.variantRepo.SaveVariant(ctx, variant); err != nil {
		s.LogError(ctx, err, "Failed to save variant", "sku", sku)
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}

	s.LogInfo(ctx, "Variant created", "variant_id", variant.VariantID, "sku", sku)
	return &variant, nil
}

// GetVariantBySKU retrieves a variant by its SKU.
func (s *VariantService) GetVariantBySKU(ctx context.Context, organizationID string, sku string, caller domain.User) (*domain.Variant, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	variant, err := s.variantRepo.FindVariantBySKU(ctx, organizationID, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to get variant by SKU: %w", err)
	}
	return variant, nil
}

// ListVariantsByProduct retrieves all variants of a product.
func (s *VariantService) ListVariantsByProduct(ctx context.Context, organizationID string, productID string, caller domain.User) ([]domain.Variant, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	variants, err := s.variantRepo.ListVariantsByProduct(ctx, organizationID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	return variants, nil
}

// UpdateVariant updates price, stock level, flags and image of a variant.
// The SKU itself never changes after creation.
func (s *VariantService) UpdateVariant(ctx context.Context, organizationID string, sku string, req dto.UpdateVariantRequest, caller domain.User) (*domain.Variant, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	variant, err := s.variantRepo.FindVariantBySKU(ctx, organizationID, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to find variant for update: %w", err)
	}

	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
		}
		variant.Price = *req.Price
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity cannot be negative", apperrors.ErrValidation)
		}
		variant.Quantity = *req.Quantity
	}
	if req.ImageURL != nil {
		variant.ImageURL = req.ImageURL
	}
	if req.IsDefault != nil {
		variant.IsDefault = *req.IsDefault
	}
	if req.IsActive != nil {
		variant.IsActive = *req.IsActive
	}
	variant.LastUpdatedAt = time.Now()
	variant.LastUpdatedBy = caller.UserID

	if err := s.variantRepo.UpdateVariant(ctx, *variant); err != nil {
		s.LogError(ctx, err, "Failed to update variant", "sku", sku)
		return nil, fmt.Errorf("failed to update variant: %w", err)
	}
	return variant, nil
}

// CreateField creates a standalone variant field (name/value pair).
func (s *VariantService) CreateField(ctx context.Context, organizationID string, req dto.CreateVariantFieldRequest, caller domain.User) (*domain.VariantField, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	field := domain.VariantField{
		FieldID:        uuid.NewString(),
		OrganizationID: organizationID,
		Name:           strings.TrimSpace(req.Name),
		Value:          strings.TrimSpace(req.Value),
	}
	if err := s.variantRepo.SaveField(ctx, field); err != nil {
		s.LogError(ctx, err, "Failed to save field", "field_name", field.Name)
		return nil, fmt.Errorf("failed to create field: %w", err)
	}
	return &field, nil
}

// generateSKU joins the product name and field values, then retries with a
// short random suffix until the SKU is free. The uniqueness check is
// system-wide because SKUs double as cross-organization lookup keys.
func (s *VariantService) generateSKU(ctx context.Context, productName string, fieldValues []string) (string, error) {
	base := skuSlug(productName)
	for _, v := range fieldValues {
		if slug := skuSlug(v); slug != "" {
			base += "-" + slug
		}
	}

	candidate := base
	for attempt := 0; attempt < skuGenMaxAttempts; attempt++ {
		exists, err := s.variantRepo.SKUExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check SKU uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + uuid.NewString()[:5]
	}
	return "", fmt.Errorf("%w: could not allocate a unique SKU", apperrors.ErrConflict)
}

// skuSlug uppercases and strips a value down to SKU-safe characters.
func skuSlug(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	var b strings.Builder
	for _, r := range v {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
