package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SellSage/biz_management_app/internal/apperrors"
	"github.com/SellSage/biz_management_app/internal/core/domain"
	portsrepo "github.com/SellSage/biz_management_app/internal/core/ports/repositories"
	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// LedgerService implements account ledger operations. All balance movement
// goes through PostTransaction; ledgers are never written to directly after
// creation.
type LedgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) *LedgerService {
	return &LedgerService{
		BaseService:  BaseService{OrgAuthorizer: authorizer},
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
	}
}

// CreateLedger creates a ledger. The closing balance starts equal to the
// opening balance with zero accumulated credit and debit.
func (s *LedgerService) CreateLedger(ctx context.Context, organizationID string, req dto.CreateLedgerRequest, caller domain.User) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	ledgerType := domain.LedgerType(req.LedgerType)
	if !domain.ValidLedgerType(ledgerType) {
		return nil, fmt.Errorf("%w: unknown ledger type %q", apperrors.ErrValidation, req.LedgerType)
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, organizationID, *req.CustomerID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, fmt.Errorf("%w: customer does not exist in this organization", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to resolve ledger customer: %w", err)
		}
	}

	now := time.Now()
	ledger := domain.Ledger{
		LedgerID:       uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		LedgerType:     ledgerType,
		OpeningBalance: req.OpeningBalance,
		ClosingBalance: req.OpeningBalance,
		Credit:         decimal.Zero,
		Debit:          decimal.Zero,
		CustomerID:     req.CustomerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to save ledger", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	s.LogInfo(ctx, "Ledger created", "ledger_id", ledger.LedgerID, "ledger_type", ledger.LedgerType)
	return &ledger, nil
}

// GetLedgerByID retrieves a ledger scoped to the organization.
func (s *LedgerService) GetLedgerByID(ctx context.Context, organizationID string, ledgerID string, caller domain.User) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, organizationID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	return ledger, nil
}

// ListLedgers retrieves a paginated ledger list for the organization.
func (s *LedgerService) ListLedgers(ctx context.Context, organizationID string, caller domain.User, limit, offset int) ([]domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	ledgers, err := s.ledgerRepo.ListLedgersByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	return ledgers, nil
}

// ListEntries retrieves the append-only entry trail of a ledger.
func (s *LedgerService) ListEntries(ctx context.Context, organizationID string, ledgerID string, caller domain.User) ([]domain.Entry, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityStaff); err != nil {
		return nil, err
	}
	// Resolve the ledger first so an unknown ID reports not-found rather
	// than an empty trail.
	if _, err := s.ledgerRepo.FindLedgerByID(ctx, organizationID, ledgerID); err != nil {
		return nil, fmt.Errorf("failed to resolve ledger for entries: %w", err)
	}
	entries, err := s.ledgerRepo.ListEntriesByLedger(ctx, organizationID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// PostTransaction applies one transaction to a ledger. The repository locks
// the ledger row so concurrent posts serialize; the returned entry carries
// the closing balance snapshot actually persisted.
func (s *LedgerService) PostTransaction(ctx context.Context, organizationID string, ledgerID string, req dto.PostTransactionRequest, caller domain.User) (*domain.Entry, error) {
	if err := s.AuthorizeUser(ctx, caller, organizationID, domain.CapabilityEditor); err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	entryType := domain.EntryType(req.EntryType)
	if !domain.ValidEntryType(entryType) {
		return nil, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, req.EntryType)
	}
	if req.IsCredit == nil {
		return nil, fmt.Errorf("%w: is_credit is required", apperrors.ErrValidation)
	}

	entry := domain.Entry{
		EntryID:        uuid.NewString(),
		LedgerID:       ledgerID,
		OrganizationID: organizationID,
		Amount:         req.Amount,
		IsCredit:       *req.IsCredit,
		EntryType:      entryType,
		CreatedAt:      time.Now(),
		CreatedBy:      caller.UserID,
	}

	posted, err := s.ledgerRepo.PostEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to post ledger transaction", "ledger_id", ledgerID)
		return nil, fmt.Errorf("failed to post transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction posted",
		"ledger_id", ledgerID,
		"entry_id", posted.EntryID,
		"is_credit", posted.IsCredit,
	)
	return posted, nil
}
