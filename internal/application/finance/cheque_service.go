package finance

import (
	"context"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ChequeService handles cheque lifecycle operations
type ChequeService struct {
	chequeRepo   finance.ChequeRepository
	customerRepo partner.CustomerRepository
	supplierRepo partner.SupplierRepository
}

// NewChequeService creates a new ChequeService
func NewChequeService(
	chequeRepo finance.ChequeRepository,
	customerRepo partner.CustomerRepository,
	supplierRepo partner.SupplierRepository,
) *ChequeService {
	return &ChequeService{
		chequeRepo:   chequeRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// Create records a new cheque. The related customer or supplier must exist
// within the tenant.
func (s *ChequeService) Create(ctx context.Context, tenantID uuid.UUID, req CreateChequeRequest) (*ChequeResponse, error) {
	exists, err := s.chequeRepo.ExistsByChequeNumber(ctx, tenantID, req.ChequeNumber, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Cheque with this number already exists")
	}

	transactionType := finance.ChequeTransactionType(req.TransactionType)
	switch transactionType {
	case finance.ChequeTransactionSale:
		if req.CustomerID == nil {
			return nil, shared.NewDomainError("INVALID_RELATED_PARTY", "A sale-related cheque requires a customer")
		}
		if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, *req.CustomerID); err != nil {
			return nil, err
		}
	case finance.ChequeTransactionPurchase:
		if req.SupplierID == nil {
			return nil, shared.NewDomainError("INVALID_RELATED_PARTY", "A purchase-related cheque requires a supplier")
		}
		if _, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, *req.SupplierID); err != nil {
			return nil, err
		}
	}

	cheque, err := finance.NewCheque(tenantID, req.ChequeNumber, finance.ChequeType(req.Type),
		transactionType, req.CustomerID, req.SupplierID, req.Amount, req.ChequeDate, req.BankName)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		cheque.SetCreatedBy(*req.CreatedBy)
	}
	if req.Notes != "" {
		cheque.SetNotes(req.Notes)
	}

	if err := s.chequeRepo.Save(ctx, cheque); err != nil {
		return nil, err
	}

	response := ToChequeResponse(cheque)
	return &response, nil
}

// GetByID retrieves a cheque by ID
func (s *ChequeService) GetByID(ctx context.Context, tenantID, chequeID uuid.UUID) (*ChequeResponse, error) {
	cheque, err := s.chequeRepo.FindByIDForTenant(ctx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}

	response := ToChequeResponse(cheque)
	return &response, nil
}

// GetByNumber retrieves a cheque by its number
func (s *ChequeService) GetByNumber(ctx context.Context, tenantID uuid.UUID, chequeNumber string) (*ChequeResponse, error) {
	cheque, err := s.chequeRepo.FindByChequeNumber(ctx, tenantID, chequeNumber)
	if err != nil {
		return nil, err
	}

	response := ToChequeResponse(cheque)
	return &response, nil
}

// List retrieves a list of cheques with filtering and pagination
func (s *ChequeService) List(ctx context.Context, tenantID uuid.UUID, filter ChequeListFilter) ([]ChequeListResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.Overdue {
		domainFilter.Filters["overdue"] = true
	}

	cheques, err := s.chequeRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.chequeRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToChequeListResponses(cheques), total, nil
}

// Transition moves a cheque through its lifecycle. A transition to bounced
// requires a bounce reason in the same request.
func (s *ChequeService) Transition(ctx context.Context, tenantID, chequeID uuid.UUID, req TransitionChequeRequest) (*ChequeResponse, error) {
	cheque, err := s.chequeRepo.FindByIDForTenant(ctx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}

	target := finance.ChequeStatus(req.Status)
	if target == finance.ChequeStatusBounced {
		reason := req.BounceReason
		if reason == "" {
			reason = cheque.BounceReason
		}
		if err := cheque.Bounce(reason, req.Notes); err != nil {
			return nil, err
		}
	} else if err := cheque.Transition(target, req.Notes); err != nil {
		return nil, err
	}

	if err := s.chequeRepo.Save(ctx, cheque); err != nil {
		return nil, err
	}

	response := ToChequeResponse(cheque)
	return &response, nil
}

// SetBankCharges records charges levied by the bank
func (s *ChequeService) SetBankCharges(ctx context.Context, tenantID, chequeID uuid.UUID, req SetBankChargesRequest) (*ChequeResponse, error) {
	cheque, err := s.chequeRepo.FindByIDForTenant(ctx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}

	if err := cheque.SetBankCharges(req.Charges); err != nil {
		return nil, err
	}

	if err := s.chequeRepo.Save(ctx, cheque); err != nil {
		return nil, err
	}

	response := ToChequeResponse(cheque)
	return &response, nil
}

// Delete removes a cheque
func (s *ChequeService) Delete(ctx context.Context, tenantID, chequeID uuid.UUID) error {
	if _, err := s.chequeRepo.FindByIDForTenant(ctx, tenantID, chequeID); err != nil {
		return err
	}

	return s.chequeRepo.DeleteForTenant(ctx, tenantID, chequeID)
}
