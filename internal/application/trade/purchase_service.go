package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// PurchaseService handles purchase order operations
type PurchaseService struct {
	purchaseRepo trade.PurchaseRepository
	supplierRepo partner.SupplierRepository
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(purchaseRepo trade.PurchaseRepository, supplierRepo partner.SupplierRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
	}
}

// Create records a new purchase order
func (s *PurchaseService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	exists, err := s.purchaseRepo.ExistsByPurchaseOrderID(ctx, tenantID, req.PurchaseOrderID, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Purchase with this order ID already exists")
	}

	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.IsActive() {
		return nil, shared.NewDomainError("SUPPLIER_NOT_ACTIVE", "Cannot order from a supplier that is not active")
	}

	items, err := toPurchaseItems(req.Items)
	if err != nil {
		return nil, err
	}

	purchase, err := trade.NewPurchase(tenantID, req.PurchaseOrderID, req.SupplierID, req.Date, items,
		req.TaxAmount, req.DiscountAmount, trade.PurchasePaymentMethod(req.PaymentMethod),
		req.PaidAmount, req.DueDate, req.ExpectedDelivery)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		purchase.SetCreatedBy(*req.CreatedBy)
	}
	if req.Notes != "" {
		purchase.SetNotes(req.Notes)
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// GetByID retrieves a purchase by ID
func (s *PurchaseService) GetByID(ctx context.Context, tenantID, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves a list of purchases with filtering and pagination
func (s *PurchaseService) List(ctx context.Context, tenantID uuid.UUID, filter PurchaseListFilter) ([]PurchaseListResponse, int64, error) {
	domainFilter := buildFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.DeliveryStatus != "" {
		domainFilter.Filters["delivery_status"] = filter.DeliveryStatus
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}

	purchases, err := s.purchaseRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.purchaseRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseListResponses(purchases), total, nil
}

// Update edits an ordered purchase
func (s *PurchaseService) Update(ctx context.Context, tenantID, purchaseID uuid.UUID, req UpdatePurchaseRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if req.Items != nil || req.TaxAmount != nil || req.DiscountAmount != nil || req.DueDate != nil {
		items := purchase.Items
		if req.Items != nil {
			items, err = toPurchaseItems(req.Items)
			if err != nil {
				return nil, err
			}
		}
		taxAmount := purchase.TaxAmount
		if req.TaxAmount != nil {
			taxAmount = *req.TaxAmount
		}
		discountAmount := purchase.DiscountAmount
		if req.DiscountAmount != nil {
			discountAmount = *req.DiscountAmount
		}
		dueDate := purchase.DueDate
		if req.DueDate != nil {
			dueDate = req.DueDate
		}

		if err := purchase.UpdateItems(items, taxAmount, discountAmount, dueDate); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		purchase.SetNotes(*req.Notes)
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// RecordPayment applies a payment to a purchase order. Paying the order in
// full auto-promotes an ordered purchase to paid.
func (s *PurchaseService) RecordPayment(ctx context.Context, tenantID, purchaseID uuid.UUID, req RecordPurchasePaymentRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := purchase.RecordPayment(req.Amount); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// MarkReceived records delivery of the goods
func (s *PurchaseService) MarkReceived(ctx context.Context, tenantID, purchaseID uuid.UUID, req MarkReceivedRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := purchase.MarkReceived(req.ActualDelivery); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// UpdateDelivery updates the delivery tracking state
func (s *PurchaseService) UpdateDelivery(ctx context.Context, tenantID, purchaseID uuid.UUID, req UpdateDeliveryRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := purchase.UpdateDeliveryStatus(trade.DeliveryStatus(req.DeliveryStatus)); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// MarkPaid transitions a purchase to paid once the balance is settled
func (s *PurchaseService) MarkPaid(ctx context.Context, tenantID, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := purchase.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Complete marks a purchase as completed once the balance is settled
func (s *PurchaseService) Complete(ctx context.Context, tenantID, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID)
	if err != nil {
		return nil, err
	}

	if err := purchase.Complete(); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Delete removes a purchase order
func (s *PurchaseService) Delete(ctx context.Context, tenantID, purchaseID uuid.UUID) error {
	if _, err := s.purchaseRepo.FindByIDForTenant(ctx, tenantID, purchaseID); err != nil {
		return err
	}

	return s.purchaseRepo.DeleteForTenant(ctx, tenantID, purchaseID)
}
