package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/bizledger/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaleService handles sale recording and keeps the customer's available
// credit consistent with outstanding credit sales.
//
// Credit moves in exactly two places: recording a sale reserves its credit
// portion, deleting a sale releases it. Editing a sale's credit amount
// afterwards does not rebalance the customer; the credit taken at creation
// stands until the sale is deleted.
type SaleService struct {
	saleRepo     trade.SaleRepository
	customerRepo partner.CustomerRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleRepository, customerRepo partner.CustomerRepository) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

// Create records a new sale. The credit portion is reserved against the
// customer before the sale is persisted; if the customer lacks available
// credit the sale is rejected and nothing is written.
func (s *SaleService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSaleRequest) (*SaleResponse, error) {
	exists, err := s.saleRepo.ExistsByTransactionID(ctx, tenantID, req.TransactionID, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Sale with this transaction ID already exists")
	}

	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive() {
		return nil, shared.NewDomainError("CUSTOMER_NOT_ACTIVE", "Cannot record a sale for a customer that is not active")
	}

	items, err := toSaleItems(req.Items)
	if err != nil {
		return nil, err
	}

	sale, err := trade.NewSale(tenantID, req.TransactionID, req.CustomerID, req.Date, items,
		req.TaxAmount, req.DiscountAmount, req.CashAmount, req.CreditAmount, req.DueDate)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		sale.SetCreatedBy(*req.CreatedBy)
	}
	if req.Notes != "" {
		sale.SetNotes(req.Notes)
	}

	if sale.HasCreditPortion() {
		if err := customer.ReserveCredit(sale.CreditAmount); err != nil {
			return nil, err
		}
		// Optimistic lock guards against two concurrent sales draining the
		// same credit pool; a version conflict surfaces as 409 and the
		// caller retries.
		if err := s.customerRepo.SaveWithLock(ctx, customer); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		if sale.HasCreditPortion() {
			// Compensate the reservation. Customer and sale live in separate
			// tables, so this pair of writes is not atomic.
			if rbErr := customer.ReleaseCredit(sale.CreditAmount); rbErr == nil {
				if saveErr := s.customerRepo.Save(ctx, customer); saveErr != nil {
					logger.L(ctx).Error("failed to release reserved credit after sale write failure",
						zap.String("transaction_id", sale.TransactionID),
						zap.String("customer_id", customer.ID.String()),
						zap.String("credit_amount", sale.CreditAmount.String()),
						zap.Error(saveErr))
				}
			}
		}
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *SaleService) GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByTransactionID retrieves a sale by its transaction ID
func (s *SaleService) GetByTransactionID(ctx context.Context, tenantID uuid.UUID, transactionID string) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByTransactionID(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves a list of sales with filtering and pagination
func (s *SaleService) List(ctx context.Context, tenantID uuid.UUID, filter SaleListFilter) ([]SaleListResponse, int64, error) {
	domainFilter := buildFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.PaymentMethod != "" {
		domainFilter.Filters["payment_method"] = filter.PaymentMethod
	}
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.DateFrom != nil {
		domainFilter.Filters["date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		domainFilter.Filters["date_to"] = *filter.DateTo
	}

	sales, err := s.saleRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.saleRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSaleListResponses(sales), total, nil
}

// Update edits a pending sale. The customer's available credit is not
// touched here even if the credit amount changes.
func (s *SaleService) Update(ctx context.Context, tenantID, saleID uuid.UUID, req UpdateSaleRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}

	if req.Items != nil || req.TaxAmount != nil || req.DiscountAmount != nil ||
		req.CashAmount != nil || req.CreditAmount != nil || req.DueDate != nil {
		items := sale.Items
		if req.Items != nil {
			items, err = toSaleItems(req.Items)
			if err != nil {
				return nil, err
			}
		}
		taxAmount := sale.TaxAmount
		if req.TaxAmount != nil {
			taxAmount = *req.TaxAmount
		}
		discountAmount := sale.DiscountAmount
		if req.DiscountAmount != nil {
			discountAmount = *req.DiscountAmount
		}
		cashAmount := sale.CashAmount
		if req.CashAmount != nil {
			cashAmount = *req.CashAmount
		}
		creditAmount := sale.CreditAmount
		if req.CreditAmount != nil {
			creditAmount = *req.CreditAmount
		}
		dueDate := sale.DueDate
		if req.DueDate != nil {
			dueDate = req.DueDate
		}

		if err := sale.UpdateItemsAndPayment(items, taxAmount, discountAmount, cashAmount, creditAmount, dueDate); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		sale.SetNotes(*req.Notes)
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// Complete marks a sale as completed
func (s *SaleService) Complete(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.Complete(); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// Cancel cancels a sale. Cancellation does not release reserved credit;
// only deletion does.
func (s *SaleService) Cancel(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.Cancel(); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// Delete removes a sale and returns its credit portion to the customer,
// clamped to the customer's credit limit.
func (s *SaleService) Delete(ctx context.Context, tenantID, saleID uuid.UUID) error {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		return err
	}

	if sale.HasCreditPortion() {
		customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, sale.CustomerID)
		if err != nil {
			return err
		}
		if err := customer.ReleaseCredit(sale.CreditAmount); err != nil {
			return err
		}
		if err := s.customerRepo.SaveWithLock(ctx, customer); err != nil {
			return err
		}
	}

	return s.saleRepo.DeleteForTenant(ctx, tenantID, saleID)
}

// buildFilter applies the list defaults shared by the trade services
func buildFilter(page, pageSize int, orderBy, orderDir, search string) shared.Filter {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	if orderBy != "" {
		filter.OrderBy = orderBy
	}
	if orderDir != "" {
		filter.OrderDir = orderDir
	}
	filter.Search = search
	return filter
}
