package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Sale DTOs
// =============================================================================

// SaleItemRequest represents one line item in a sale request.
// The total price is computed server-side and never trusted from input.
type SaleItemRequest struct {
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateSaleRequest represents a request to record a sale
type CreateSaleRequest struct {
	TransactionID  string            `json:"transaction_id" binding:"required,min=1,max=50"`
	CustomerID     uuid.UUID         `json:"customer_id" binding:"required"`
	Date           time.Time         `json:"date" binding:"required"`
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	CashAmount     decimal.Decimal   `json:"cash_amount"`
	CreditAmount   decimal.Decimal   `json:"credit_amount"`
	DueDate        *time.Time        `json:"due_date"`
	Notes          string            `json:"notes"`
	CreatedBy      *uuid.UUID        `json:"-"`
}

// UpdateSaleRequest represents a request to update a pending sale.
// Changing the credit amount here does not rebalance the customer's
// available credit; credit moves only on create and delete.
type UpdateSaleRequest struct {
	Items          []SaleItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	TaxAmount      *decimal.Decimal  `json:"tax_amount"`
	DiscountAmount *decimal.Decimal  `json:"discount_amount"`
	CashAmount     *decimal.Decimal  `json:"cash_amount"`
	CreditAmount   *decimal.Decimal  `json:"credit_amount"`
	DueDate        *time.Time        `json:"due_date"`
	Notes          *string           `json:"notes"`
}

// SaleItemResponse represents a line item in API responses
type SaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID             uuid.UUID          `json:"id"`
	TenantID       uuid.UUID          `json:"tenant_id"`
	TransactionID  string             `json:"transaction_id"`
	CustomerID     uuid.UUID          `json:"customer_id"`
	Date           time.Time          `json:"date"`
	Items          []SaleItemResponse `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	CashAmount     decimal.Decimal    `json:"cash_amount"`
	CreditAmount   decimal.Decimal    `json:"credit_amount"`
	PaymentMethod  string             `json:"payment_method"`
	DueDate        *time.Time         `json:"due_date"`
	Status         string             `json:"status"`
	Notes          string             `json:"notes"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Version        int                `json:"version"`
}

// SaleListResponse represents a list item for sales
type SaleListResponse struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID string          `json:"transaction_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Date          time.Time       `json:"date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreditAmount  decimal.Decimal `json:"credit_amount"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleListFilter represents filter options for sale list
type SaleListFilter struct {
	Search        string     `form:"search"`
	Status        string     `form:"status" binding:"omitempty,oneof=pending completed cancelled"`
	PaymentMethod string     `form:"payment_method" binding:"omitempty,oneof=cash credit mixed"`
	CustomerID    *uuid.UUID `form:"customer_id"`
	DateFrom      *time.Time `form:"date_from"`
	DateTo        *time.Time `form:"date_to"`
	Page          int        `form:"page" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string     `form:"order_by"`
	OrderDir      string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSaleResponse converts a domain sale to a response DTO
func ToSaleResponse(sale *trade.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, SaleItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return SaleResponse{
		ID:             sale.ID,
		TenantID:       sale.TenantID,
		TransactionID:  sale.TransactionID,
		CustomerID:     sale.CustomerID,
		Date:           sale.Date,
		Items:          items,
		Subtotal:       sale.Subtotal,
		TaxAmount:      sale.TaxAmount,
		DiscountAmount: sale.DiscountAmount,
		TotalAmount:    sale.TotalAmount,
		CashAmount:     sale.CashAmount,
		CreditAmount:   sale.CreditAmount,
		PaymentMethod:  string(sale.PaymentMethod),
		DueDate:        sale.DueDate,
		Status:         string(sale.Status),
		Notes:          sale.Notes,
		CreatedAt:      sale.CreatedAt,
		UpdatedAt:      sale.UpdatedAt,
		Version:        sale.Version,
	}
}

// ToSaleListResponses converts domain sales to list DTOs
func ToSaleListResponses(sales []trade.Sale) []SaleListResponse {
	responses := make([]SaleListResponse, 0, len(sales))
	for i := range sales {
		s := &sales[i]
		responses = append(responses, SaleListResponse{
			ID:            s.ID,
			TransactionID: s.TransactionID,
			CustomerID:    s.CustomerID,
			Date:          s.Date,
			TotalAmount:   s.TotalAmount,
			CreditAmount:  s.CreditAmount,
			PaymentMethod: string(s.PaymentMethod),
			Status:        string(s.Status),
			CreatedAt:     s.CreatedAt,
		})
	}
	return responses
}

// toSaleItems builds domain line items from request items
func toSaleItems(reqs []SaleItemRequest) ([]trade.SaleItem, error) {
	items := make([]trade.SaleItem, 0, len(reqs))
	for _, r := range reqs {
		item, err := trade.NewSaleItem(r.ProductName, r.Quantity, r.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// =============================================================================
// Purchase DTOs
// =============================================================================

// PurchaseItemRequest represents one line item in a purchase request
type PurchaseItemRequest struct {
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreatePurchaseRequest represents a request to record a purchase order
type CreatePurchaseRequest struct {
	PurchaseOrderID  string                `json:"purchase_order_id" binding:"required,min=1,max=50"`
	SupplierID       uuid.UUID             `json:"supplier_id" binding:"required"`
	Date             time.Time             `json:"date" binding:"required"`
	Items            []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxAmount        decimal.Decimal       `json:"tax_amount"`
	DiscountAmount   decimal.Decimal       `json:"discount_amount"`
	PaymentMethod    string                `json:"payment_method" binding:"required,oneof=cash credit cheque bank_transfer"`
	PaidAmount       decimal.Decimal       `json:"paid_amount"`
	DueDate          *time.Time            `json:"due_date"`
	ExpectedDelivery *time.Time            `json:"expected_delivery"`
	Notes            string                `json:"notes"`
	CreatedBy        *uuid.UUID            `json:"-"`
}

// UpdatePurchaseRequest represents a request to update an ordered purchase
type UpdatePurchaseRequest struct {
	Items          []PurchaseItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	TaxAmount      *decimal.Decimal      `json:"tax_amount"`
	DiscountAmount *decimal.Decimal      `json:"discount_amount"`
	DueDate        *time.Time            `json:"due_date"`
	Notes          *string               `json:"notes"`
}

// RecordPurchasePaymentRequest represents a payment against a purchase order
type RecordPurchasePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateDeliveryRequest represents a delivery tracking update
type UpdateDeliveryRequest struct {
	DeliveryStatus string `json:"delivery_status" binding:"required,oneof=pending shipped delivered delayed"`
}

// MarkReceivedRequest records the actual delivery of the goods
type MarkReceivedRequest struct {
	ActualDelivery time.Time `json:"actual_delivery" binding:"required"`
}

// PurchaseItemResponse represents a line item in API responses
type PurchaseItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// PurchaseResponse represents a purchase order in API responses
type PurchaseResponse struct {
	ID               uuid.UUID              `json:"id"`
	TenantID         uuid.UUID              `json:"tenant_id"`
	PurchaseOrderID  string                 `json:"purchase_order_id"`
	SupplierID       uuid.UUID              `json:"supplier_id"`
	Date             time.Time              `json:"date"`
	Items            []PurchaseItemResponse `json:"items"`
	Subtotal         decimal.Decimal        `json:"subtotal"`
	TaxAmount        decimal.Decimal        `json:"tax_amount"`
	DiscountAmount   decimal.Decimal        `json:"discount_amount"`
	TotalAmount      decimal.Decimal        `json:"total_amount"`
	PaymentMethod    string                 `json:"payment_method"`
	PaidAmount       decimal.Decimal        `json:"paid_amount"`
	RemainingAmount  decimal.Decimal        `json:"remaining_amount"`
	DueDate          *time.Time             `json:"due_date"`
	ExpectedDelivery *time.Time             `json:"expected_delivery"`
	ActualDelivery   *time.Time             `json:"actual_delivery"`
	DeliveryStatus   string                 `json:"delivery_status"`
	DaysUntilDue     *int                   `json:"days_until_due,omitempty"`
	Status           string                 `json:"status"`
	Notes            string                 `json:"notes"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	Version          int                    `json:"version"`
}

// PurchaseListResponse represents a list item for purchase orders
type PurchaseListResponse struct {
	ID              uuid.UUID       `json:"id"`
	PurchaseOrderID string          `json:"purchase_order_id"`
	SupplierID      uuid.UUID       `json:"supplier_id"`
	Date            time.Time       `json:"date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	DeliveryStatus  string          `json:"delivery_status"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PurchaseListFilter represents filter options for purchase list
type PurchaseListFilter struct {
	Search         string     `form:"search"`
	Status         string     `form:"status" binding:"omitempty,oneof=ordered received paid completed"`
	DeliveryStatus string     `form:"delivery_status" binding:"omitempty,oneof=pending shipped delivered delayed"`
	SupplierID     *uuid.UUID `form:"supplier_id"`
	Page           int        `form:"page" binding:"omitempty,min=1"`
	PageSize       int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy        string     `form:"order_by"`
	OrderDir       string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPurchaseResponse converts a domain purchase to a response DTO
func ToPurchaseResponse(purchase *trade.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		items = append(items, PurchaseItemResponse{
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	var daysUntilDue *int
	if days, ok := purchase.DaysUntilDue(); ok {
		daysUntilDue = &days
	}

	return PurchaseResponse{
		ID:               purchase.ID,
		TenantID:         purchase.TenantID,
		PurchaseOrderID:  purchase.PurchaseOrderID,
		SupplierID:       purchase.SupplierID,
		Date:             purchase.Date,
		Items:            items,
		Subtotal:         purchase.Subtotal,
		TaxAmount:        purchase.TaxAmount,
		DiscountAmount:   purchase.DiscountAmount,
		TotalAmount:      purchase.TotalAmount,
		PaymentMethod:    string(purchase.PaymentMethod),
		PaidAmount:       purchase.PaidAmount,
		RemainingAmount:  purchase.RemainingAmount,
		DueDate:          purchase.DueDate,
		ExpectedDelivery: purchase.ExpectedDelivery,
		ActualDelivery:   purchase.ActualDelivery,
		DeliveryStatus:   string(purchase.DeliveryStatus),
		DaysUntilDue:     daysUntilDue,
		Status:           string(purchase.Status),
		Notes:            purchase.Notes,
		CreatedAt:        purchase.CreatedAt,
		UpdatedAt:        purchase.UpdatedAt,
		Version:          purchase.Version,
	}
}

// ToPurchaseListResponses converts domain purchases to list DTOs
func ToPurchaseListResponses(purchases []trade.Purchase) []PurchaseListResponse {
	responses := make([]PurchaseListResponse, 0, len(purchases))
	for i := range purchases {
		p := &purchases[i]
		responses = append(responses, PurchaseListResponse{
			ID:              p.ID,
			PurchaseOrderID: p.PurchaseOrderID,
			SupplierID:      p.SupplierID,
			Date:            p.Date,
			TotalAmount:     p.TotalAmount,
			RemainingAmount: p.RemainingAmount,
			DeliveryStatus:  string(p.DeliveryStatus),
			Status:          string(p.Status),
			CreatedAt:       p.CreatedAt,
		})
	}
	return responses
}

// toPurchaseItems builds domain line items from request items
func toPurchaseItems(reqs []PurchaseItemRequest) ([]trade.PurchaseItem, error) {
	items := make([]trade.PurchaseItem, 0, len(reqs))
	for _, r := range reqs {
		item, err := trade.NewPurchaseItem(r.ProductName, r.Quantity, r.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
