package trade

import (
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the status of a sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// IsValid checks if the status is valid
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s SaleStatus) CanTransitionTo(target SaleStatus) bool {
	transitions := map[SaleStatus][]SaleStatus{
		SaleStatusPending:   {SaleStatusCompleted, SaleStatusCancelled},
		SaleStatusCompleted: {},
		SaleStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// PaymentMethod describes how a sale was paid. It is derived from the
// cash and credit amounts, never set directly.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodMixed  PaymentMethod = "mixed"
)

// paymentTolerance is the rounding slack allowed between the payment
// split and the sale total.
var paymentTolerance = decimal.NewFromFloat(0.01)

// SaleItem represents a line item in a sale.
// TotalPrice is always computed from quantity and unit price; caller
// supplied totals are ignored.
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// NewSaleItem creates a new sale line item
func NewSaleItem(productName string, quantity, unitPrice decimal.Decimal) (*SaleItem, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Product name cannot be empty")
	}
	if len(productName) > 200 {
		return nil, shared.NewDomainError("INVALID_ITEM", "Product name cannot exceed 200 characters")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &SaleItem{
		ID:          uuid.New(),
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  quantity.Mul(unitPrice),
	}, nil
}

// Sale represents a sales transaction in the trade context.
// The credit portion of the payment draws down the customer's available
// credit when the sale is recorded and restores it when the sale is
// deleted; updates to an existing sale do not rebalance credit.
type Sale struct {
	shared.TenantAggregateRoot
	TransactionID  string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_sale_tenant_txn,priority:2"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date           time.Time       `gorm:"not null;index"`
	Items          []SaleItem      `gorm:"-"` // Persisted as jsonb by the persistence model
	Subtotal       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CashAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreditAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(20);not null"`
	DueDate        *time.Time      `gorm:"index"` // Required when CreditAmount > 0
	Status         SaleStatus      `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new sale and derives its totals and payment method.
// The payment split must cover the total within the rounding tolerance,
// and a credit portion requires a due date in the future.
func NewSale(
	tenantID uuid.UUID,
	transactionID string,
	customerID uuid.UUID,
	date time.Time,
	items []SaleItem,
	taxAmount, discountAmount decimal.Decimal,
	cashAmount, creditAmount decimal.Decimal,
	dueDate *time.Time,
) (*Sale, error) {
	if err := validateTransactionID(transactionID); err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer is required")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Sale date is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Sale must have at least one item")
	}
	if taxAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX", "Tax amount cannot be negative")
	}
	if discountAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount amount cannot be negative")
	}

	sale := &Sale{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		TransactionID:       strings.ToUpper(transactionID),
		CustomerID:          customerID,
		Date:                date,
		Items:               items,
		TaxAmount:           taxAmount,
		DiscountAmount:      discountAmount,
		Status:              SaleStatusPending,
	}
	sale.recalculateTotals()

	if err := sale.setPayment(cashAmount, creditAmount, dueDate, time.Now()); err != nil {
		return nil, err
	}

	sale.AddDomainEvent(NewSaleCreatedEvent(sale))

	return sale, nil
}

// recalculateTotals recomputes line totals, the subtotal and the grand total
func (s *Sale) recalculateTotals() {
	subtotal := decimal.Zero
	for i := range s.Items {
		s.Items[i].TotalPrice = s.Items[i].Quantity.Mul(s.Items[i].UnitPrice)
		subtotal = subtotal.Add(s.Items[i].TotalPrice)
	}
	s.Subtotal = subtotal
	s.TotalAmount = subtotal.Add(s.TaxAmount).Sub(s.DiscountAmount)
}

// setPayment validates and applies the payment split. now is the reference
// time for the future-due-date check; creation and updates both pass it so
// the rule is applied at write time only.
func (s *Sale) setPayment(cashAmount, creditAmount decimal.Decimal, dueDate *time.Time, now time.Time) error {
	if cashAmount.IsNegative() || creditAmount.IsNegative() {
		return shared.NewDomainError("INVALID_PAYMENT", "Payment amounts cannot be negative")
	}

	paid := cashAmount.Add(creditAmount)
	if paid.Sub(s.TotalAmount).Abs().GreaterThan(paymentTolerance) {
		return shared.ErrInconsistentPayment
	}

	if creditAmount.GreaterThan(decimal.Zero) {
		if dueDate == nil {
			return shared.NewDomainError("INVALID_DUE_DATE", "A due date is required for credit sales")
		}
		if !dueDate.After(now) {
			return shared.NewDomainError("INVALID_DUE_DATE", "Due date must be in the future")
		}
	} else {
		dueDate = nil
	}

	s.CashAmount = cashAmount
	s.CreditAmount = creditAmount
	s.DueDate = dueDate
	s.PaymentMethod = derivePaymentMethod(cashAmount, creditAmount)

	return nil
}

func derivePaymentMethod(cashAmount, creditAmount decimal.Decimal) PaymentMethod {
	switch {
	case creditAmount.GreaterThan(decimal.Zero) && cashAmount.GreaterThan(decimal.Zero):
		return PaymentMethodMixed
	case creditAmount.GreaterThan(decimal.Zero):
		return PaymentMethodCredit
	default:
		return PaymentMethodCash
	}
}

// UpdateItems replaces the line items and recomputes the totals.
// The payment split must still cover the new total.
func (s *Sale) UpdateItems(items []SaleItem, taxAmount, discountAmount decimal.Decimal) error {
	if s.Status != SaleStatusPending {
		return shared.NewDomainError("INVALID_STATUS", "Only pending sales can be modified")
	}
	if len(items) == 0 {
		return shared.NewDomainError("INVALID_ITEMS", "Sale must have at least one item")
	}
	if taxAmount.IsNegative() {
		return shared.NewDomainError("INVALID_TAX", "Tax amount cannot be negative")
	}
	if discountAmount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount amount cannot be negative")
	}

	s.Items = items
	s.TaxAmount = taxAmount
	s.DiscountAmount = discountAmount
	s.recalculateTotals()

	paid := s.CashAmount.Add(s.CreditAmount)
	if paid.Sub(s.TotalAmount).Abs().GreaterThan(paymentTolerance) {
		return shared.ErrInconsistentPayment
	}

	s.UpdatedAt = time.Now()
	s.AddDomainEvent(NewSaleUpdatedEvent(s))

	return nil
}

// UpdateItemsAndPayment replaces the line items and the payment split in
// one step, so the consistency check runs against the final totals.
func (s *Sale) UpdateItemsAndPayment(
	items []SaleItem,
	taxAmount, discountAmount decimal.Decimal,
	cashAmount, creditAmount decimal.Decimal,
	dueDate *time.Time,
) error {
	if s.Status != SaleStatusPending {
		return shared.NewDomainError("INVALID_STATUS", "Only pending sales can be modified")
	}
	if len(items) == 0 {
		return shared.NewDomainError("INVALID_ITEMS", "Sale must have at least one item")
	}
	if taxAmount.IsNegative() {
		return shared.NewDomainError("INVALID_TAX", "Tax amount cannot be negative")
	}
	if discountAmount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount amount cannot be negative")
	}

	prevItems, prevTax, prevDiscount := s.Items, s.TaxAmount, s.DiscountAmount
	s.Items = items
	s.TaxAmount = taxAmount
	s.DiscountAmount = discountAmount
	s.recalculateTotals()

	if err := s.setPayment(cashAmount, creditAmount, dueDate, time.Now()); err != nil {
		s.Items = prevItems
		s.TaxAmount = prevTax
		s.DiscountAmount = prevDiscount
		s.recalculateTotals()
		return err
	}

	s.UpdatedAt = time.Now()
	s.AddDomainEvent(NewSaleUpdatedEvent(s))

	return nil
}

// UpdatePayment changes the payment split on a pending sale
func (s *Sale) UpdatePayment(cashAmount, creditAmount decimal.Decimal, dueDate *time.Time) error {
	if s.Status != SaleStatusPending {
		return shared.NewDomainError("INVALID_STATUS", "Only pending sales can be modified")
	}

	if err := s.setPayment(cashAmount, creditAmount, dueDate, time.Now()); err != nil {
		return err
	}

	s.UpdatedAt = time.Now()
	s.AddDomainEvent(NewSaleUpdatedEvent(s))

	return nil
}

// SetNotes sets the sale's notes
func (s *Sale) SetNotes(notes string) {
	s.Notes = notes
	s.UpdatedAt = time.Now()
}

// Complete marks the sale as completed
func (s *Sale) Complete() error {
	return s.transitionTo(SaleStatusCompleted)
}

// Cancel cancels the sale
func (s *Sale) Cancel() error {
	return s.transitionTo(SaleStatusCancelled)
}

func (s *Sale) transitionTo(target SaleStatus) error {
	if !s.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition sale from '"+string(s.Status)+"' to '"+string(target)+"'")
	}

	oldStatus := s.Status
	s.Status = target
	s.UpdatedAt = time.Now()

	s.AddDomainEvent(NewSaleStatusChangedEvent(s, oldStatus, target))

	return nil
}

// IsPending returns true if the sale is pending
func (s *Sale) IsPending() bool {
	return s.Status == SaleStatusPending
}

// IsCancelled returns true if the sale is cancelled
func (s *Sale) IsCancelled() bool {
	return s.Status == SaleStatusCancelled
}

// HasCreditPortion returns true if part of the sale was paid on credit
func (s *Sale) HasCreditPortion() bool {
	return s.CreditAmount.GreaterThan(decimal.Zero)
}

func validateTransactionID(transactionID string) error {
	if transactionID == "" {
		return shared.NewDomainError("INVALID_TRANSACTION_ID", "Transaction ID cannot be empty")
	}
	if len(transactionID) > 50 {
		return shared.NewDomainError("INVALID_TRANSACTION_ID", "Transaction ID cannot exceed 50 characters")
	}
	for _, r := range transactionID {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_TRANSACTION_ID", "Transaction ID can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
