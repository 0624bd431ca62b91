package trade

import (
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the status of a purchase order
type PurchaseStatus string

const (
	PurchaseStatusOrdered   PurchaseStatus = "ordered"
	PurchaseStatusReceived  PurchaseStatus = "received"
	PurchaseStatusPaid      PurchaseStatus = "paid"
	PurchaseStatusCompleted PurchaseStatus = "completed"
)

// IsValid checks if the status is valid
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusOrdered, PurchaseStatusReceived, PurchaseStatusPaid, PurchaseStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseStatus) CanTransitionTo(target PurchaseStatus) bool {
	transitions := map[PurchaseStatus][]PurchaseStatus{
		PurchaseStatusOrdered:   {PurchaseStatusReceived, PurchaseStatusPaid},
		PurchaseStatusReceived:  {PurchaseStatusPaid, PurchaseStatusCompleted},
		PurchaseStatusPaid:      {PurchaseStatusCompleted},
		PurchaseStatusCompleted: {},
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

// DeliveryStatus tracks the delivery of a purchase order
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusDelayed   DeliveryStatus = "delayed"
)

// IsValid checks if the delivery status is valid
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusShipped, DeliveryStatusDelivered, DeliveryStatusDelayed:
		return true
	}
	return false
}

// PurchasePaymentMethod describes how a purchase is settled
type PurchasePaymentMethod string

const (
	PurchasePaymentCash         PurchasePaymentMethod = "cash"
	PurchasePaymentCredit       PurchasePaymentMethod = "credit"
	PurchasePaymentCheque       PurchasePaymentMethod = "cheque"
	PurchasePaymentBankTransfer PurchasePaymentMethod = "bank_transfer"
)

// IsValid checks if the payment method is valid
func (m PurchasePaymentMethod) IsValid() bool {
	switch m {
	case PurchasePaymentCash, PurchasePaymentCredit, PurchasePaymentCheque, PurchasePaymentBankTransfer:
		return true
	}
	return false
}

// PurchaseItem represents a line item on a purchase order.
// TotalPrice is always computed from quantity and unit price.
type PurchaseItem struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// NewPurchaseItem creates a new purchase line item
func NewPurchaseItem(productName string, quantity, unitPrice decimal.Decimal) (*PurchaseItem, error) {
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

	return &PurchaseItem{
		ID:          uuid.New(),
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  quantity.Mul(unitPrice),
	}, nil
}

// Purchase represents a purchase order in the trade context.
// RemainingAmount is derived from the totals and never goes negative;
// a purchase cannot be marked paid or completed while anything remains
// outstanding, and paying the order in full promotes it automatically.
type Purchase struct {
	shared.TenantAggregateRoot
	PurchaseOrderID  string                `gorm:"type:varchar(50);not null;uniqueIndex:idx_purchase_tenant_po,priority:2"`
	SupplierID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	Date             time.Time             `gorm:"not null;index"`
	Items            []PurchaseItem        `gorm:"-"` // Persisted as jsonb by the persistence model
	Subtotal         decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount        decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount   decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount      decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod    PurchasePaymentMethod `gorm:"type:varchar(20);not null"`
	PaidAmount       decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	RemainingAmount  decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	DueDate          *time.Time            `gorm:"index"` // Required while RemainingAmount > 0
	ExpectedDelivery *time.Time            `gorm:""`
	ActualDelivery   *time.Time            `gorm:""` // Set once, when goods are received
	DeliveryStatus   DeliveryStatus        `gorm:"type:varchar(20);not null;default:'pending'"`
	Status           PurchaseStatus        `gorm:"type:varchar(20);not null;default:'ordered'"`
	Notes            string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase creates a new purchase order
func NewPurchase(
	tenantID uuid.UUID,
	purchaseOrderID string,
	supplierID uuid.UUID,
	date time.Time,
	items []PurchaseItem,
	taxAmount, discountAmount decimal.Decimal,
	paymentMethod PurchasePaymentMethod,
	paidAmount decimal.Decimal,
	dueDate *time.Time,
	expectedDelivery *time.Time,
) (*Purchase, error) {
	if err := validatePurchaseOrderID(purchaseOrderID); err != nil {
		return nil, err
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier is required")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Purchase date is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Purchase must have at least one item")
	}
	if taxAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX", "Tax amount cannot be negative")
	}
	if discountAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount amount cannot be negative")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be 'cash', 'credit', 'cheque' or 'bank_transfer'")
	}
	if paidAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Paid amount cannot be negative")
	}

	purchase := &Purchase{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PurchaseOrderID:     strings.ToUpper(purchaseOrderID),
		SupplierID:          supplierID,
		Date:                date,
		Items:               items,
		TaxAmount:           taxAmount,
		DiscountAmount:      discountAmount,
		PaymentMethod:       paymentMethod,
		PaidAmount:          paidAmount,
		ExpectedDelivery:    expectedDelivery,
		DeliveryStatus:      DeliveryStatusPending,
		Status:              PurchaseStatusOrdered,
	}
	purchase.recalculateTotals()

	if err := purchase.applyPaymentState(dueDate); err != nil {
		return nil, err
	}

	purchase.AddDomainEvent(NewPurchaseCreatedEvent(purchase))

	return purchase, nil
}

// recalculateTotals recomputes line totals, the subtotal and the grand total
func (p *Purchase) recalculateTotals() {
	subtotal := decimal.Zero
	for i := range p.Items {
		p.Items[i].TotalPrice = p.Items[i].Quantity.Mul(p.Items[i].UnitPrice)
		subtotal = subtotal.Add(p.Items[i].TotalPrice)
	}
	p.Subtotal = subtotal
	p.TotalAmount = subtotal.Add(p.TaxAmount).Sub(p.DiscountAmount)
}

// applyPaymentState derives RemainingAmount from the totals, enforces the
// due-date rule and auto-promotes a fully paid order.
func (p *Purchase) applyPaymentState(dueDate *time.Time) error {
	remaining := p.TotalAmount.Sub(p.PaidAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	p.RemainingAmount = remaining

	if remaining.GreaterThan(decimal.Zero) {
		if dueDate == nil {
			return shared.NewDomainError("INVALID_DUE_DATE", "A due date is required while a balance remains outstanding")
		}
	} else {
		dueDate = nil
	}
	p.DueDate = dueDate

	if p.Status == PurchaseStatusOrdered && p.PaidAmount.GreaterThanOrEqual(p.TotalAmount) {
		oldStatus := p.Status
		p.Status = PurchaseStatusPaid
		p.AddDomainEvent(NewPurchaseStatusChangedEvent(p, oldStatus, PurchaseStatusPaid))
	}

	return nil
}

// RecordPayment adds a payment against the outstanding balance.
// Paying the order in full clears the due date and promotes an ordered
// purchase to paid.
func (p *Purchase) RecordPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PAYMENT", "Payment amount must be greater than zero")
	}
	if p.Status == PurchaseStatusCompleted {
		return shared.NewDomainError("INVALID_STATUS", "Cannot record payments against a completed purchase")
	}

	p.PaidAmount = p.PaidAmount.Add(amount)
	if err := p.applyPaymentState(p.DueDate); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewPurchasePaymentRecordedEvent(p, amount))

	return nil
}

// MarkReceived records delivery of the goods. The actual delivery date is
// recorded once and cannot be changed afterwards.
func (p *Purchase) MarkReceived(actualDelivery time.Time) error {
	if !p.Status.CanTransitionTo(PurchaseStatusReceived) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition purchase from '"+string(p.Status)+"' to 'received'")
	}
	if actualDelivery.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Actual delivery date is required")
	}
	if p.ActualDelivery != nil {
		return shared.NewDomainError("DELIVERY_ALREADY_RECORDED", "Actual delivery date has already been recorded")
	}

	oldStatus := p.Status
	p.ActualDelivery = &actualDelivery
	p.DeliveryStatus = DeliveryStatusDelivered
	p.Status = PurchaseStatusReceived
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewPurchaseStatusChangedEvent(p, oldStatus, PurchaseStatusReceived))

	return nil
}

// UpdateDeliveryStatus updates the tracking state of an undelivered order
func (p *Purchase) UpdateDeliveryStatus(status DeliveryStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_DELIVERY_STATUS", "Delivery status must be 'pending', 'shipped', 'delivered' or 'delayed'")
	}
	if p.ActualDelivery != nil && status != DeliveryStatusDelivered {
		return shared.NewDomainError("DELIVERY_ALREADY_RECORDED", "Delivery has already been recorded")
	}

	p.DeliveryStatus = status
	p.UpdatedAt = time.Now()

	return nil
}

// Complete marks the purchase as completed. The balance must be settled.
func (p *Purchase) Complete() error {
	if !p.Status.CanTransitionTo(PurchaseStatusCompleted) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition purchase from '"+string(p.Status)+"' to 'completed'")
	}
	if p.RemainingAmount.GreaterThan(decimal.Zero) {
		return shared.NewDomainError("OUTSTANDING_BALANCE", "Cannot complete a purchase with an outstanding balance")
	}

	oldStatus := p.Status
	p.Status = PurchaseStatusCompleted
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewPurchaseStatusChangedEvent(p, oldStatus, PurchaseStatusCompleted))

	return nil
}

// MarkPaid transitions the purchase to paid. The balance must be settled.
func (p *Purchase) MarkPaid() error {
	if !p.Status.CanTransitionTo(PurchaseStatusPaid) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition purchase from '"+string(p.Status)+"' to 'paid'")
	}
	if p.RemainingAmount.GreaterThan(decimal.Zero) {
		return shared.NewDomainError("OUTSTANDING_BALANCE", "Cannot mark a purchase paid with an outstanding balance")
	}

	oldStatus := p.Status
	p.Status = PurchaseStatusPaid
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewPurchaseStatusChangedEvent(p, oldStatus, PurchaseStatusPaid))

	return nil
}

// UpdateItems replaces the line items and recomputes totals and the
// outstanding balance
func (p *Purchase) UpdateItems(items []PurchaseItem, taxAmount, discountAmount decimal.Decimal, dueDate *time.Time) error {
	if p.Status != PurchaseStatusOrdered {
		return shared.NewDomainError("INVALID_STATUS", "Only ordered purchases can be modified")
	}
	if len(items) == 0 {
		return shared.NewDomainError("INVALID_ITEMS", "Purchase must have at least one item")
	}
	if taxAmount.IsNegative() {
		return shared.NewDomainError("INVALID_TAX", "Tax amount cannot be negative")
	}
	if discountAmount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount amount cannot be negative")
	}

	p.Items = items
	p.TaxAmount = taxAmount
	p.DiscountAmount = discountAmount
	p.recalculateTotals()

	if err := p.applyPaymentState(dueDate); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewPurchaseUpdatedEvent(p))

	return nil
}

// SetNotes sets the purchase's notes
func (p *Purchase) SetNotes(notes string) {
	p.Notes = notes
	p.UpdatedAt = time.Now()
}

// IsSettled returns true if nothing remains outstanding
func (p *Purchase) IsSettled() bool {
	return p.RemainingAmount.IsZero()
}

// IsDeliveryOverdue returns true if the expected delivery date has passed
// without the goods being received
func (p *Purchase) IsDeliveryOverdue() bool {
	return p.ExpectedDelivery != nil && p.ActualDelivery == nil && time.Now().After(*p.ExpectedDelivery)
}

// DaysUntilDue returns the number of whole days until the payment due date.
// Negative values mean the payment is past due. Returns 0, false when no
// due date is set or nothing remains outstanding.
func (p *Purchase) DaysUntilDue() (int, bool) {
	if p.DueDate == nil || p.RemainingAmount.IsZero() {
		return 0, false
	}
	return int(time.Until(*p.DueDate).Hours() / 24), true
}

func validatePurchaseOrderID(purchaseOrderID string) error {
	if purchaseOrderID == "" {
		return shared.NewDomainError("INVALID_PURCHASE_ORDER_ID", "Purchase order ID cannot be empty")
	}
	if len(purchaseOrderID) > 50 {
		return shared.NewDomainError("INVALID_PURCHASE_ORDER_ID", "Purchase order ID cannot exceed 50 characters")
	}
	for _, r := range purchaseOrderID {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_PURCHASE_ORDER_ID", "Purchase order ID can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
