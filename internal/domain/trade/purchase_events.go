package trade

import (
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for purchases
const (
	EventTypePurchaseCreated         = "purchase.created"
	EventTypePurchaseUpdated         = "purchase.updated"
	EventTypePurchaseStatusChanged   = "purchase.status_changed"
	EventTypePurchasePaymentRecorded = "purchase.payment_recorded"

	AggregateTypePurchase = "Purchase"
)

// PurchaseCreatedEvent is raised when a purchase order is recorded
type PurchaseCreatedEvent struct {
	shared.BaseDomainEvent
	Purchase *Purchase
}

// NewPurchaseCreatedEvent creates a new PurchaseCreatedEvent
func NewPurchaseCreatedEvent(purchase *Purchase) *PurchaseCreatedEvent {
	return &PurchaseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseCreated, AggregateTypePurchase, purchase.ID, purchase.TenantID),
		Purchase:        purchase,
	}
}

// PurchaseUpdatedEvent is raised when a purchase order's items change
type PurchaseUpdatedEvent struct {
	shared.BaseDomainEvent
	Purchase *Purchase
}

// NewPurchaseUpdatedEvent creates a new PurchaseUpdatedEvent
func NewPurchaseUpdatedEvent(purchase *Purchase) *PurchaseUpdatedEvent {
	return &PurchaseUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseUpdated, AggregateTypePurchase, purchase.ID, purchase.TenantID),
		Purchase:        purchase,
	}
}

// PurchaseStatusChangedEvent is raised when a purchase order's status changes
type PurchaseStatusChangedEvent struct {
	shared.BaseDomainEvent
	Purchase  *Purchase
	OldStatus PurchaseStatus
	NewStatus PurchaseStatus
}

// NewPurchaseStatusChangedEvent creates a new PurchaseStatusChangedEvent
func NewPurchaseStatusChangedEvent(purchase *Purchase, oldStatus, newStatus PurchaseStatus) *PurchaseStatusChangedEvent {
	return &PurchaseStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseStatusChanged, AggregateTypePurchase, purchase.ID, purchase.TenantID),
		Purchase:        purchase,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// PurchasePaymentRecordedEvent is raised when a payment is applied to a
// purchase order
type PurchasePaymentRecordedEvent struct {
	shared.BaseDomainEvent
	Purchase *Purchase
	Amount   decimal.Decimal
}

// NewPurchasePaymentRecordedEvent creates a new PurchasePaymentRecordedEvent
func NewPurchasePaymentRecordedEvent(purchase *Purchase, amount decimal.Decimal) *PurchasePaymentRecordedEvent {
	return &PurchasePaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchasePaymentRecorded, AggregateTypePurchase, purchase.ID, purchase.TenantID),
		Purchase:        purchase,
		Amount:          amount,
	}
}
