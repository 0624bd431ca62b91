package trade

import (
	"github.com/bizledger/backend/internal/domain/shared"
)

// Event types for sales
const (
	EventTypeSaleCreated       = "sale.created"
	EventTypeSaleUpdated       = "sale.updated"
	EventTypeSaleStatusChanged = "sale.status_changed"

	AggregateTypeSale = "Sale"
)

// SaleCreatedEvent is raised when a sale is recorded
type SaleCreatedEvent struct {
	shared.BaseDomainEvent
	Sale *Sale
}

// NewSaleCreatedEvent creates a new SaleCreatedEvent
func NewSaleCreatedEvent(sale *Sale) *SaleCreatedEvent {
	return &SaleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCreated, AggregateTypeSale, sale.ID, sale.TenantID),
		Sale:            sale,
	}
}

// SaleUpdatedEvent is raised when a sale's items or payment change
type SaleUpdatedEvent struct {
	shared.BaseDomainEvent
	Sale *Sale
}

// NewSaleUpdatedEvent creates a new SaleUpdatedEvent
func NewSaleUpdatedEvent(sale *Sale) *SaleUpdatedEvent {
	return &SaleUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleUpdated, AggregateTypeSale, sale.ID, sale.TenantID),
		Sale:            sale,
	}
}

// SaleStatusChangedEvent is raised when a sale's status changes
type SaleStatusChangedEvent struct {
	shared.BaseDomainEvent
	Sale      *Sale
	OldStatus SaleStatus
	NewStatus SaleStatus
}

// NewSaleStatusChangedEvent creates a new SaleStatusChangedEvent
func NewSaleStatusChangedEvent(sale *Sale, oldStatus, newStatus SaleStatus) *SaleStatusChangedEvent {
	return &SaleStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleStatusChanged, AggregateTypeSale, sale.ID, sale.TenantID),
		Sale:            sale,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
