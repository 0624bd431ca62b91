package finance

import (
	"github.com/bizledger/backend/internal/domain/shared"
)

// Event types for cheques
const (
	EventTypeChequeCreated       = "cheque.created"
	EventTypeChequeStatusChanged = "cheque.status_changed"

	AggregateTypeCheque = "Cheque"
)

// ChequeCreatedEvent is raised when a cheque is recorded
type ChequeCreatedEvent struct {
	shared.BaseDomainEvent
	Cheque *Cheque
}

// NewChequeCreatedEvent creates a new ChequeCreatedEvent
func NewChequeCreatedEvent(cheque *Cheque) *ChequeCreatedEvent {
	return &ChequeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeChequeCreated, AggregateTypeCheque, cheque.ID, cheque.TenantID),
		Cheque:          cheque,
	}
}

// ChequeStatusChangedEvent is raised when a cheque moves through its lifecycle
type ChequeStatusChangedEvent struct {
	shared.BaseDomainEvent
	Cheque    *Cheque
	OldStatus ChequeStatus
	NewStatus ChequeStatus
}

// NewChequeStatusChangedEvent creates a new ChequeStatusChangedEvent
func NewChequeStatusChangedEvent(cheque *Cheque, oldStatus, newStatus ChequeStatus) *ChequeStatusChangedEvent {
	return &ChequeStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeChequeStatusChanged, AggregateTypeCheque, cheque.ID, cheque.TenantID),
		Cheque:          cheque,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
