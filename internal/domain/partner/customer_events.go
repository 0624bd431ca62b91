package partner

import (
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeCustomer = "Customer"

// Event type constants
const (
	EventTypeCustomerCreated             = "CustomerCreated"
	EventTypeCustomerUpdated             = "CustomerUpdated"
	EventTypeCustomerStatusChanged       = "CustomerStatusChanged"
	EventTypeCustomerCreditReserved      = "CustomerCreditReserved"
	EventTypeCustomerCreditReleased      = "CustomerCreditReleased"
	EventTypeCustomerCreditRatingChanged = "CustomerCreditRatingChanged"
)

// CustomerCreatedEvent is published when a new customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Code:            customer.Code,
		Name:            customer.Name,
	}
}

// CustomerUpdatedEvent is published when a customer is updated
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
}

// NewCustomerUpdatedEvent creates a new CustomerUpdatedEvent
func NewCustomerUpdatedEvent(customer *Customer) *CustomerUpdatedEvent {
	return &CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerUpdated, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Code:            customer.Code,
		Name:            customer.Name,
	}
}

// CustomerStatusChangedEvent is published when a customer's status changes
type CustomerStatusChangedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID      `json:"customer_id"`
	Code       string         `json:"code"`
	OldStatus  CustomerStatus `json:"old_status"`
	NewStatus  CustomerStatus `json:"new_status"`
}

// NewCustomerStatusChangedEvent creates a new CustomerStatusChangedEvent
func NewCustomerStatusChangedEvent(customer *Customer, oldStatus, newStatus CustomerStatus) *CustomerStatusChangedEvent {
	return &CustomerStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerStatusChanged, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Code:            customer.Code,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// CustomerCreditReservedEvent is published when available credit is committed to a sale
type CustomerCreditReservedEvent struct {
	shared.BaseDomainEvent
	CustomerID      uuid.UUID       `json:"customer_id"`
	Amount          decimal.Decimal `json:"amount"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
}

// NewCustomerCreditReservedEvent creates a new CustomerCreditReservedEvent
func NewCustomerCreditReservedEvent(customer *Customer, amount decimal.Decimal) *CustomerCreditReservedEvent {
	return &CustomerCreditReservedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreditReserved, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Amount:          amount,
		AvailableCredit: customer.AvailableCredit,
	}
}

// CustomerCreditReleasedEvent is published when reserved credit is returned
type CustomerCreditReleasedEvent struct {
	shared.BaseDomainEvent
	CustomerID      uuid.UUID       `json:"customer_id"`
	Amount          decimal.Decimal `json:"amount"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
}

// NewCustomerCreditReleasedEvent creates a new CustomerCreditReleasedEvent
func NewCustomerCreditReleasedEvent(customer *Customer, amount decimal.Decimal) *CustomerCreditReleasedEvent {
	return &CustomerCreditReleasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreditReleased, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		Amount:          amount,
		AvailableCredit: customer.AvailableCredit,
	}
}

// CustomerCreditRatingChangedEvent is published when a credit rating changes
type CustomerCreditRatingChangedEvent struct {
	shared.BaseDomainEvent
	CustomerID     uuid.UUID `json:"customer_id"`
	PreviousRating int       `json:"previous_rating"`
	NewRating      int       `json:"new_rating"`
	Reason         string    `json:"reason"`
}

// NewCustomerCreditRatingChangedEvent creates a new CustomerCreditRatingChangedEvent
func NewCustomerCreditRatingChangedEvent(customer *Customer, previousRating, newRating int, reason string) *CustomerCreditRatingChangedEvent {
	return &CustomerCreditRatingChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreditRatingChanged, AggregateTypeCustomer, customer.ID, customer.TenantID),
		CustomerID:      customer.ID,
		PreviousRating:  previousRating,
		NewRating:       newRating,
		Reason:          reason,
	}
}
