package finance

import (
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChequeStatus represents the status of a cheque
type ChequeStatus string

const (
	ChequeStatusPending   ChequeStatus = "pending"
	ChequeStatusDeposited ChequeStatus = "deposited"
	ChequeStatusCleared   ChequeStatus = "cleared"
	ChequeStatusBounced   ChequeStatus = "bounced"
	ChequeStatusCancelled ChequeStatus = "cancelled"
)

// IsValid checks if the status is valid
func (s ChequeStatus) IsValid() bool {
	switch s {
	case ChequeStatusPending, ChequeStatusDeposited, ChequeStatusCleared, ChequeStatusBounced, ChequeStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status.
// Cleared, bounced and cancelled are terminal.
func (s ChequeStatus) CanTransitionTo(target ChequeStatus) bool {
	transitions := map[ChequeStatus][]ChequeStatus{
		ChequeStatusPending:   {ChequeStatusDeposited, ChequeStatusCleared, ChequeStatusBounced, ChequeStatusCancelled},
		ChequeStatusDeposited: {ChequeStatusCleared, ChequeStatusBounced},
		ChequeStatusCleared:   {},
		ChequeStatusBounced:   {},
		ChequeStatusCancelled: {},
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

// IsTerminal returns true if no further transition is allowed from the status
func (s ChequeStatus) IsTerminal() bool {
	switch s {
	case ChequeStatusCleared, ChequeStatusBounced, ChequeStatusCancelled:
		return true
	}
	return false
}

// ChequeType distinguishes cheques the business writes from cheques it receives
type ChequeType string

const (
	ChequeTypeIssued   ChequeType = "issued"
	ChequeTypeReceived ChequeType = "received"
)

// IsValid checks if the cheque type is valid
func (t ChequeType) IsValid() bool {
	return t == ChequeTypeIssued || t == ChequeTypeReceived
}

// ChequeTransactionType links a cheque to the trade document it settles
type ChequeTransactionType string

const (
	ChequeTransactionSale     ChequeTransactionType = "sale"
	ChequeTransactionPurchase ChequeTransactionType = "purchase"
)

// IsValid checks if the transaction type is valid
func (t ChequeTransactionType) IsValid() bool {
	return t == ChequeTransactionSale || t == ChequeTransactionPurchase
}

// maxNotesLength bounds free-text notes on history entries
const maxNotesLength = 500

// overdueAfterDays is how long a cheque may stay pending before it counts
// as overdue
const overdueAfterDays = 30

// StatusChange is a single entry in a cheque's status history.
// The history is append-only; entries are never edited or removed.
type StatusChange struct {
	Status ChequeStatus `json:"status"`
	Date   time.Time    `json:"date"`
	Notes  string       `json:"notes"`
}

// Cheque represents a cheque instrument in the finance context.
// Every status change is appended to StatusHistory, so the history always
// ends with the current status and is never empty after creation.
type Cheque struct {
	shared.TenantAggregateRoot
	ChequeNumber    string                `gorm:"type:varchar(50);not null;uniqueIndex:idx_cheque_tenant_number,priority:2"`
	Type            ChequeType            `gorm:"type:varchar(20);not null"`
	TransactionType ChequeTransactionType `gorm:"type:varchar(20);not null"`
	CustomerID      *uuid.UUID            `gorm:"type:uuid;index"` // Set for sale-related cheques
	SupplierID      *uuid.UUID            `gorm:"type:uuid;index"` // Set for purchase-related cheques
	Amount          decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	ChequeDate      time.Time             `gorm:"not null;index"`
	ClearanceDate   *time.Time            `gorm:""` // Never earlier than ChequeDate
	BankName        string                `gorm:"type:varchar(200)"`
	Status          ChequeStatus          `gorm:"type:varchar(20);not null;default:'pending'"`
	StatusHistory   []StatusChange        `gorm:"-"` // Persisted as jsonb by the persistence model
	DepositDate     *time.Time            `gorm:""`
	BounceDate      *time.Time            `gorm:""` // Never earlier than DepositDate
	BounceReason    string                `gorm:"type:varchar(500)"`
	BankCharges     decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Notes           string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Cheque) TableName() string {
	return "cheques"
}

// NewCheque creates a new cheque and seeds its status history.
// A sale-related cheque must name a customer, a purchase-related cheque a
// supplier, never both.
func NewCheque(
	tenantID uuid.UUID,
	chequeNumber string,
	chequeType ChequeType,
	transactionType ChequeTransactionType,
	customerID, supplierID *uuid.UUID,
	amount decimal.Decimal,
	chequeDate time.Time,
	bankName string,
) (*Cheque, error) {
	if err := validateChequeNumber(chequeNumber); err != nil {
		return nil, err
	}
	if !chequeType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CHEQUE_TYPE", "Cheque type must be 'issued' or 'received'")
	}
	if !transactionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be 'sale' or 'purchase'")
	}
	if transactionType == ChequeTransactionSale {
		if customerID == nil || *customerID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_RELATED_PARTY", "A sale-related cheque requires a customer")
		}
		supplierID = nil
	} else {
		if supplierID == nil || *supplierID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_RELATED_PARTY", "A purchase-related cheque requires a supplier")
		}
		customerID = nil
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Cheque amount must be greater than zero")
	}
	if chequeDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Cheque date is required")
	}
	if len(bankName) > 200 {
		return nil, shared.NewDomainError("INVALID_BANK_NAME", "Bank name cannot exceed 200 characters")
	}

	cheque := &Cheque{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ChequeNumber:        strings.ToUpper(chequeNumber),
		Type:                chequeType,
		TransactionType:     transactionType,
		CustomerID:          customerID,
		SupplierID:          supplierID,
		Amount:              amount,
		ChequeDate:          chequeDate,
		BankName:            bankName,
		Status:              ChequeStatusPending,
		BankCharges:         decimal.Zero,
	}
	cheque.appendHistory(ChequeStatusPending, "Cheque created")

	cheque.AddDomainEvent(NewChequeCreatedEvent(cheque))

	return cheque, nil
}

// appendHistory records a status change in the audit trail
func (c *Cheque) appendHistory(status ChequeStatus, notes string) {
	c.StatusHistory = append(c.StatusHistory, StatusChange{
		Status: status,
		Date:   time.Now(),
		Notes:  notes,
	})
}

// Transition moves the cheque to the target status, appends the history
// entry and applies the status-specific side effects.
// Transitioning to bounced requires a bounce reason to have been supplied
// already; use Bounce to do both in one step.
func (c *Cheque) Transition(target ChequeStatus, notes string) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown cheque status '"+string(target)+"'")
	}
	if len(notes) > maxNotesLength {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 500 characters")
	}
	if !c.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition cheque from '"+string(c.Status)+"' to '"+string(target)+"'")
	}

	now := time.Now()

	switch target {
	case ChequeStatusDeposited:
		if c.DepositDate == nil {
			c.DepositDate = &now
		}
	case ChequeStatusCleared:
		if now.Before(c.ChequeDate) {
			return shared.NewDomainError("INVALID_CLEARANCE_DATE", "Clearance date cannot be earlier than the cheque date")
		}
		if c.ClearanceDate == nil {
			c.ClearanceDate = &now
		}
	case ChequeStatusBounced:
		if strings.TrimSpace(c.BounceReason) == "" {
			return shared.NewDomainError("BOUNCE_REASON_REQUIRED", "A bounce reason is required to mark a cheque bounced")
		}
		if c.DepositDate != nil && now.Before(*c.DepositDate) {
			return shared.NewDomainError("INVALID_BOUNCE_DATE", "Bounce date cannot be earlier than the deposit date")
		}
		if c.BounceDate == nil {
			c.BounceDate = &now
		}
	}

	oldStatus := c.Status
	c.Status = target
	c.appendHistory(target, notes)
	c.UpdatedAt = now
	c.IncrementVersion()

	c.AddDomainEvent(NewChequeStatusChangedEvent(c, oldStatus, target))

	return nil
}

// Deposit marks the cheque as deposited
func (c *Cheque) Deposit(notes string) error {
	return c.Transition(ChequeStatusDeposited, notes)
}

// Clear marks the cheque as cleared
func (c *Cheque) Clear(notes string) error {
	return c.Transition(ChequeStatusCleared, notes)
}

// Bounce records the bounce reason and marks the cheque as bounced
func (c *Cheque) Bounce(reason, notes string) error {
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("BOUNCE_REASON_REQUIRED", "A bounce reason is required to mark a cheque bounced")
	}
	if len(reason) > maxNotesLength {
		return shared.NewDomainError("INVALID_REASON", "Bounce reason cannot exceed 500 characters")
	}

	c.BounceReason = reason
	return c.Transition(ChequeStatusBounced, notes)
}

// Cancel cancels the cheque
func (c *Cheque) Cancel(notes string) error {
	return c.Transition(ChequeStatusCancelled, notes)
}

// SetBankCharges records charges levied by the bank for this cheque
func (c *Cheque) SetBankCharges(charges decimal.Decimal) error {
	if charges.IsNegative() {
		return shared.NewDomainError("INVALID_BANK_CHARGES", "Bank charges cannot be negative")
	}

	c.BankCharges = charges
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets the cheque's notes
func (c *Cheque) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// DaysSinceChequeDate returns full days elapsed since the cheque date
func (c *Cheque) DaysSinceChequeDate() int {
	return int(time.Since(c.ChequeDate).Hours() / 24)
}

// IsOverdue returns true if the cheque has stayed pending for more than 30 days
func (c *Cheque) IsOverdue() bool {
	return c.Status == ChequeStatusPending && c.DaysSinceChequeDate() > overdueAfterDays
}

// ProcessingDuration returns the days between deposit and clearance, or nil
// if either date is missing
func (c *Cheque) ProcessingDuration() *int {
	if c.DepositDate == nil || c.ClearanceDate == nil {
		return nil
	}
	days := int(c.ClearanceDate.Sub(*c.DepositDate).Hours() / 24)
	return &days
}

// CurrentHistoryEntry returns the most recent status history entry
func (c *Cheque) CurrentHistoryEntry() *StatusChange {
	if len(c.StatusHistory) == 0 {
		return nil
	}
	return &c.StatusHistory[len(c.StatusHistory)-1]
}

func validateChequeNumber(chequeNumber string) error {
	if chequeNumber == "" {
		return shared.NewDomainError("INVALID_CHEQUE_NUMBER", "Cheque number cannot be empty")
	}
	if len(chequeNumber) > 50 {
		return shared.NewDomainError("INVALID_CHEQUE_NUMBER", "Cheque number cannot exceed 50 characters")
	}
	for _, r := range chequeNumber {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CHEQUE_NUMBER", "Cheque number can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
