package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusInactive  CustomerStatus = "inactive"
	CustomerStatusSuspended CustomerStatus = "suspended" // Suspended due to credit issues
)

// RiskCategory classifies the credit risk of a customer
type RiskCategory string

const (
	RiskCategoryLow    RiskCategory = "low"
	RiskCategoryMedium RiskCategory = "medium"
	RiskCategoryHigh   RiskCategory = "high"
)

// Credit rating bounds
const (
	MinCreditRating = 1
	MaxCreditRating = 10
)

// maxReasonLength bounds free-text reasons on credit history entries
const maxReasonLength = 500

// CreditRatingChange is a single entry in a customer's credit history.
// The history is append-only; entries are never edited or removed.
type CreditRatingChange struct {
	Date           time.Time `json:"date"`
	PreviousRating int       `json:"previous_rating"`
	NewRating      int       `json:"new_rating"`
	Reason         string    `json:"reason"`
}

// Customer represents a customer in the partner context.
// It is the aggregate root for customer-related operations and owns the
// credit profile that sales transactions draw against.
type Customer struct {
	shared.TenantAggregateRoot
	Code            string               `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	Name            string               `gorm:"type:varchar(200);not null"`
	ContactName     string               `gorm:"type:varchar(100)"` // Primary contact person
	Phone           string               `gorm:"type:varchar(50);index"`
	Email           string               `gorm:"type:varchar(200);index"`
	Address         string               `gorm:"type:text"`
	Status          CustomerStatus       `gorm:"type:varchar(20);not null;default:'active'"`
	CreditRating    int                  `gorm:"not null;default:5"` // 1 (worst) to 10 (best)
	CreditLimit     decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	AvailableCredit decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"` // Never exceeds CreditLimit
	PaymentTerms    string               `gorm:"type:varchar(100)"`                     // e.g. "net 30"
	RiskCategory    RiskCategory         `gorm:"type:varchar(20);not null;default:'medium'"`
	CreditHistory   []CreditRatingChange `gorm:"-"` // Persisted as jsonb by the persistence model
	Notes           string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(tenantID uuid.UUID, code, name string) (*Customer, error) {
	if err := validateCustomerCode(code); err != nil {
		return nil, err
	}
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	customer := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		Status:              CustomerStatusActive,
		CreditRating:        5,
		CreditLimit:         decimal.Zero,
		AvailableCredit:     decimal.Zero,
		RiskCategory:        RiskCategoryMedium,
		CreditHistory:       make([]CreditRatingChange, 0),
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// UpdateCode updates the customer's code
func (c *Customer) UpdateCode(code string) error {
	if err := validateCustomerCode(code); err != nil {
		return err
	}

	c.Code = strings.ToUpper(code)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the customer's address
func (c *Customer) SetAddress(address string) error {
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets the customer's notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetPaymentTerms sets the customer's payment terms description
func (c *Customer) SetPaymentTerms(terms string) error {
	if len(terms) > 100 {
		return shared.NewDomainError("INVALID_PAYMENT_TERMS", "Payment terms cannot exceed 100 characters")
	}

	c.PaymentTerms = terms
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetRiskCategory sets the customer's risk classification
func (c *Customer) SetRiskCategory(category RiskCategory) error {
	switch category {
	case RiskCategoryLow, RiskCategoryMedium, RiskCategoryHigh:
	default:
		return shared.NewDomainError("INVALID_RISK_CATEGORY", "Risk category must be 'low', 'medium' or 'high'")
	}

	c.RiskCategory = category
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetCreditLimit sets the customer's credit limit.
// The outstanding credit exposure (limit minus available) is preserved, so
// raising the limit frees up credit and lowering it reduces availability.
// AvailableCredit is clamped to [0, limit] afterwards.
func (c *Customer) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}

	exposure := c.CreditLimit.Sub(c.AvailableCredit)
	c.CreditLimit = limit
	c.AvailableCredit = limit.Sub(exposure)
	c.clampAvailableCredit()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// ReserveCredit commits part of the customer's available credit to a sale.
// The customer must be active and the amount must not exceed the available
// credit; otherwise the reservation is rejected and nothing changes.
func (c *Customer) ReserveCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Credit amount cannot be negative")
	}
	if amount.IsZero() {
		return nil
	}
	if !c.IsActive() {
		return shared.NewDomainError("CUSTOMER_NOT_ACTIVE", "Cannot extend credit to a customer that is not active")
	}
	if amount.GreaterThan(c.AvailableCredit) {
		return shared.ErrCreditLimitExceeded
	}

	c.AvailableCredit = c.AvailableCredit.Sub(amount)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerCreditReservedEvent(c, amount))

	return nil
}

// ReleaseCredit returns previously reserved credit to the customer, clamped
// so AvailableCredit never exceeds CreditLimit.
func (c *Customer) ReleaseCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Credit amount cannot be negative")
	}
	if amount.IsZero() {
		return nil
	}

	c.AvailableCredit = c.AvailableCredit.Add(amount)
	c.clampAvailableCredit()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerCreditReleasedEvent(c, amount))

	return nil
}

// ChangeCreditRating records a credit rating change with its reason.
// The previous rating and the reason are appended to the credit history
// before the new rating takes effect.
func (c *Customer) ChangeCreditRating(newRating int, reason string) error {
	if newRating < MinCreditRating || newRating > MaxCreditRating {
		return shared.NewDomainError("INVALID_CREDIT_RATING", "Credit rating must be between 1 and 10")
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_REASON", "A reason is required for credit rating changes")
	}
	if len(reason) > maxReasonLength {
		return shared.NewDomainError("INVALID_REASON", "Reason cannot exceed 500 characters")
	}

	previous := c.CreditRating
	c.CreditHistory = append(c.CreditHistory, CreditRatingChange{
		Date:           time.Now(),
		PreviousRating: previous,
		NewRating:      newRating,
		Reason:         reason,
	})
	c.CreditRating = newRating
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerCreditRatingChangedEvent(c, previous, newRating, reason))

	return nil
}

// clampAvailableCredit enforces 0 <= AvailableCredit <= CreditLimit.
// Called on every mutation that touches the credit fields so a customer is
// never persisted with more available credit than its limit.
func (c *Customer) clampAvailableCredit() {
	if c.AvailableCredit.GreaterThan(c.CreditLimit) {
		c.AvailableCredit = c.CreditLimit
	}
	if c.AvailableCredit.IsNegative() {
		c.AvailableCredit = decimal.Zero
	}
}

// Activate activates the customer
func (c *Customer) Activate() error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, CustomerStatusActive))

	return nil
}

// Deactivate deactivates the customer
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, CustomerStatusInactive))

	return nil
}

// Suspend suspends the customer (e.g., due to credit issues)
func (c *Customer) Suspend() error {
	if c.Status == CustomerStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Customer is already suspended")
	}

	oldStatus := c.Status
	c.Status = CustomerStatusSuspended
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerStatusChangedEvent(c, oldStatus, CustomerStatusSuspended))

	return nil
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// IsSuspended returns true if the customer is suspended
func (c *Customer) IsSuspended() bool {
	return c.Status == CustomerStatusSuspended
}

// CreditExposure returns the portion of the credit limit currently committed
func (c *Customer) CreditExposure() decimal.Decimal {
	return c.CreditLimit.Sub(c.AvailableCredit)
}

// CreditUtilization returns the percentage of the credit limit in use (0-100)
func (c *Customer) CreditUtilization() decimal.Decimal {
	if c.CreditLimit.IsZero() {
		return decimal.Zero
	}
	return c.CreditExposure().Div(c.CreditLimit).Mul(decimal.NewFromInt(100)).Round(2)
}

// HasCreditLimit returns true if the customer has a credit limit set
func (c *Customer) HasCreditLimit() bool {
	return c.CreditLimit.GreaterThan(decimal.Zero)
}

// Validation functions

func validateCustomerCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Customer code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Customer code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Customer code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
