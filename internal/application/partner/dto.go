package partner

import (
	"time"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Code         string           `json:"code" binding:"required,min=1,max=50"`
	Name         string           `json:"name" binding:"required,min=1,max=200"`
	ContactName  string           `json:"contact_name" binding:"max=100"`
	Phone        string           `json:"phone" binding:"max=50"`
	Email        string           `json:"email" binding:"omitempty,email,max=200"`
	Address      string           `json:"address" binding:"max=500"`
	CreditLimit  *decimal.Decimal `json:"credit_limit"`
	PaymentTerms string           `json:"payment_terms" binding:"max=100"`
	RiskCategory string           `json:"risk_category" binding:"omitempty,oneof=low medium high"`
	Notes        string           `json:"notes"`
	CreatedBy    *uuid.UUID       `json:"-"` // Set from JWT context, not from request body
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName  *string          `json:"contact_name" binding:"omitempty,max=100"`
	Phone        *string          `json:"phone" binding:"omitempty,max=50"`
	Email        *string          `json:"email" binding:"omitempty,email,max=200"`
	Address      *string          `json:"address" binding:"omitempty,max=500"`
	CreditLimit  *decimal.Decimal `json:"credit_limit"`
	PaymentTerms *string          `json:"payment_terms" binding:"omitempty,max=100"`
	RiskCategory *string          `json:"risk_category" binding:"omitempty,oneof=low medium high"`
	Notes        *string          `json:"notes"`
}

// UpdateCustomerCodeRequest represents a request to update a customer's code
type UpdateCustomerCodeRequest struct {
	Code string `json:"code" binding:"required,min=1,max=50"`
}

// ChangeCreditRatingRequest represents a request to change a customer's
// credit rating; a reason is always required
type ChangeCreditRatingRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=10"`
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// CreditRatingChangeResponse represents one credit history entry
type CreditRatingChangeResponse struct {
	Date           time.Time `json:"date"`
	PreviousRating int       `json:"previous_rating"`
	NewRating      int       `json:"new_rating"`
	Reason         string    `json:"reason"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID              uuid.UUID                    `json:"id"`
	TenantID        uuid.UUID                    `json:"tenant_id"`
	Code            string                       `json:"code"`
	Name            string                       `json:"name"`
	Status          string                       `json:"status"`
	ContactName     string                       `json:"contact_name"`
	Phone           string                       `json:"phone"`
	Email           string                       `json:"email"`
	Address         string                       `json:"address"`
	CreditRating    int                          `json:"credit_rating"`
	CreditLimit     decimal.Decimal              `json:"credit_limit"`
	AvailableCredit decimal.Decimal              `json:"available_credit"`
	CreditExposure  decimal.Decimal              `json:"credit_exposure"`
	Utilization     decimal.Decimal              `json:"utilization_percent"`
	PaymentTerms    string                       `json:"payment_terms"`
	RiskCategory    string                       `json:"risk_category"`
	CreditHistory   []CreditRatingChangeResponse `json:"credit_history"`
	Notes           string                       `json:"notes"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
	Version         int                          `json:"version"`
}

// CustomerListResponse represents a list item for customers
type CustomerListResponse struct {
	ID              uuid.UUID       `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	ContactName     string          `json:"contact_name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	CreditRating    int             `json:"credit_rating"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	RiskCategory    string          `json:"risk_category"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CustomerListFilter represents filter options for customer list
type CustomerListFilter struct {
	Search       string `form:"search"`
	Status       string `form:"status" binding:"omitempty,oneof=active inactive suspended"`
	RiskCategory string `form:"risk_category" binding:"omitempty,oneof=low medium high"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(customer *partner.Customer) CustomerResponse {
	history := make([]CreditRatingChangeResponse, 0, len(customer.CreditHistory))
	for _, change := range customer.CreditHistory {
		history = append(history, CreditRatingChangeResponse{
			Date:           change.Date,
			PreviousRating: change.PreviousRating,
			NewRating:      change.NewRating,
			Reason:         change.Reason,
		})
	}

	return CustomerResponse{
		ID:              customer.ID,
		TenantID:        customer.TenantID,
		Code:            customer.Code,
		Name:            customer.Name,
		Status:          string(customer.Status),
		ContactName:     customer.ContactName,
		Phone:           customer.Phone,
		Email:           customer.Email,
		Address:         customer.Address,
		CreditRating:    customer.CreditRating,
		CreditLimit:     customer.CreditLimit,
		AvailableCredit: customer.AvailableCredit,
		CreditExposure:  customer.CreditExposure(),
		Utilization:     customer.CreditUtilization(),
		PaymentTerms:    customer.PaymentTerms,
		RiskCategory:    string(customer.RiskCategory),
		CreditHistory:   history,
		Notes:           customer.Notes,
		CreatedAt:       customer.CreatedAt,
		UpdatedAt:       customer.UpdatedAt,
		Version:         customer.Version,
	}
}

// ToCustomerListResponses converts domain customers to list DTOs
func ToCustomerListResponses(customers []partner.Customer) []CustomerListResponse {
	responses := make([]CustomerListResponse, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		responses = append(responses, CustomerListResponse{
			ID:              c.ID,
			Code:            c.Code,
			Name:            c.Name,
			Status:          string(c.Status),
			ContactName:     c.ContactName,
			Phone:           c.Phone,
			Email:           c.Email,
			CreditRating:    c.CreditRating,
			CreditLimit:     c.CreditLimit,
			AvailableCredit: c.AvailableCredit,
			RiskCategory:    string(c.RiskCategory),
			CreatedAt:       c.CreatedAt,
		})
	}
	return responses
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Code        string     `json:"code" binding:"required,min=1,max=50"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	ContactName string     `json:"contact_name" binding:"max=100"`
	Phone       string     `json:"phone" binding:"max=50"`
	Email       string     `json:"email" binding:"omitempty,email,max=200"`
	Address     string     `json:"address" binding:"max=500"`
	BankName    string     `json:"bank_name" binding:"max=200"`
	BankAccount string     `json:"bank_account" binding:"max=100"`
	Notes       string     `json:"notes"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	BankName    *string `json:"bank_name" binding:"omitempty,max=200"`
	BankAccount *string `json:"bank_account" binding:"omitempty,max=100"`
	Notes       *string `json:"notes"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	BankName    string    `json:"bank_name"`
	BankAccount string    `json:"bank_account"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// SupplierListResponse represents a list item for suppliers
type SupplierListResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupplierListFilter represents filter options for supplier list
type SupplierListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(supplier *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          supplier.ID,
		TenantID:    supplier.TenantID,
		Code:        supplier.Code,
		Name:        supplier.Name,
		Status:      string(supplier.Status),
		ContactName: supplier.ContactName,
		Phone:       supplier.Phone,
		Email:       supplier.Email,
		Address:     supplier.Address,
		BankName:    supplier.BankName,
		BankAccount: supplier.BankAccount,
		Notes:       supplier.Notes,
		CreatedAt:   supplier.CreatedAt,
		UpdatedAt:   supplier.UpdatedAt,
		Version:     supplier.Version,
	}
}

// ToSupplierListResponses converts domain suppliers to list DTOs
func ToSupplierListResponses(suppliers []partner.Supplier) []SupplierListResponse {
	responses := make([]SupplierListResponse, 0, len(suppliers))
	for i := range suppliers {
		s := &suppliers[i]
		responses = append(responses, SupplierListResponse{
			ID:          s.ID,
			Code:        s.Code,
			Name:        s.Name,
			Status:      string(s.Status),
			ContactName: s.ContactName,
			Phone:       s.Phone,
			Email:       s.Email,
			CreatedAt:   s.CreatedAt,
		})
	}
	return responses
}
