package finance

import (
	"time"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateChequeRequest represents a request to record a cheque
type CreateChequeRequest struct {
	ChequeNumber    string          `json:"cheque_number" binding:"required,min=1,max=50"`
	Type            string          `json:"type" binding:"required,oneof=issued received"`
	TransactionType string          `json:"transaction_type" binding:"required,oneof=sale purchase"`
	CustomerID      *uuid.UUID      `json:"customer_id"`
	SupplierID      *uuid.UUID      `json:"supplier_id"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	ChequeDate      time.Time       `json:"cheque_date" binding:"required"`
	BankName        string          `json:"bank_name" binding:"max=200"`
	Notes           string          `json:"notes"`
	CreatedBy       *uuid.UUID      `json:"-"`
}

// TransitionChequeRequest represents a status transition request.
// BounceReason is required when the target status is bounced.
type TransitionChequeRequest struct {
	Status       string `json:"status" binding:"required,oneof=pending deposited cleared bounced cancelled"`
	Notes        string `json:"notes" binding:"max=500"`
	BounceReason string `json:"bounce_reason" binding:"max=500"`
}

// SetBankChargesRequest records bank charges against a cheque
type SetBankChargesRequest struct {
	Charges decimal.Decimal `json:"charges" binding:"required"`
}

// StatusChangeResponse represents one status history entry
type StatusChangeResponse struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes"`
}

// ChequeResponse represents a cheque in API responses
type ChequeResponse struct {
	ID                 uuid.UUID              `json:"id"`
	TenantID           uuid.UUID              `json:"tenant_id"`
	ChequeNumber       string                 `json:"cheque_number"`
	Type               string                 `json:"type"`
	TransactionType    string                 `json:"transaction_type"`
	CustomerID         *uuid.UUID             `json:"customer_id,omitempty"`
	SupplierID         *uuid.UUID             `json:"supplier_id,omitempty"`
	Amount             decimal.Decimal        `json:"amount"`
	ChequeDate         time.Time              `json:"cheque_date"`
	ClearanceDate      *time.Time             `json:"clearance_date,omitempty"`
	BankName           string                 `json:"bank_name"`
	Status             string                 `json:"status"`
	StatusHistory      []StatusChangeResponse `json:"status_history"`
	DepositDate        *time.Time             `json:"deposit_date,omitempty"`
	BounceDate         *time.Time             `json:"bounce_date,omitempty"`
	BounceReason       string                 `json:"bounce_reason,omitempty"`
	BankCharges        decimal.Decimal        `json:"bank_charges"`
	Notes              string                 `json:"notes"`
	DaysSinceCheque    int                    `json:"days_since_cheque_date"`
	IsOverdue          bool                   `json:"is_overdue"`
	ProcessingDuration *int                   `json:"processing_duration_days,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	Version            int                    `json:"version"`
}

// ChequeListResponse represents a list item for cheques
type ChequeListResponse struct {
	ID           uuid.UUID       `json:"id"`
	ChequeNumber string          `json:"cheque_number"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	ChequeDate   time.Time       `json:"cheque_date"`
	Status       string          `json:"status"`
	IsOverdue    bool            `json:"is_overdue"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ChequeListFilter represents filter options for cheque list
type ChequeListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=pending deposited cleared bounced cancelled"`
	Type       string     `form:"type" binding:"omitempty,oneof=issued received"`
	CustomerID *uuid.UUID `form:"customer_id"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Overdue    bool       `form:"overdue"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToChequeResponse converts a domain cheque to a response DTO
func ToChequeResponse(cheque *finance.Cheque) ChequeResponse {
	history := make([]StatusChangeResponse, 0, len(cheque.StatusHistory))
	for _, change := range cheque.StatusHistory {
		history = append(history, StatusChangeResponse{
			Status: string(change.Status),
			Date:   change.Date,
			Notes:  change.Notes,
		})
	}

	return ChequeResponse{
		ID:                 cheque.ID,
		TenantID:           cheque.TenantID,
		ChequeNumber:       cheque.ChequeNumber,
		Type:               string(cheque.Type),
		TransactionType:    string(cheque.TransactionType),
		CustomerID:         cheque.CustomerID,
		SupplierID:         cheque.SupplierID,
		Amount:             cheque.Amount,
		ChequeDate:         cheque.ChequeDate,
		ClearanceDate:      cheque.ClearanceDate,
		BankName:           cheque.BankName,
		Status:             string(cheque.Status),
		StatusHistory:      history,
		DepositDate:        cheque.DepositDate,
		BounceDate:         cheque.BounceDate,
		BounceReason:       cheque.BounceReason,
		BankCharges:        cheque.BankCharges,
		Notes:              cheque.Notes,
		DaysSinceCheque:    cheque.DaysSinceChequeDate(),
		IsOverdue:          cheque.IsOverdue(),
		ProcessingDuration: cheque.ProcessingDuration(),
		CreatedAt:          cheque.CreatedAt,
		UpdatedAt:          cheque.UpdatedAt,
		Version:            cheque.Version,
	}
}

// ToChequeListResponses converts domain cheques to list DTOs
func ToChequeListResponses(cheques []finance.Cheque) []ChequeListResponse {
	responses := make([]ChequeListResponse, 0, len(cheques))
	for i := range cheques {
		c := &cheques[i]
		responses = append(responses, ChequeListResponse{
			ID:           c.ID,
			ChequeNumber: c.ChequeNumber,
			Type:         string(c.Type),
			Amount:       c.Amount,
			ChequeDate:   c.ChequeDate,
			Status:       string(c.Status),
			IsOverdue:    c.IsOverdue(),
			CreatedAt:    c.CreatedAt,
		})
	}
	return responses
}
