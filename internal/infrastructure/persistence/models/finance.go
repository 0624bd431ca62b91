package models

import (
	"encoding/json"
	"time"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ChequeModel is the persistence model for the Cheque domain entity.
// The append-only status history is stored as a jsonb document.
type ChequeModel struct {
	TenantAggregateModel
	ChequeNumber      string                        `gorm:"type:varchar(50);not null;uniqueIndex:idx_cheque_tenant_number,priority:2"`
	Type              finance.ChequeType            `gorm:"type:varchar(20);not null"`
	TransactionType   finance.ChequeTransactionType `gorm:"type:varchar(20);not null"`
	CustomerID        *uuid.UUID                    `gorm:"type:uuid;index"`
	SupplierID        *uuid.UUID                    `gorm:"type:uuid;index"`
	Amount            decimal.Decimal               `gorm:"type:decimal(18,4);not null"`
	ChequeDate        time.Time                     `gorm:"not null;index"`
	ClearanceDate     *time.Time                    `gorm:""`
	BankName          string                        `gorm:"type:varchar(200)"`
	Status            finance.ChequeStatus          `gorm:"type:varchar(20);not null;default:'pending'"`
	StatusHistoryJSON string                        `gorm:"column:status_history;type:jsonb;not null;default:'[]'"`
	DepositDate       *time.Time                    `gorm:""`
	BounceDate        *time.Time                    `gorm:""`
	BounceReason      string                        `gorm:"type:varchar(500)"`
	BankCharges       decimal.Decimal               `gorm:"type:decimal(18,4);not null;default:0"`
	Notes             string                        `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ChequeModel) TableName() string {
	return "cheques"
}

// ToDomain converts the persistence model to a domain Cheque entity.
func (m *ChequeModel) ToDomain() *finance.Cheque {
	var history []finance.StatusChange
	if m.StatusHistoryJSON != "" {
		if err := json.Unmarshal([]byte(m.StatusHistoryJSON), &history); err != nil {
			modelLogger.Warn("failed to parse status_history JSON",
				zap.String("cheque_id", m.ID.String()),
				zap.String("raw_json", m.StatusHistoryJSON),
				zap.Error(err))
		}
	}

	return &finance.Cheque{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		ChequeNumber:        m.ChequeNumber,
		Type:                m.Type,
		TransactionType:     m.TransactionType,
		CustomerID:          m.CustomerID,
		SupplierID:          m.SupplierID,
		Amount:              m.Amount,
		ChequeDate:          m.ChequeDate,
		ClearanceDate:       m.ClearanceDate,
		BankName:            m.BankName,
		Status:              m.Status,
		StatusHistory:       history,
		DepositDate:         m.DepositDate,
		BounceDate:          m.BounceDate,
		BounceReason:        m.BounceReason,
		BankCharges:         m.BankCharges,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Cheque entity.
func (m *ChequeModel) FromDomain(c *finance.Cheque) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.ChequeNumber = c.ChequeNumber
	m.Type = c.Type
	m.TransactionType = c.TransactionType
	m.CustomerID = c.CustomerID
	m.SupplierID = c.SupplierID
	m.Amount = c.Amount
	m.ChequeDate = c.ChequeDate
	m.ClearanceDate = c.ClearanceDate
	m.BankName = c.BankName
	m.Status = c.Status
	m.DepositDate = c.DepositDate
	m.BounceDate = c.BounceDate
	m.BounceReason = c.BounceReason
	m.BankCharges = c.BankCharges
	m.Notes = c.Notes

	history := c.StatusHistory
	if history == nil {
		history = []finance.StatusChange{}
	}
	if data, err := json.Marshal(history); err == nil {
		m.StatusHistoryJSON = string(data)
	} else {
		m.StatusHistoryJSON = "[]"
	}
}

// ChequeModelFromDomain creates a new persistence model from a domain Cheque entity.
func ChequeModelFromDomain(c *finance.Cheque) *ChequeModel {
	m := &ChequeModel{}
	m.FromDomain(c)
	return m
}
