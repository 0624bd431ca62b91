package models

import (
	"encoding/json"
	"time"

	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SaleModel is the persistence model for the Sale domain entity.
// Line items are stored as a jsonb document.
type SaleModel struct {
	TenantAggregateModel
	TransactionID  string              `gorm:"type:varchar(50);not null;uniqueIndex:idx_sale_tenant_txn,priority:2"`
	CustomerID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Date           time.Time           `gorm:"not null;index"`
	ItemsJSON      string              `gorm:"column:items;type:jsonb;not null;default:'[]'"`
	Subtotal       decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount      decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount    decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	CashAmount     decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	CreditAmount   decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod  trade.PaymentMethod `gorm:"type:varchar(20);not null"`
	DueDate        *time.Time          `gorm:"index"`
	Status         trade.SaleStatus    `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes          string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale entity.
func (m *SaleModel) ToDomain() *trade.Sale {
	var items []trade.SaleItem
	if m.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(m.ItemsJSON), &items); err != nil {
			modelLogger.Warn("failed to parse items JSON",
				zap.String("sale_id", m.ID.String()),
				zap.String("raw_json", m.ItemsJSON),
				zap.Error(err))
		}
	}

	return &trade.Sale{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		TransactionID:       m.TransactionID,
		CustomerID:          m.CustomerID,
		Date:                m.Date,
		Items:               items,
		Subtotal:            m.Subtotal,
		TaxAmount:           m.TaxAmount,
		DiscountAmount:      m.DiscountAmount,
		TotalAmount:         m.TotalAmount,
		CashAmount:          m.CashAmount,
		CreditAmount:        m.CreditAmount,
		PaymentMethod:       m.PaymentMethod,
		DueDate:             m.DueDate,
		Status:              m.Status,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Sale entity.
func (m *SaleModel) FromDomain(s *trade.Sale) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.TransactionID = s.TransactionID
	m.CustomerID = s.CustomerID
	m.Date = s.Date
	m.Subtotal = s.Subtotal
	m.TaxAmount = s.TaxAmount
	m.DiscountAmount = s.DiscountAmount
	m.TotalAmount = s.TotalAmount
	m.CashAmount = s.CashAmount
	m.CreditAmount = s.CreditAmount
	m.PaymentMethod = s.PaymentMethod
	m.DueDate = s.DueDate
	m.Status = s.Status
	m.Notes = s.Notes
	m.ItemsJSON = marshalItemsJSON(s.Items)
}

// SaleModelFromDomain creates a new persistence model from a domain Sale entity.
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}

// PurchaseModel is the persistence model for the Purchase domain entity.
// Line items are stored as a jsonb document.
type PurchaseModel struct {
	TenantAggregateModel
	PurchaseOrderID  string                      `gorm:"type:varchar(50);not null;uniqueIndex:idx_purchase_tenant_po,priority:2"`
	SupplierID       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Date             time.Time                   `gorm:"not null;index"`
	ItemsJSON        string                      `gorm:"column:items;type:jsonb;not null;default:'[]'"`
	Subtotal         decimal.Decimal             `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount        decimal.Decimal             `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount   decimal.Decimal             `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount      decimal.Decimal             `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod    trade.PurchasePaymentMethod `gorm:"type:varchar(20);not null"`
	PaidAmount       decimal.Decimal             `gorm:"type:decimal(18,4);not null;default:0"`
	RemainingAmount  decimal.Decimal             `gorm:"type:decimal(18,4);not null;default:0"`
	DueDate          *time.Time                  `gorm:"index"`
	ExpectedDelivery *time.Time                  `gorm:""`
	ActualDelivery   *time.Time                  `gorm:""`
	DeliveryStatus   trade.DeliveryStatus        `gorm:"type:varchar(20);not null;default:'pending'"`
	Status           trade.PurchaseStatus        `gorm:"type:varchar(20);not null;default:'ordered'"`
	Notes            string                      `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToDomain converts the persistence model to a domain Purchase entity.
func (m *PurchaseModel) ToDomain() *trade.Purchase {
	var items []trade.PurchaseItem
	if m.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(m.ItemsJSON), &items); err != nil {
			modelLogger.Warn("failed to parse items JSON",
				zap.String("purchase_id", m.ID.String()),
				zap.String("raw_json", m.ItemsJSON),
				zap.Error(err))
		}
	}

	return &trade.Purchase{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		PurchaseOrderID:     m.PurchaseOrderID,
		SupplierID:          m.SupplierID,
		Date:                m.Date,
		Items:               items,
		Subtotal:            m.Subtotal,
		TaxAmount:           m.TaxAmount,
		DiscountAmount:      m.DiscountAmount,
		TotalAmount:         m.TotalAmount,
		PaymentMethod:       m.PaymentMethod,
		PaidAmount:          m.PaidAmount,
		RemainingAmount:     m.RemainingAmount,
		DueDate:             m.DueDate,
		ExpectedDelivery:    m.ExpectedDelivery,
		ActualDelivery:      m.ActualDelivery,
		DeliveryStatus:      m.DeliveryStatus,
		Status:              m.Status,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Purchase entity.
func (m *PurchaseModel) FromDomain(p *trade.Purchase) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.PurchaseOrderID = p.PurchaseOrderID
	m.SupplierID = p.SupplierID
	m.Date = p.Date
	m.Subtotal = p.Subtotal
	m.TaxAmount = p.TaxAmount
	m.DiscountAmount = p.DiscountAmount
	m.TotalAmount = p.TotalAmount
	m.PaymentMethod = p.PaymentMethod
	m.PaidAmount = p.PaidAmount
	m.RemainingAmount = p.RemainingAmount
	m.DueDate = p.DueDate
	m.ExpectedDelivery = p.ExpectedDelivery
	m.ActualDelivery = p.ActualDelivery
	m.DeliveryStatus = p.DeliveryStatus
	m.Status = p.Status
	m.Notes = p.Notes
	m.ItemsJSON = marshalItemsJSON(p.Items)
}

// PurchaseModelFromDomain creates a new persistence model from a domain Purchase entity.
func PurchaseModelFromDomain(p *trade.Purchase) *PurchaseModel {
	m := &PurchaseModel{}
	m.FromDomain(p)
	return m
}

// marshalItemsJSON serializes line items, falling back to an empty document
func marshalItemsJSON[T any](items []T) string {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
