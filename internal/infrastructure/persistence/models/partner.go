package models

import (
	"encoding/json"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CustomerModel is the persistence model for the Customer domain entity.
// The credit rating history is stored as a jsonb document.
type CustomerModel struct {
	TenantAggregateModel
	Code              string                 `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	Name              string                 `gorm:"type:varchar(200);not null"`
	ContactName       string                 `gorm:"type:varchar(100)"`
	Phone             string                 `gorm:"type:varchar(50);index"`
	Email             string                 `gorm:"type:varchar(200);index"`
	Address           string                 `gorm:"type:text"`
	Status            partner.CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	CreditRating      int                    `gorm:"not null;default:5"`
	CreditLimit       decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	AvailableCredit   decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentTerms      string                 `gorm:"type:varchar(100)"`
	RiskCategory      partner.RiskCategory   `gorm:"type:varchar(20);not null;default:'medium'"`
	CreditHistoryJSON string                 `gorm:"column:credit_history;type:jsonb;default:'[]'"`
	Notes             string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	var history []partner.CreditRatingChange
	if m.CreditHistoryJSON != "" {
		if err := json.Unmarshal([]byte(m.CreditHistoryJSON), &history); err != nil {
			modelLogger.Warn("failed to parse credit_history JSON",
				zap.String("customer_id", m.ID.String()),
				zap.String("raw_json", m.CreditHistoryJSON),
				zap.Error(err))
		}
	}

	return &partner.Customer{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		Code:                m.Code,
		Name:                m.Name,
		ContactName:         m.ContactName,
		Phone:               m.Phone,
		Email:               m.Email,
		Address:             m.Address,
		Status:              m.Status,
		CreditRating:        m.CreditRating,
		CreditLimit:         m.CreditLimit,
		AvailableCredit:     m.AvailableCredit,
		PaymentTerms:        m.PaymentTerms,
		RiskCategory:        m.RiskCategory,
		CreditHistory:       history,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.ContactName = c.ContactName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.Status = c.Status
	m.CreditRating = c.CreditRating
	m.CreditLimit = c.CreditLimit
	m.AvailableCredit = c.AvailableCredit
	m.PaymentTerms = c.PaymentTerms
	m.RiskCategory = c.RiskCategory
	m.Notes = c.Notes

	history := c.CreditHistory
	if history == nil {
		history = []partner.CreditRatingChange{}
	}
	if data, err := json.Marshal(history); err == nil {
		m.CreditHistoryJSON = string(data)
	} else {
		m.CreditHistoryJSON = "[]"
	}
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	TenantAggregateModel
	Code        string                 `gorm:"type:varchar(50);not null;index"`
	Name        string                 `gorm:"type:varchar(200);not null;uniqueIndex:idx_supplier_tenant_name,priority:2"`
	ContactName string                 `gorm:"type:varchar(100)"`
	Phone       string                 `gorm:"type:varchar(50);index"`
	Email       string                 `gorm:"type:varchar(200);index"`
	Address     string                 `gorm:"type:text"`
	Status      partner.SupplierStatus `gorm:"type:varchar(20);not null;default:'active'"`
	BankName    string                 `gorm:"type:varchar(200)"`
	BankAccount string                 `gorm:"type:varchar(100)"`
	Notes       string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		TenantAggregateRoot: m.toDomainTenantAggregateRoot(),
		Code:                m.Code,
		Name:                m.Name,
		ContactName:         m.ContactName,
		Phone:               m.Phone,
		Email:               m.Email,
		Address:             m.Address,
		Status:              m.Status,
		BankName:            m.BankName,
		BankAccount:         m.BankAccount,
		Notes:               m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.Code = s.Code
	m.Name = s.Name
	m.ContactName = s.ContactName
	m.Phone = s.Phone
	m.Email = s.Email
	m.Address = s.Address
	m.Status = s.Status
	m.BankName = s.BankName
	m.BankAccount = s.BankAccount
	m.Notes = s.Notes
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}
