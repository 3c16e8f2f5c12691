package models

import (
	"time"

	"github.com/erp/mobileapi/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for customers. The record id equals
// the customer id surfaced to callers.
type CustomerModel struct {
	Name              string `gorm:"column:name;primaryKey"`
	CustomerName      string `gorm:"column:customer_name"`
	EmailID           string `gorm:"column:email_id"`
	MobileNo          string `gorm:"column:mobile_no"`
	CustomIsBFFMember int    `gorm:"column:custom_is_bff_member"`
	CustomerGroup     string `gorm:"column:customer_group"`
	Territory         string `gorm:"column:territory"`
	Disabled          int    `gorm:"column:disabled"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "tabCustomer"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() partner.Customer {
	return partner.Customer{
		ID:          m.Name,
		Name:        m.CustomerName,
		Email:       m.EmailID,
		Mobile:      m.MobileNo,
		IsBFFMember: m.CustomIsBFFMember != 0,
		Group:       m.CustomerGroup,
		Territory:   m.Territory,
		Disabled:    m.Disabled != 0,
	}
}

// LoyaltyPointEntryModel is the persistence model for loyalty ledger rows.
type LoyaltyPointEntryModel struct {
	Name               string          `gorm:"column:name;primaryKey"`
	Customer           string          `gorm:"column:customer"`
	LoyaltyPoints      decimal.Decimal `gorm:"column:loyalty_points"`
	LoyaltyProgram     string          `gorm:"column:loyalty_program"`
	LoyaltyProgramTier string          `gorm:"column:loyalty_program_tier"`
	PostingDate        time.Time       `gorm:"column:posting_date"`
	ExpiryDate         *time.Time      `gorm:"column:expiry_date"`
	InvoiceType        string          `gorm:"column:invoice_type"`
	Invoice            string          `gorm:"column:invoice"`
	Company            string          `gorm:"column:company"`
	DocStatus          int             `gorm:"column:docstatus"`
	Creation           time.Time       `gorm:"column:creation"`
	Modified           time.Time       `gorm:"column:modified"`
}

// TableName returns the table name for GORM
func (LoyaltyPointEntryModel) TableName() string {
	return "tabLoyalty Point Entry"
}

// ToDomain converts the persistence model to a domain LoyaltyPointEntry.
func (m *LoyaltyPointEntryModel) ToDomain() partner.LoyaltyPointEntry {
	return partner.LoyaltyPointEntry{
		Name:        m.Name,
		Customer:    m.Customer,
		Points:      m.LoyaltyPoints,
		Program:     m.LoyaltyProgram,
		ProgramTier: m.LoyaltyProgramTier,
		PostingDate: m.PostingDate,
		ExpiryDate:  m.ExpiryDate,
		InvoiceType: m.InvoiceType,
		Invoice:     m.Invoice,
		Company:     m.Company,
		DocStatus:   m.DocStatus,
		Creation:    m.Creation,
		Modified:    m.Modified,
	}
}
