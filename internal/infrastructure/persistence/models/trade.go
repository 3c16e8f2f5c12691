package models

import (
	"time"

	"github.com/erp/mobileapi/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SalesOrderModel is the persistence model for sales order headers.
type SalesOrderModel struct {
	Name            string          `gorm:"column:name;primaryKey"`
	Customer        string          `gorm:"column:customer"`
	CustomerName    string          `gorm:"column:customer_name"`
	TransactionDate time.Time       `gorm:"column:transaction_date"`
	DeliveryDate    *time.Time      `gorm:"column:delivery_date"`
	Status          string          `gorm:"column:status"`
	GrandTotal      decimal.Decimal `gorm:"column:grand_total"`
	RoundedTotal    decimal.Decimal `gorm:"column:rounded_total"`
	Company         string          `gorm:"column:company"`
	Currency        string          `gorm:"column:currency"`
	Territory       string          `gorm:"column:territory"`
	DocStatus       int             `gorm:"column:docstatus"`
}

// TableName returns the table name for GORM
func (SalesOrderModel) TableName() string {
	return "tabSales Order"
}

// ToDomain converts the header model to a domain SalesOrder without children.
func (m *SalesOrderModel) ToDomain() trade.SalesOrder {
	return trade.SalesOrder{
		Name:            m.Name,
		Customer:        m.Customer,
		CustomerName:    m.CustomerName,
		TransactionDate: m.TransactionDate,
		DeliveryDate:    m.DeliveryDate,
		Status:          m.Status,
		GrandTotal:      m.GrandTotal,
		RoundedTotal:    m.RoundedTotal,
		Company:         m.Company,
		Currency:        m.Currency,
		Territory:       m.Territory,
		DocStatus:       m.DocStatus,
	}
}

// SalesOrderItemModel is the persistence model for order line rows. Parent
// holds the owning order name; Idx is the stored row order.
type SalesOrderItemModel struct {
	Name             string          `gorm:"column:name;primaryKey"`
	Parent           string          `gorm:"column:parent"`
	Idx              int             `gorm:"column:idx"`
	ItemCode         string          `gorm:"column:item_code"`
	ItemName         string          `gorm:"column:item_name"`
	Qty              decimal.Decimal `gorm:"column:qty"`
	Rate             decimal.Decimal `gorm:"column:rate"`
	Amount           decimal.Decimal `gorm:"column:amount"`
	DeliveryDate     *time.Time      `gorm:"column:delivery_date"`
	Warehouse        string          `gorm:"column:warehouse"`
	UOM              string          `gorm:"column:uom"`
	StockUOM         string          `gorm:"column:stock_uom"`
	ConversionFactor decimal.Decimal `gorm:"column:conversion_factor"`
}

// TableName returns the table name for GORM
func (SalesOrderItemModel) TableName() string {
	return "tabSales Order Item"
}

// ToDomain converts the persistence model to a domain SalesOrderItem.
func (m *SalesOrderItemModel) ToDomain() trade.SalesOrderItem {
	return trade.SalesOrderItem{
		RowName:          m.Name,
		ItemCode:         m.ItemCode,
		Description:      m.ItemName,
		Qty:              m.Qty,
		Rate:             m.Rate,
		Amount:           m.Amount,
		DeliveryDate:     m.DeliveryDate,
		Warehouse:        m.Warehouse,
		UOM:              m.UOM,
		StockUOM:         m.StockUOM,
		ConversionFactor: m.ConversionFactor,
	}
}

// SalesOrderTaxModel is the persistence model for order tax rows.
type SalesOrderTaxModel struct {
	Name        string          `gorm:"column:name;primaryKey"`
	Parent      string          `gorm:"column:parent"`
	Idx         int             `gorm:"column:idx"`
	ChargeType  string          `gorm:"column:charge_type"`
	AccountHead string          `gorm:"column:account_head"`
	Description string          `gorm:"column:description"`
	Rate        decimal.Decimal `gorm:"column:rate"`
	TaxAmount   decimal.Decimal `gorm:"column:tax_amount"`
	Total       decimal.Decimal `gorm:"column:total"`
	CostCenter  string          `gorm:"column:cost_center"`
}

// TableName returns the table name for GORM
func (SalesOrderTaxModel) TableName() string {
	return "tabSales Taxes and Charges"
}

// ToDomain converts the persistence model to a domain SalesOrderTax.
func (m *SalesOrderTaxModel) ToDomain() trade.SalesOrderTax {
	return trade.SalesOrderTax{
		RowName:     m.Name,
		ChargeType:  m.ChargeType,
		AccountHead: m.AccountHead,
		Description: m.Description,
		Rate:        m.Rate,
		TaxAmount:   m.TaxAmount,
		Total:       m.Total,
		CostCenter:  m.CostCenter,
	}
}
