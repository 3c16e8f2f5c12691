package models

import (
	"github.com/erp/mobileapi/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// WarehouseModel is the persistence model for warehouses.
type WarehouseModel struct {
	Name    string `gorm:"column:name;primaryKey"`
	Company string `gorm:"column:company"`
}

// TableName returns the table name for GORM
func (WarehouseModel) TableName() string {
	return "tabWarehouse"
}

// ToDomain converts the persistence model to a domain Warehouse.
func (m *WarehouseModel) ToDomain() inventory.Warehouse {
	return inventory.Warehouse{
		Name:    m.Name,
		Company: m.Company,
	}
}

// BinModel is the persistence model for per-warehouse stock quantities.
type BinModel struct {
	Name      string          `gorm:"column:name;primaryKey"`
	ItemCode  string          `gorm:"column:item_code"`
	Warehouse string          `gorm:"column:warehouse"`
	ActualQty decimal.Decimal `gorm:"column:actual_qty"`
}

// TableName returns the table name for GORM
func (BinModel) TableName() string {
	return "tabBin"
}

// ToDomain converts the persistence model to a domain Bin.
func (m *BinModel) ToDomain() inventory.Bin {
	return inventory.Bin{
		ItemCode:  m.ItemCode,
		Warehouse: m.Warehouse,
		ActualQty: m.ActualQty,
	}
}
