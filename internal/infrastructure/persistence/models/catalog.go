package models

import (
	"github.com/erp/mobileapi/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ItemModel is the persistence model for catalog items. The record id equals
// the item code.
type ItemModel struct {
	Name                   string          `gorm:"column:name;primaryKey"`
	ItemName               string          `gorm:"column:item_name"`
	ItemGroup              string          `gorm:"column:item_group"`
	Disabled               int             `gorm:"column:disabled"`
	CustomBasePrice        decimal.Decimal `gorm:"column:custom_base_price"`
	CustomWebRetailPrice   decimal.Decimal `gorm:"column:custom_web_retail_price"`
	CustomMinimumSalePrice decimal.Decimal `gorm:"column:custom_minimum_sale_price"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "tabItem"
}

// ToDomain converts the persistence model to a domain Item.
func (m *ItemModel) ToDomain() catalog.Item {
	return catalog.Item{
		Code:             m.Name,
		Name:             m.ItemName,
		Group:            m.ItemGroup,
		Disabled:         m.Disabled != 0,
		BasePrice:        m.CustomBasePrice,
		WebRetailPrice:   m.CustomWebRetailPrice,
		MinimumSalePrice: m.CustomMinimumSalePrice,
	}
}

// ItemPriceModel is the persistence model for price list rates.
type ItemPriceModel struct {
	Name          string          `gorm:"column:name;primaryKey"`
	ItemCode      string          `gorm:"column:item_code"`
	PriceList     string          `gorm:"column:price_list"`
	PriceListRate decimal.Decimal `gorm:"column:price_list_rate"`
	Selling       int             `gorm:"column:selling"`
}

// TableName returns the table name for GORM
func (ItemPriceModel) TableName() string {
	return "tabItem Price"
}

// ToDomain converts the persistence model to a domain PriceListRate.
func (m *ItemPriceModel) ToDomain() catalog.PriceListRate {
	return catalog.PriceListRate{
		ItemCode:  m.ItemCode,
		PriceList: m.PriceList,
		Rate:      m.PriceListRate,
	}
}
