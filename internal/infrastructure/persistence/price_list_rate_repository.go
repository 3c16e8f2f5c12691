package persistence

import (
	"context"
	"fmt"

	"github.com/erp/mobileapi/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPriceListRateRepository implements catalog.PriceListRateRepository using GORM
type GormPriceListRateRepository struct {
	db *gorm.DB
}

// NewGormPriceListRateRepository creates a new GormPriceListRateRepository
func NewGormPriceListRateRepository(db *gorm.DB) *GormPriceListRateRepository {
	return &GormPriceListRateRepository{db: db}
}

// RatesForPriceList returns the selling rate per item code for the given price
// list. Only selling rates are considered; when the store holds several rows
// for the same item the first stored one wins.
func (r *GormPriceListRateRepository) RatesForPriceList(ctx context.Context, priceList string, itemCodes []string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal, len(itemCodes))
	if len(itemCodes) == 0 {
		return rates, nil
	}

	var rows []models.ItemPriceModel
	err := r.db.WithContext(ctx).
		Model(&models.ItemPriceModel{}).
		Where("price_list = ?", priceList).
		Where("selling = ?", 1).
		Where("item_code IN ?", itemCodes).
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list price list rates: %w", err)
	}

	for i := range rows {
		if _, ok := rates[rows[i].ItemCode]; ok {
			continue
		}
		rates[rows[i].ItemCode] = rows[i].PriceListRate
	}
	return rates, nil
}
