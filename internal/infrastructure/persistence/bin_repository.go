package persistence

import (
	"context"
	"fmt"

	"github.com/erp/mobileapi/internal/domain/inventory"
	"github.com/erp/mobileapi/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBinRepository implements inventory.BinRepository using GORM
type GormBinRepository struct {
	db *gorm.DB
}

// NewGormBinRepository creates a new GormBinRepository
func NewGormBinRepository(db *gorm.DB) *GormBinRepository {
	return &GormBinRepository{db: db}
}

// QuantitiesForItems returns the bin rows for the given item codes restricted
// to the given warehouses.
func (r *GormBinRepository) QuantitiesForItems(ctx context.Context, itemCodes, warehouses []string) ([]inventory.Bin, error) {
	if len(itemCodes) == 0 || len(warehouses) == 0 {
		return []inventory.Bin{}, nil
	}

	var rows []models.BinModel
	err := r.db.WithContext(ctx).
		Model(&models.BinModel{}).
		Where("item_code IN ?", itemCodes).
		Where("warehouse IN ?", warehouses).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bins: %w", err)
	}

	bins := make([]inventory.Bin, 0, len(rows))
	for i := range rows {
		bins = append(bins, rows[i].ToDomain())
	}
	return bins, nil
}
