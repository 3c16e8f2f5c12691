package persistence

import (
	"context"
	"fmt"

	"github.com/erp/mobileapi/internal/domain/inventory"
	"github.com/erp/mobileapi/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWarehouseRepository implements inventory.WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// List returns warehouses matching the filter, ordered by name.
func (r *GormWarehouseRepository) List(ctx context.Context, filter inventory.WarehouseFilter) ([]inventory.Warehouse, error) {
	query := r.db.WithContext(ctx).Model(&models.WarehouseModel{})

	if filter.Warehouse != "" {
		query = query.Where("name = ?", filter.Warehouse)
	}
	if filter.Company != "" {
		query = query.Where("company = ?", filter.Company)
	}

	var rows []models.WarehouseModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}

	warehouses := make([]inventory.Warehouse, 0, len(rows))
	for i := range rows {
		warehouses = append(warehouses, rows[i].ToDomain())
	}
	return warehouses, nil
}
