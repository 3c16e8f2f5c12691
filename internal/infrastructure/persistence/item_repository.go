package persistence

import (
	"context"
	"fmt"

	"github.com/erp/mobileapi/internal/domain/catalog"
	"github.com/erp/mobileapi/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// ListActive returns non-disabled items matching the filter, ordered by item code.
func (r *GormItemRepository) ListActive(ctx context.Context, filter catalog.ItemFilter) ([]catalog.Item, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ItemModel{}).
		Where("disabled = ?", 0)

	if filter.ItemCode != "" {
		query = query.Where("name = ?", filter.ItemCode)
	}
	if filter.ItemGroup != "" {
		query = query.Where("item_group = ?", filter.ItemGroup)
	}

	var rows []models.ItemModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]catalog.Item, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToDomain())
	}
	return items, nil
}
