package persistence

import (
	"context"
	"fmt"

	"github.com/erp/mobileapi/internal/domain/trade"
	"github.com/erp/mobileapi/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSalesOrderRepository implements trade.SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// List returns fully assembled orders matching the filter. Headers come back
// ordered by transaction date descending then name descending; child rows are
// fetched in two batch queries and attached in their stored idx order.
func (r *GormSalesOrderRepository) List(ctx context.Context, filter trade.SalesOrderFilter) ([]trade.SalesOrder, error) {
	headerQuery := r.db.WithContext(ctx).Model(&models.SalesOrderModel{})
	if filter.SalesOrder != "" {
		headerQuery = headerQuery.Where("name = ?", filter.SalesOrder)
	}

	var headers []models.SalesOrderModel
	if err := headerQuery.Order("transaction_date DESC, name DESC").Find(&headers).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	if len(headers) == 0 {
		return []trade.SalesOrder{}, nil
	}

	names := make([]string, 0, len(headers))
	for i := range headers {
		names = append(names, headers[i].Name)
	}

	itemsByOrder, err := r.itemsForOrders(ctx, names)
	if err != nil {
		return nil, err
	}
	taxesByOrder, err := r.taxesForOrders(ctx, names)
	if err != nil {
		return nil, err
	}

	orders := make([]trade.SalesOrder, 0, len(headers))
	for i := range headers {
		order := headers[i].ToDomain()
		order.Items = itemsByOrder[order.Name]
		order.Taxes = taxesByOrder[order.Name]
		if order.Items == nil {
			order.Items = []trade.SalesOrderItem{}
		}
		if order.Taxes == nil {
			order.Taxes = []trade.SalesOrderTax{}
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *GormSalesOrderRepository) itemsForOrders(ctx context.Context, names []string) (map[string][]trade.SalesOrderItem, error) {
	var rows []models.SalesOrderItemModel
	err := r.db.WithContext(ctx).
		Model(&models.SalesOrderItemModel{}).
		Where("parent IN ?", names).
		Order("parent, idx").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales order items: %w", err)
	}

	byOrder := make(map[string][]trade.SalesOrderItem)
	for i := range rows {
		byOrder[rows[i].Parent] = append(byOrder[rows[i].Parent], rows[i].ToDomain())
	}
	return byOrder, nil
}

func (r *GormSalesOrderRepository) taxesForOrders(ctx context.Context, names []string) (map[string][]trade.SalesOrderTax, error) {
	var rows []models.SalesOrderTaxModel
	err := r.db.WithContext(ctx).
		Model(&models.SalesOrderTaxModel{}).
		Where("parent IN ?", names).
		Order("parent, idx").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales order taxes: %w", err)
	}

	byOrder := make(map[string][]trade.SalesOrderTax)
	for i := range rows {
		byOrder[rows[i].Parent] = append(byOrder[rows[i].Parent], rows[i].ToDomain())
	}
	return byOrder, nil
}
