package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/mobileapi/internal/domain/partner"
	"github.com/erp/mobileapi/internal/domain/shared"
	"github.com/erp/mobileapi/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// ListEnabled returns all non-disabled customers ordered by customer name.
func (r *GormCustomerRepository) ListEnabled(ctx context.Context) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("disabled = ?", 0).
		Order("customer_name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]partner.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, rows[i].ToDomain())
	}
	return customers, nil
}

// FindByID returns the customer with the given id regardless of its disabled
// flag. Returns shared.ErrNotFound when no such customer exists.
func (r *GormCustomerRepository) FindByID(ctx context.Context, id string) (*partner.Customer, error) {
	var row models.CustomerModel
	err := r.db.WithContext(ctx).
		Where("name = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	customer := row.ToDomain()
	return &customer, nil
}
