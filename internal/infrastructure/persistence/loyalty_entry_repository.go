package persistence

import (
	"context"
	"fmt"

	"github.com/erp/mobileapi/internal/domain/partner"
	"github.com/erp/mobileapi/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLoyaltyEntryRepository implements partner.LoyaltyEntryRepository using GORM
type GormLoyaltyEntryRepository struct {
	db *gorm.DB
}

// NewGormLoyaltyEntryRepository creates a new GormLoyaltyEntryRepository
func NewGormLoyaltyEntryRepository(db *gorm.DB) *GormLoyaltyEntryRepository {
	return &GormLoyaltyEntryRepository{db: db}
}

// List returns ledger entries matching the filter, ordered by posting date
// descending with creation timestamp descending as tiebreaker.
func (r *GormLoyaltyEntryRepository) List(ctx context.Context, filter partner.LoyaltyEntryFilter) ([]partner.LoyaltyPointEntry, error) {
	query := r.db.WithContext(ctx).Model(&models.LoyaltyPointEntryModel{})

	if filter.Customer != "" {
		query = query.Where("customer = ?", filter.Customer)
	}

	var rows []models.LoyaltyPointEntryModel
	if err := query.Order("posting_date DESC, creation DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list loyalty point entries: %w", err)
	}

	entries := make([]partner.LoyaltyPointEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToDomain())
	}
	return entries, nil
}

// BalanceByCustomer returns the lifetime point sum per customer id for the
// given customers.
func (r *GormLoyaltyEntryRepository) BalanceByCustomer(ctx context.Context, customerIDs []string) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(customerIDs))
	if len(customerIDs) == 0 {
		return balances, nil
	}

	type balanceRow struct {
		Customer string          `gorm:"column:customer"`
		Balance  decimal.Decimal `gorm:"column:balance"`
	}

	var rows []balanceRow
	err := r.db.WithContext(ctx).
		Model(&models.LoyaltyPointEntryModel{}).
		Select("customer, COALESCE(SUM(loyalty_points), 0) AS balance").
		Where("customer IN ?", customerIDs).
		Group("customer").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum loyalty points: %w", err)
	}

	for i := range rows {
		balances[rows[i].Customer] = rows[i].Balance
	}
	return balances, nil
}
