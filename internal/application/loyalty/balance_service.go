package loyalty

import (
	"context"
	"errors"

	"github.com/erp/mobileapi/internal/domain/partner"
	"github.com/erp/mobileapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerFilter narrows the balance listing. An empty Customer lists all
// non-disabled customers; a set Customer returns exactly that customer even
// when disabled.
type CustomerFilter struct {
	Customer string `form:"customer"`
}

// CustomerWithBalance is one customer row with the lifetime loyalty point
// balance attached. Flag fields are 0/1 integers, matching the stored shape
// consumers already parse.
type CustomerWithBalance struct {
	ID                   string  `json:"id"`
	CustomerName         string  `json:"customer_name"`
	Email                string  `json:"email"`
	Mobile               string  `json:"mobile"`
	CustomIsBFFMember    int     `json:"custom_is_bff_member"`
	CustomerGroup        string  `json:"customer_group"`
	Territory            string  `json:"territory"`
	Disabled             int     `json:"disabled"`
	LoyaltyPointsBalance float64 `json:"loyalty_points_balance"`
}

// BalanceService merges customers with their summed loyalty ledger entries.
type BalanceService struct {
	customers partner.CustomerRepository
	entries   partner.LoyaltyEntryRepository
	gate      shared.ReadGate
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(customers partner.CustomerRepository, entries partner.LoyaltyEntryRepository, gate shared.ReadGate) *BalanceService {
	if gate == nil {
		gate = shared.AllowAll
	}
	return &BalanceService{
		customers: customers,
		entries:   entries,
		gate:      gate,
	}
}

// List returns customers with their loyalty point balance. The balance is the
// arithmetic sum of all ledger entries for the customer, zero when none
// exist. An unknown customer id yields an empty result, not an error; a
// customer the caller may not see yields shared.ErrForbidden when requested
// by id and is silently dropped from bulk listings.
func (s *BalanceService) List(ctx context.Context, filter CustomerFilter) ([]CustomerWithBalance, error) {
	customers, err := s.selectCustomers(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return []CustomerWithBalance{}, nil
	}

	ids := make([]string, 0, len(customers))
	for i := range customers {
		ids = append(ids, customers[i].ID)
	}

	balances, err := s.entries.BalanceByCustomer(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]CustomerWithBalance, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		rows = append(rows, CustomerWithBalance{
			ID:                   c.ID,
			CustomerName:         c.Name,
			Email:                c.Email,
			Mobile:               c.Mobile,
			CustomIsBFFMember:    boolToFlag(c.IsBFFMember),
			CustomerGroup:        c.Group,
			Territory:            c.Territory,
			Disabled:             boolToFlag(c.Disabled),
			LoyaltyPointsBalance: toFloat64(balances[c.ID]),
		})
	}
	return rows, nil
}

func (s *BalanceService) selectCustomers(ctx context.Context, filter CustomerFilter) ([]partner.Customer, error) {
	if filter.Customer != "" {
		customer, err := s.customers.FindByID(ctx, filter.Customer)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		if !s.gate.CanRead(shared.RecordCustomer, customer.ID) {
			return nil, shared.ErrForbidden
		}
		return []partner.Customer{*customer}, nil
	}

	customers, err := s.customers.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	visible := customers[:0]
	for i := range customers {
		if s.gate.CanRead(shared.RecordCustomer, customers[i].ID) {
			visible = append(visible, customers[i])
		}
	}
	return visible, nil
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
