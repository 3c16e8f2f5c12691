package partner

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LoyaltyPointEntry is one ledger row recording a loyalty point credit or
// debit for a customer. Points are signed; redemptions are negative.
type LoyaltyPointEntry struct {
	Name        string          `json:"name"`
	Customer    string          `json:"customer"`
	Points      decimal.Decimal `json:"points"`
	Program     string          `json:"program"`
	ProgramTier string          `json:"program_tier"`
	PostingDate time.Time       `json:"posting_date"`
	ExpiryDate  *time.Time      `json:"expiry_date"`
	InvoiceType string          `json:"invoice_type"`
	Invoice     string          `json:"invoice"`
	Company     string          `json:"company"`
	DocStatus   int             `json:"docstatus"`
	Creation    time.Time       `json:"creation"`
	Modified    time.Time       `json:"modified"`
}

// LoyaltyEntryFilter narrows ledger listings. An empty Customer means all
// customers.
type LoyaltyEntryFilter struct {
	Customer string
}

// LoyaltyEntryRepository provides read access to the loyalty ledger.
type LoyaltyEntryRepository interface {
	// List returns ledger entries matching the filter, ordered by posting
	// date descending with creation timestamp descending as tiebreaker.
	List(ctx context.Context, filter LoyaltyEntryFilter) ([]LoyaltyPointEntry, error)

	// BalanceByCustomer returns the lifetime point sum per customer id for
	// the given customers. Customers with no entries are absent from the map.
	BalanceByCustomer(ctx context.Context, customerIDs []string) (map[string]decimal.Decimal, error)
}
