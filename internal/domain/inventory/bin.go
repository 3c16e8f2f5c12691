package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// Bin records the stock quantity of one item in one warehouse. Absence of a
// bin row means zero stock for that pair.
type Bin struct {
	ItemCode  string          `json:"item_code"`
	Warehouse string          `json:"warehouse"`
	ActualQty decimal.Decimal `json:"actual_qty"`
}

// BinRepository provides read access to stock quantities.
type BinRepository interface {
	// QuantitiesForItems returns the bin rows for the given item codes
	// restricted to the given warehouses. Either slice may be large; the
	// lookup is a single batch per request.
	QuantitiesForItems(ctx context.Context, itemCodes, warehouses []string) ([]Bin, error)
}
