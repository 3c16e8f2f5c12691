package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// Item is the catalog read model. The three price figures that do not depend
// on a price list (base, web retail, minimum sale) live directly on the item
// record.
type Item struct {
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Group            string          `json:"group"`
	Disabled         bool            `json:"disabled"`
	BasePrice        decimal.Decimal `json:"base_price"`
	WebRetailPrice   decimal.Decimal `json:"web_retail_price"`
	MinimumSalePrice decimal.Decimal `json:"minimum_sale_price"`
}

// ItemFilter narrows item listings. Empty fields are ignored; set fields
// combine with AND using exact matches.
type ItemFilter struct {
	ItemCode  string
	ItemGroup string
}

// ItemRepository provides read access to catalog items.
type ItemRepository interface {
	// ListActive returns non-disabled items matching the filter, ordered by
	// item code.
	ListActive(ctx context.Context, filter ItemFilter) ([]Item, error)
}
