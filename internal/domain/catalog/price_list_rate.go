package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceListRate is one selling rate for an item within a named price list.
// The relation is sparse: an item may have no rate in a given list.
type PriceListRate struct {
	ItemCode  string          `json:"item_code"`
	PriceList string          `json:"price_list"`
	Rate      decimal.Decimal `json:"rate"`
}

// PriceListRateRepository provides read access to price list rates.
type PriceListRateRepository interface {
	// RatesForPriceList returns the selling rate per item code for the given
	// price list. Items without a rate in that list are absent from the map.
	RatesForPriceList(ctx context.Context, priceList string, itemCodes []string) (map[string]decimal.Decimal, error)
}
