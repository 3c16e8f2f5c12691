package stock

import (
	"context"

	"github.com/erp/mobileapi/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ItemPrices holds the four resolved price figures for one item.
type ItemPrices struct {
	CurrentSalesPrice decimal.Decimal
	BasePrice         decimal.Decimal
	WebRetailPrice    decimal.Decimal
	MinimumSalePrice  decimal.Decimal
}

// PriceResolver resolves price figures for items. The price-list dependent
// figure comes from the rate repository; the other three are read off the
// item record itself and do not vary with the requested price list.
type PriceResolver struct {
	rates            catalog.PriceListRateRepository
	defaultPriceList string
}

// NewPriceResolver creates a new PriceResolver
func NewPriceResolver(rates catalog.PriceListRateRepository, defaultPriceList string) *PriceResolver {
	return &PriceResolver{
		rates:            rates,
		defaultPriceList: defaultPriceList,
	}
}

// PriceList returns the effective price list name for a request.
func (r *PriceResolver) PriceList(requested string) string {
	if requested == "" {
		return r.defaultPriceList
	}
	return requested
}

// ResolveAll resolves prices for all given items in one batch. Items without a
// rate in the price list get a zero current sales price; a missing rate is
// expected, not an error.
func (r *PriceResolver) ResolveAll(ctx context.Context, priceList string, items []catalog.Item) (map[string]ItemPrices, error) {
	codes := make([]string, 0, len(items))
	for i := range items {
		codes = append(codes, items[i].Code)
	}

	rates, err := r.rates.RatesForPriceList(ctx, r.PriceList(priceList), codes)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]ItemPrices, len(items))
	for i := range items {
		item := &items[i]
		prices[item.Code] = ItemPrices{
			CurrentSalesPrice: rates[item.Code],
			BasePrice:         item.BasePrice,
			WebRetailPrice:    item.WebRetailPrice,
			MinimumSalePrice:  item.MinimumSalePrice,
		}
	}
	return prices, nil
}
