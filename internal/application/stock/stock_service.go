package stock

import (
	"context"

	"github.com/erp/mobileapi/internal/domain/catalog"
	"github.com/erp/mobileapi/internal/domain/inventory"
	"github.com/erp/mobileapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemStockFilter narrows the stock listing. All fields are optional and
// combine with AND.
type ItemStockFilter struct {
	ItemCode         string `form:"item_code"`
	ItemGroup        string `form:"item_group"`
	Warehouse        string `form:"warehouse"`
	Company          string `form:"company"`
	PriceList        string `form:"price_list"`
	IncludeZeroStock *bool  `form:"include_zero_stock"`
}

// ItemStockRow is one item-warehouse pair with its stock level and resolved
// prices. Field names are consumed structurally by existing clients.
type ItemStockRow struct {
	Item                string  `json:"item"`
	ItemName            string  `json:"item_name"`
	ItemGroup           string  `json:"item_group"`
	Warehouse           string  `json:"warehouse"`
	AvailableStock      float64 `json:"available_stock"`
	CurrentSalesPriceWP float64 `json:"current_sales_price_wp"`
	BasePrice           float64 `json:"base_price"`
	WebRetailPrice      float64 `json:"web_retail_price"`
	MinimumSalePrice    float64 `json:"minimum_sale_price"`
}

// Service aggregates items, warehouses, stock levels and prices into the
// stock listing.
type Service struct {
	items      catalog.ItemRepository
	warehouses inventory.WarehouseRepository
	bins       inventory.BinRepository
	prices     *PriceResolver
	gate       shared.ReadGate
}

// NewService creates a new stock aggregation service
func NewService(
	items catalog.ItemRepository,
	warehouses inventory.WarehouseRepository,
	bins inventory.BinRepository,
	prices *PriceResolver,
	gate shared.ReadGate,
) *Service {
	if gate == nil {
		gate = shared.AllowAll
	}
	return &Service{
		items:      items,
		warehouses: warehouses,
		bins:       bins,
		prices:     prices,
		gate:       gate,
	}
}

// List returns one row per qualifying item-warehouse pair, ordered by item
// code then warehouse. Items without a bin row surface with a zero-filled row
// per qualifying warehouse. When IncludeZeroStock is false, rows whose stock
// is exactly zero are dropped; negative stock is retained.
func (s *Service) List(ctx context.Context, filter ItemStockFilter) ([]ItemStockRow, error) {
	includeZero := true
	if filter.IncludeZeroStock != nil {
		includeZero = *filter.IncludeZeroStock
	}

	items, err := s.items.ListActive(ctx, catalog.ItemFilter{
		ItemCode:  filter.ItemCode,
		ItemGroup: filter.ItemGroup,
	})
	if err != nil {
		return nil, err
	}
	items = s.visibleItems(items)
	if len(items) == 0 {
		return []ItemStockRow{}, nil
	}

	warehouses, err := s.warehouses.List(ctx, inventory.WarehouseFilter{
		Warehouse: filter.Warehouse,
		Company:   filter.Company,
	})
	if err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return []ItemStockRow{}, nil
	}

	stock, err := s.stockByPair(ctx, items, warehouses)
	if err != nil {
		return nil, err
	}

	prices, err := s.prices.ResolveAll(ctx, filter.PriceList, items)
	if err != nil {
		return nil, err
	}

	rows := make([]ItemStockRow, 0, len(items)*len(warehouses))
	for i := range items {
		item := &items[i]
		itemPrices := prices[item.Code]
		for j := range warehouses {
			qty := stock[item.Code][warehouses[j].Name]
			if !includeZero && qty.IsZero() {
				continue
			}
			rows = append(rows, ItemStockRow{
				Item:                item.Code,
				ItemName:            item.Name,
				ItemGroup:           item.Group,
				Warehouse:           warehouses[j].Name,
				AvailableStock:      toFloat64(qty),
				CurrentSalesPriceWP: toFloat64(itemPrices.CurrentSalesPrice),
				BasePrice:           toFloat64(itemPrices.BasePrice),
				WebRetailPrice:      toFloat64(itemPrices.WebRetailPrice),
				MinimumSalePrice:    toFloat64(itemPrices.MinimumSalePrice),
			})
		}
	}
	return rows, nil
}

func (s *Service) visibleItems(items []catalog.Item) []catalog.Item {
	visible := items[:0]
	for i := range items {
		if s.gate.CanRead(shared.RecordItem, items[i].Code) {
			visible = append(visible, items[i])
		}
	}
	return visible
}

// stockByPair loads bin quantities in one batch and indexes them by item code
// and warehouse. Pairs without a bin row stay absent and read back as zero.
func (s *Service) stockByPair(ctx context.Context, items []catalog.Item, warehouses []inventory.Warehouse) (map[string]map[string]decimal.Decimal, error) {
	codes := make([]string, 0, len(items))
	for i := range items {
		codes = append(codes, items[i].Code)
	}
	names := make([]string, 0, len(warehouses))
	for i := range warehouses {
		names = append(names, warehouses[i].Name)
	}

	bins, err := s.bins.QuantitiesForItems(ctx, codes, names)
	if err != nil {
		return nil, err
	}

	stock := make(map[string]map[string]decimal.Decimal, len(items))
	for i := range bins {
		byWarehouse := stock[bins[i].ItemCode]
		if byWarehouse == nil {
			byWarehouse = make(map[string]decimal.Decimal)
			stock[bins[i].ItemCode] = byWarehouse
		}
		byWarehouse[bins[i].Warehouse] = bins[i].ActualQty
	}
	return stock, nil
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
