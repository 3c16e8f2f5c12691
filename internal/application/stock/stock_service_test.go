package stock

import (
	"context"
	"testing"

	"github.com/erp/mobileapi/internal/domain/catalog"
	"github.com/erp/mobileapi/internal/domain/inventory"
	"github.com/erp/mobileapi/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) ListActive(ctx context.Context, filter catalog.ItemFilter) ([]catalog.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Item), args.Error(1)
}

type mockWarehouseRepository struct {
	mock.Mock
}

func (m *mockWarehouseRepository) List(ctx context.Context, filter inventory.WarehouseFilter) ([]inventory.Warehouse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

type mockBinRepository struct {
	mock.Mock
}

func (m *mockBinRepository) QuantitiesForItems(ctx context.Context, itemCodes, warehouses []string) ([]inventory.Bin, error) {
	args := m.Called(ctx, itemCodes, warehouses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Bin), args.Error(1)
}

type mockPriceListRateRepository struct {
	mock.Mock
}

func (m *mockPriceListRateRepository) RatesForPriceList(ctx context.Context, priceList string, itemCodes []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, priceList, itemCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func newTestService(items *mockItemRepository, warehouses *mockWarehouseRepository, bins *mockBinRepository, rates *mockPriceListRateRepository) *Service {
	return NewService(items, warehouses, bins, NewPriceResolver(rates, "Sales Price List"), nil)
}

func testItem(code, name string) catalog.Item {
	return catalog.Item{
		Code:             code,
		Name:             name,
		Group:            "Products",
		BasePrice:        decimal.NewFromInt(10),
		WebRetailPrice:   decimal.NewFromInt(12),
		MinimumSalePrice: decimal.NewFromInt(8),
	}
}

func TestStockService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("item without bin rows surfaces zero-filled per warehouse", func(t *testing.T) {
		items := new(mockItemRepository)
		warehouses := new(mockWarehouseRepository)
		bins := new(mockBinRepository)
		rates := new(mockPriceListRateRepository)
		svc := newTestService(items, warehouses, bins, rates)

		items.On("ListActive", ctx, catalog.ItemFilter{}).
			Return([]catalog.Item{testItem("ITEM-001", "Widget")}, nil)
		warehouses.On("List", ctx, inventory.WarehouseFilter{}).
			Return([]inventory.Warehouse{{Name: "Stores - FH"}, {Name: "Depot - FH"}}, nil)
		bins.On("QuantitiesForItems", ctx, []string{"ITEM-001"}, []string{"Stores - FH", "Depot - FH"}).
			Return([]inventory.Bin{}, nil)
		rates.On("RatesForPriceList", ctx, "Sales Price List", []string{"ITEM-001"}).
			Return(map[string]decimal.Decimal{}, nil)

		rows, err := svc.List(ctx, ItemStockFilter{})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Stores - FH", rows[0].Warehouse)
		assert.Equal(t, "Depot - FH", rows[1].Warehouse)
		assert.Zero(t, rows[0].AvailableStock)
		assert.Zero(t, rows[0].CurrentSalesPriceWP)
		assert.Equal(t, 10.0, rows[0].BasePrice)
	})

	t.Run("include_zero_stock=false drops exact zeros but keeps negative stock", func(t *testing.T) {
		items := new(mockItemRepository)
		warehouses := new(mockWarehouseRepository)
		bins := new(mockBinRepository)
		rates := new(mockPriceListRateRepository)
		svc := newTestService(items, warehouses, bins, rates)

		items.On("ListActive", ctx, mock.Anything).
			Return([]catalog.Item{testItem("ITEM-001", "Widget")}, nil)
		warehouses.On("List", ctx, mock.Anything).
			Return([]inventory.Warehouse{{Name: "A"}, {Name: "B"}, {Name: "C"}}, nil)
		bins.On("QuantitiesForItems", ctx, mock.Anything, mock.Anything).
			Return([]inventory.Bin{
				{ItemCode: "ITEM-001", Warehouse: "A", ActualQty: decimal.NewFromInt(5)},
				{ItemCode: "ITEM-001", Warehouse: "B", ActualQty: decimal.Zero},
				{ItemCode: "ITEM-001", Warehouse: "C", ActualQty: decimal.NewFromInt(-2)},
			}, nil)
		rates.On("RatesForPriceList", ctx, mock.Anything, mock.Anything).
			Return(map[string]decimal.Decimal{}, nil)

		includeZero := false
		rows, err := svc.List(ctx, ItemStockFilter{IncludeZeroStock: &includeZero})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "A", rows[0].Warehouse)
		assert.Equal(t, 5.0, rows[0].AvailableStock)
		assert.Equal(t, "C", rows[1].Warehouse)
		assert.Equal(t, -2.0, rows[1].AvailableStock)
	})

	t.Run("zero stock at a named warehouse yields empty result when excluded", func(t *testing.T) {
		items := new(mockItemRepository)
		warehouses := new(mockWarehouseRepository)
		bins := new(mockBinRepository)
		rates := new(mockPriceListRateRepository)
		svc := newTestService(items, warehouses, bins, rates)

		items.On("ListActive", ctx, catalog.ItemFilter{ItemCode: "ITEM-001"}).
			Return([]catalog.Item{testItem("ITEM-001", "Widget")}, nil)
		warehouses.On("List", ctx, inventory.WarehouseFilter{Warehouse: "Stores - FH"}).
			Return([]inventory.Warehouse{{Name: "Stores - FH"}}, nil)
		bins.On("QuantitiesForItems", ctx, mock.Anything, mock.Anything).
			Return([]inventory.Bin{{ItemCode: "ITEM-001", Warehouse: "Stores - FH", ActualQty: decimal.Zero}}, nil)
		rates.On("RatesForPriceList", ctx, mock.Anything, mock.Anything).
			Return(map[string]decimal.Decimal{}, nil)

		includeZero := false
		rows, err := svc.List(ctx, ItemStockFilter{ItemCode: "ITEM-001", Warehouse: "Stores - FH", IncludeZeroStock: &includeZero})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("prices are resolved in one batch and reused across warehouses", func(t *testing.T) {
		items := new(mockItemRepository)
		warehouses := new(mockWarehouseRepository)
		bins := new(mockBinRepository)
		rates := new(mockPriceListRateRepository)
		svc := newTestService(items, warehouses, bins, rates)

		items.On("ListActive", ctx, mock.Anything).
			Return([]catalog.Item{testItem("ITEM-001", "Widget")}, nil)
		warehouses.On("List", ctx, mock.Anything).
			Return([]inventory.Warehouse{{Name: "A"}, {Name: "B"}}, nil)
		bins.On("QuantitiesForItems", ctx, mock.Anything, mock.Anything).
			Return([]inventory.Bin{}, nil)
		rates.On("RatesForPriceList", ctx, "Retail Price List", []string{"ITEM-001"}).
			Return(map[string]decimal.Decimal{"ITEM-001": decimal.NewFromInt(11)}, nil).
			Once()

		rows, err := svc.List(ctx, ItemStockFilter{PriceList: "Retail Price List"})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 11.0, rows[0].CurrentSalesPriceWP)
		assert.Equal(t, 11.0, rows[1].CurrentSalesPriceWP)
		rates.AssertNumberOfCalls(t, "RatesForPriceList", 1)
	})

	t.Run("no matching items short-circuits without warehouse lookup", func(t *testing.T) {
		items := new(mockItemRepository)
		warehouses := new(mockWarehouseRepository)
		bins := new(mockBinRepository)
		rates := new(mockPriceListRateRepository)
		svc := newTestService(items, warehouses, bins, rates)

		items.On("ListActive", ctx, mock.Anything).Return([]catalog.Item{}, nil)

		rows, err := svc.List(ctx, ItemStockFilter{ItemCode: "ITEM-MISSING"})

		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
		warehouses.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("items hidden by the read gate are dropped", func(t *testing.T) {
		items := new(mockItemRepository)
		warehouses := new(mockWarehouseRepository)
		bins := new(mockBinRepository)
		rates := new(mockPriceListRateRepository)

		gate := shared.ReadGateFunc(func(recordType, name string) bool {
			return name != "ITEM-002"
		})
		svc := NewService(items, warehouses, bins, NewPriceResolver(rates, "Sales Price List"), gate)

		items.On("ListActive", ctx, mock.Anything).
			Return([]catalog.Item{testItem("ITEM-001", "Widget"), testItem("ITEM-002", "Hidden")}, nil)
		warehouses.On("List", ctx, mock.Anything).
			Return([]inventory.Warehouse{{Name: "A"}}, nil)
		bins.On("QuantitiesForItems", ctx, []string{"ITEM-001"}, []string{"A"}).
			Return([]inventory.Bin{}, nil)
		rates.On("RatesForPriceList", ctx, mock.Anything, []string{"ITEM-001"}).
			Return(map[string]decimal.Decimal{}, nil)

		rows, err := svc.List(ctx, ItemStockFilter{})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "ITEM-001", rows[0].Item)
	})

	t.Run("gateway errors propagate unmodified", func(t *testing.T) {
		items := new(mockItemRepository)
		warehouses := new(mockWarehouseRepository)
		bins := new(mockBinRepository)
		rates := new(mockPriceListRateRepository)
		svc := newTestService(items, warehouses, bins, rates)

		items.On("ListActive", ctx, mock.Anything).Return(nil, assert.AnError)

		rows, err := svc.List(ctx, ItemStockFilter{})

		assert.Nil(t, rows)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
