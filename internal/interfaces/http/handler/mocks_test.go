package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/erp/mobileapi/internal/domain/catalog"
	"github.com/erp/mobileapi/internal/domain/inventory"
	"github.com/erp/mobileapi/internal/domain/partner"
	"github.com/erp/mobileapi/internal/domain/trade"
	"github.com/erp/mobileapi/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
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

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) ListEnabled(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id string) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

type mockLoyaltyEntryRepository struct {
	mock.Mock
}

func (m *mockLoyaltyEntryRepository) List(ctx context.Context, filter partner.LoyaltyEntryFilter) ([]partner.LoyaltyPointEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.LoyaltyPointEntry), args.Error(1)
}

func (m *mockLoyaltyEntryRepository) BalanceByCustomer(ctx context.Context, customerIDs []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, customerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

type mockSalesOrderRepository struct {
	mock.Mock
}

func (m *mockSalesOrderRepository) List(ctx context.Context, filter trade.SalesOrderFilter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func newTestEngine(registrars ...router.RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	r := router.NewRouter(engine)
	for _, reg := range registrars {
		r.Register(reg)
	}
	r.Setup()
	return engine
}

func doRequest(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}
