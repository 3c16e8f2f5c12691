package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/mobileapi/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormSalesOrderRepository_List(t *testing.T) {
	t.Run("assembles header with child rows", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesOrderRepository(gormDB)

		txDate := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

		headerRows := sqlmock.NewRows([]string{"name", "customer", "customer_name", "transaction_date", "delivery_date", "status", "grand_total", "rounded_total", "company", "currency", "territory", "docstatus"}).
			AddRow("SAL-ORD-0001", "CUST-00001", "Alice", txDate, nil, "To Deliver", decimal.NewFromInt(115), decimal.NewFromInt(115), "Acme", "USD", "North", 1)

		mock.ExpectQuery(`SELECT \* FROM "tabSales Order" WHERE name = \$1 ORDER BY transaction_date DESC, name DESC`).
			WithArgs("SAL-ORD-0001").
			WillReturnRows(headerRows)

		itemRows := sqlmock.NewRows([]string{"name", "parent", "idx", "item_code", "item_name", "qty", "rate", "amount", "delivery_date", "warehouse", "uom", "stock_uom", "conversion_factor"}).
			AddRow("row-1", "SAL-ORD-0001", 1, "ITEM-001", "Widget", decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.NewFromInt(100), nil, "Stores - FH", "Nos", "Nos", decimal.NewFromInt(1))

		mock.ExpectQuery(`SELECT \* FROM "tabSales Order Item" WHERE parent IN \(\$1\) ORDER BY parent, idx`).
			WithArgs("SAL-ORD-0001").
			WillReturnRows(itemRows)

		taxRows := sqlmock.NewRows([]string{"name", "parent", "idx", "charge_type", "account_head", "description", "rate", "tax_amount", "total", "cost_center"}).
			AddRow("tax-1", "SAL-ORD-0001", 1, "On Net Total", "VAT - A", "VAT", decimal.NewFromInt(15), decimal.NewFromInt(15), decimal.NewFromInt(115), "Main - A")

		mock.ExpectQuery(`SELECT \* FROM "tabSales Taxes and Charges" WHERE parent IN \(\$1\) ORDER BY parent, idx`).
			WithArgs("SAL-ORD-0001").
			WillReturnRows(taxRows)

		orders, err := repo.List(context.Background(), trade.SalesOrderFilter{SalesOrder: "SAL-ORD-0001"})

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "SAL-ORD-0001", orders[0].Name)
		require.Len(t, orders[0].Items, 1)
		assert.Equal(t, "ITEM-001", orders[0].Items[0].ItemCode)
		assert.Equal(t, "Widget", orders[0].Items[0].Description)
		require.Len(t, orders[0].Taxes, 1)
		assert.Equal(t, "VAT - A", orders[0].Taxes[0].AccountHead)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice without child queries when no headers match", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "tabSales Order" WHERE name = \$1 ORDER BY transaction_date DESC, name DESC`).
			WithArgs("SAL-ORD-MISSING").
			WillReturnRows(sqlmock.NewRows([]string{"name"}))

		orders, err := repo.List(context.Background(), trade.SalesOrderFilter{SalesOrder: "SAL-ORD-MISSING"})

		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order without children gets empty collections", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesOrderRepository(gormDB)

		txDate := time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC)
		headerRows := sqlmock.NewRows([]string{"name", "customer", "customer_name", "transaction_date", "delivery_date", "status", "grand_total", "rounded_total", "company", "currency", "territory", "docstatus"}).
			AddRow("SAL-ORD-0002", "CUST-00002", "Bob", txDate, nil, "Draft", decimal.Zero, decimal.Zero, "Acme", "USD", "South", 0)

		mock.ExpectQuery(`SELECT \* FROM "tabSales Order" ORDER BY transaction_date DESC, name DESC`).
			WillReturnRows(headerRows)
		mock.ExpectQuery(`SELECT \* FROM "tabSales Order Item"`).
			WillReturnRows(sqlmock.NewRows([]string{"name"}))
		mock.ExpectQuery(`SELECT \* FROM "tabSales Taxes and Charges"`).
			WillReturnRows(sqlmock.NewRows([]string{"name"}))

		orders, err := repo.List(context.Background(), trade.SalesOrderFilter{})

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.NotNil(t, orders[0].Items)
		assert.Empty(t, orders[0].Items)
		assert.NotNil(t, orders[0].Taxes)
		assert.Empty(t, orders[0].Taxes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
