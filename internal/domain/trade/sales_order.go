package trade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder is an order header together with its ordered child rows. Child
// rows are exclusively owned by the header and never surface on their own.
type SalesOrder struct {
	Name            string           `json:"name"`
	Customer        string           `json:"customer"`
	CustomerName    string           `json:"customer_name"`
	TransactionDate time.Time        `json:"transaction_date"`
	DeliveryDate    *time.Time       `json:"delivery_date"`
	Status          string           `json:"status"`
	GrandTotal      decimal.Decimal  `json:"grand_total"`
	RoundedTotal    decimal.Decimal  `json:"rounded_total"`
	Company         string           `json:"company"`
	Currency        string           `json:"currency"`
	Territory       string           `json:"territory"`
	DocStatus       int              `json:"docstatus"`
	Items           []SalesOrderItem `json:"items"`
	Taxes           []SalesOrderTax  `json:"taxes"`
}

// SalesOrderItem is one ordered line row. RowName is the stored row identity;
// Description carries the item's display name as stored on the row.
type SalesOrderItem struct {
	RowName          string          `json:"row_name"`
	ItemCode         string          `json:"item_code"`
	Description      string          `json:"description"`
	Qty              decimal.Decimal `json:"qty"`
	Rate             decimal.Decimal `json:"rate"`
	Amount           decimal.Decimal `json:"amount"`
	DeliveryDate     *time.Time      `json:"delivery_date"`
	Warehouse        string          `json:"warehouse"`
	UOM              string          `json:"uom"`
	StockUOM         string          `json:"stock_uom"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
}

// SalesOrderTax is one tax/charge row. Total carries the running total, so
// row order matters.
type SalesOrderTax struct {
	RowName     string          `json:"row_name"`
	ChargeType  string          `json:"charge_type"`
	AccountHead string          `json:"account_head"`
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`
	CostCenter  string          `json:"cost_center"`
}

// SalesOrderFilter narrows order listings. An empty SalesOrder means all
// orders.
type SalesOrderFilter struct {
	SalesOrder string
}

// SalesOrderRepository provides read access to sales orders.
type SalesOrderRepository interface {
	// List returns fully assembled orders matching the filter, headers
	// ordered by transaction date descending then name descending, child
	// rows in their stored idx order. An unknown order name yields an empty
	// slice, not an error.
	List(ctx context.Context, filter SalesOrderFilter) ([]SalesOrder, error)
}
