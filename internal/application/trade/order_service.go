package trade

import (
	"context"
	"time"

	"github.com/erp/mobileapi/internal/domain/shared"
	"github.com/erp/mobileapi/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderFilter narrows the order listing to one order when set.
type OrderFilter struct {
	SalesOrder string `form:"sales_order"`
}

// SalesOrderView is one fully nested order. All numeric fields are passed
// through from storage; nothing is re-derived here.
type SalesOrderView struct {
	SalesOrder      string               `json:"sales_order"`
	Customer        string               `json:"customer"`
	CustomerName    string               `json:"customer_name"`
	TransactionDate string               `json:"transaction_date"`
	DeliveryDate    *string              `json:"delivery_date"`
	Status          string               `json:"status"`
	GrandTotal      float64              `json:"grand_total"`
	RoundedTotal    float64              `json:"rounded_total"`
	Company         string               `json:"company"`
	Currency        string               `json:"currency"`
	Territory       string               `json:"territory"`
	DocStatus       int                  `json:"docstatus"`
	Items           []SalesOrderItemView `json:"items"`
	Taxes           []SalesOrderTaxView  `json:"taxes"`
}

// SalesOrderItemView is one order line row. The item_name field carries the
// stored row identity, matching what existing clients expect.
type SalesOrderItemView struct {
	ItemName         string  `json:"item_name"`
	ItemCode         string  `json:"item_code"`
	ItemDescription  string  `json:"item_description"`
	Qty              float64 `json:"qty"`
	Rate             float64 `json:"rate"`
	Amount           float64 `json:"amount"`
	DeliveryDate     *string `json:"delivery_date"`
	Warehouse        string  `json:"warehouse"`
	UOM              string  `json:"uom"`
	StockUOM         string  `json:"stock_uom"`
	ConversionFactor float64 `json:"conversion_factor"`
}

// SalesOrderTaxView is one tax row. The total field carries the running total
// after this row, so row order is preserved from storage.
type SalesOrderTaxView struct {
	TaxName     string  `json:"tax_name"`
	ChargeType  string  `json:"charge_type"`
	AccountHead string  `json:"account_head"`
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	TaxAmount   float64 `json:"tax_amount"`
	Total       float64 `json:"total"`
	CostCenter  string  `json:"cost_center"`
}

// OrderService assembles sales order headers with their child rows. The
// composer's job is structural assembly, not calculation.
type OrderService struct {
	orders trade.SalesOrderRepository
	gate   shared.ReadGate
}

// NewOrderService creates a new OrderService
func NewOrderService(orders trade.SalesOrderRepository, gate shared.ReadGate) *OrderService {
	if gate == nil {
		gate = shared.AllowAll
	}
	return &OrderService{
		orders: orders,
		gate:   gate,
	}
}

// List returns orders visible to the caller, newest first, each with its
// items and taxes in stored row order. An unknown order name yields an empty
// result; an order the caller may not see yields shared.ErrForbidden when
// requested by name and is silently dropped from bulk listings.
func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]SalesOrderView, error) {
	orders, err := s.orders.List(ctx, trade.SalesOrderFilter{SalesOrder: filter.SalesOrder})
	if err != nil {
		return nil, err
	}

	views := make([]SalesOrderView, 0, len(orders))
	for i := range orders {
		if !s.gate.CanRead(shared.RecordSalesOrder, orders[i].Name) {
			if filter.SalesOrder != "" {
				return nil, shared.ErrForbidden
			}
			continue
		}
		views = append(views, toOrderView(&orders[i]))
	}
	return views, nil
}

func toOrderView(o *trade.SalesOrder) SalesOrderView {
	items := make([]SalesOrderItemView, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, SalesOrderItemView{
			ItemName:         it.RowName,
			ItemCode:         it.ItemCode,
			ItemDescription:  it.Description,
			Qty:              toFloat64(it.Qty),
			Rate:             toFloat64(it.Rate),
			Amount:           toFloat64(it.Amount),
			DeliveryDate:     formatDatePtr(it.DeliveryDate),
			Warehouse:        it.Warehouse,
			UOM:              it.UOM,
			StockUOM:         it.StockUOM,
			ConversionFactor: toFloat64(it.ConversionFactor),
		})
	}

	taxes := make([]SalesOrderTaxView, 0, len(o.Taxes))
	for i := range o.Taxes {
		tx := &o.Taxes[i]
		taxes = append(taxes, SalesOrderTaxView{
			TaxName:     tx.RowName,
			ChargeType:  tx.ChargeType,
			AccountHead: tx.AccountHead,
			Description: tx.Description,
			Rate:        toFloat64(tx.Rate),
			TaxAmount:   toFloat64(tx.TaxAmount),
			Total:       toFloat64(tx.Total),
			CostCenter:  tx.CostCenter,
		})
	}

	return SalesOrderView{
		SalesOrder:      o.Name,
		Customer:        o.Customer,
		CustomerName:    o.CustomerName,
		TransactionDate: formatDate(o.TransactionDate),
		DeliveryDate:    formatDatePtr(o.DeliveryDate),
		Status:          o.Status,
		GrandTotal:      toFloat64(o.GrandTotal),
		RoundedTotal:    toFloat64(o.RoundedTotal),
		Company:         o.Company,
		Currency:        o.Currency,
		Territory:       o.Territory,
		DocStatus:       o.DocStatus,
		Items:           items,
		Taxes:           taxes,
	}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
