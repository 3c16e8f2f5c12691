package inventory

import "context"

// Warehouse is a stock scoping dimension owned by a company.
type Warehouse struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// WarehouseFilter narrows warehouse listings. Empty fields are ignored.
type WarehouseFilter struct {
	Warehouse string
	Company   string
}

// WarehouseRepository provides read access to warehouses.
type WarehouseRepository interface {
	// List returns warehouses matching the filter, ordered by name.
	List(ctx context.Context, filter WarehouseFilter) ([]Warehouse, error)
}
