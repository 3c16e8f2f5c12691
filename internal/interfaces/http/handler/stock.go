package handler

import (
	"github.com/erp/mobileapi/internal/application/stock"
	"github.com/gin-gonic/gin"
)

// StockHandler serves the item stock and price aggregation endpoint
type StockHandler struct {
	BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(service *stock.Service) *StockHandler {
	return &StockHandler{service: service}
}

// ListItemStock returns one row per item-warehouse pair with live stock
// quantities and resolved selling prices
func (h *StockHandler) ListItemStock(c *gin.Context) {
	var filter stock.ItemStockFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	rows, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, rows, int64(len(rows)))
}

// RegisterRoutes registers stock routes
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stocks := rg.Group("/stock")
	{
		stocks.GET("/items", h.ListItemStock)
	}
}
