package handler

import (
	"github.com/erp/mobileapi/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// SalesOrderHandler serves composed sales order documents
type SalesOrderHandler struct {
	BaseHandler
	service *trade.OrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(service *trade.OrderService) *SalesOrderHandler {
	return &SalesOrderHandler{service: service}
}

// ListSalesOrders returns sales order headers with their item and tax rows
// attached, newest orders first
func (h *SalesOrderHandler) ListSalesOrders(c *gin.Context) {
	var filter trade.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	orders, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, int64(len(orders)))
}

// RegisterRoutes registers sales order routes
func (h *SalesOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/sales-orders")
	{
		orders.GET("", h.ListSalesOrders)
	}
}
