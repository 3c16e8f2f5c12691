package handler

import (
	"github.com/erp/mobileapi/internal/application/loyalty"
	"github.com/gin-gonic/gin"
)

// CustomerHandler serves customer profiles with loyalty balances
type CustomerHandler struct {
	BaseHandler
	service *loyalty.BalanceService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service *loyalty.BalanceService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// ListCustomers returns customer profiles, each annotated with the customer's
// summed loyalty point balance. Naming an unknown customer yields an empty
// list rather than an error.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var filter loyalty.CustomerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	customers, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, customers, int64(len(customers)))
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
	}
}
