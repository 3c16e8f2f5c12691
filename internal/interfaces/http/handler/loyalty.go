package handler

import (
	"github.com/erp/mobileapi/internal/application/loyalty"
	"github.com/gin-gonic/gin"
)

// LoyaltyHandler serves the raw loyalty point ledger
type LoyaltyHandler struct {
	BaseHandler
	service *loyalty.LedgerService
}

// NewLoyaltyHandler creates a new LoyaltyHandler
func NewLoyaltyHandler(service *loyalty.LedgerService) *LoyaltyHandler {
	return &LoyaltyHandler{service: service}
}

// ListLoyaltyPointEntries returns ledger entries newest first, optionally
// narrowed to a single customer
func (h *LoyaltyHandler) ListLoyaltyPointEntries(c *gin.Context) {
	var filter loyalty.LedgerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	entries, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, int64(len(entries)))
}

// RegisterRoutes registers loyalty ledger routes
func (h *LoyaltyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	entries := rg.Group("/loyalty-point-entries")
	{
		entries.GET("", h.ListLoyaltyPointEntries)
	}
}
