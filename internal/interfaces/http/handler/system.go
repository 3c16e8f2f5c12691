package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/erp/mobileapi/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing record store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Health reports service and record store health. Returns 503 when the
// record store is unreachable so load balancers stop routing here.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Database:  "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(resp))
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// RegisterHealthRoute registers the unversioned health endpoint
func (h *SystemHandler) RegisterHealthRoute(engine *gin.Engine) {
	engine.GET("/health", h.Health)
}
