package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/domain/relations"
	"isoref/internal/infrastructure/http/v1/dto"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Info returns the loaded dataset version and catalogue sizes.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InfoResponse{
		Status:         "ok",
		DatasetVersion: relations.DatasetVersion,
		Counts: map[string]int{
			"countries":  country.Count,
			"currencies": currency.Count,
			"languages":  language.Count,
		},
		Uptime: time.Since(h.started).Truncate(time.Second).String(),
	})
}
