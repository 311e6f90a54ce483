package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstr1/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	source port.InvoiceSource
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(source port.InvoiceSource) *HealthHandler {
	return &HealthHandler{source: source}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.source.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "invoice source not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
