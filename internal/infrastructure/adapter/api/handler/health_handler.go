package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
)

// DatabaseChecker reports whether the store is reachable and keeping up
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	Saturated() bool
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	db     DatabaseChecker
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db DatabaseChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: "down"})
		return
	}

	// a saturated pool still serves requests, only slower
	if h.db.Saturated() {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "degraded", Database: "busy"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
