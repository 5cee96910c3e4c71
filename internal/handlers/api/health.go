package api

import (
	"github.com/gofiber/fiber/v3"

	"excuses/internal/models"
	"excuses/internal/provider"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	cache CacheStats
	mode  string
	dep   provider.DeploymentContext
}

// CacheStats is the read-only view of the response cache.
type CacheStats interface {
	Len() int
	Capacity() int
}

// NewHealthHandler creates a new health handler. cache may be nil.
func NewHealthHandler(cache CacheStats, mode string, dep provider.DeploymentContext) *HealthHandler {
	return &HealthHandler{cache: cache, mode: mode, dep: dep}
}

// Check returns the service status.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	resp := models.HealthResponse{
		Status:   "ok",
		Mode:     h.mode,
		Platform: h.dep.Platform,
	}
	if h.cache != nil {
		resp.CacheEntries = h.cache.Len()
		resp.CacheCapacity = h.cache.Capacity()
	}
	return jsonSuccess(c, resp)
}
