package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dongchun97/trans-test/internal/model"
	"github.com/dongchun97/trans-test/internal/service"
)

type HealthHandler struct {
	lookup service.WordLookup
}

func NewHealthHandler(lookup service.WordLookup) *HealthHandler {
	return &HealthHandler{
		lookup: lookup,
	}
}

// GetStatus reports the sizes of the loaded indices.
func (h *HealthHandler) GetStatus(c *fiber.Ctx) error {
	stats := h.lookup.Stats()
	return c.JSON(model.HealthResponse{
		Status:      "healthy",
		WordCount:   stats.Words,
		PrefixCount: stats.Prefixes,
		RootCount:   stats.Roots,
	})
}
