package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/modelboard/internal/services"
)

// DashboardHandler serves the aggregated dashboard summary.
type DashboardHandler struct {
	dashboard *services.DashboardService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Metrics returns the six dashboard counters, or a failure when any of
// the underlying fetches failed. Partial metrics are never returned.
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	metrics, err := h.dashboard.GetMetrics(c.Context())
	if err != nil {
		return respondUpstream(c, err, nil)
	}
	return respondOK(c, metrics)
}
