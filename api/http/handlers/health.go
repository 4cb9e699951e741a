package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/careeragentpro/backend/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.UseCase }

func NewHealthHandler(svc health.UseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: service status with per-dependency checks.
// @Summary Liveness probe
// @Description Always answers 200; the body carries per-dependency check results and an overall healthy or degraded status.
// @Tags    health
// @Produce json
// @Success 200 {object} health.Report
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	return c.Status(fiber.StatusOK).JSON(h.svc.Report(ctx))
}

// Ready: readiness check against the required dependencies.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
