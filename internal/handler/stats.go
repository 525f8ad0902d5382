package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/red326/media-client-management/internal/middleware"
	"github.com/red326/media-client-management/internal/service"
)

type StatsHandler struct {
	dashboard *service.DashboardService
	reports   *service.ReportService
}

func NewStatsHandler(dashboard *service.DashboardService, reports *service.ReportService) *StatsHandler {
	return &StatsHandler{dashboard: dashboard, reports: reports}
}

// Dashboard handles GET /api/dashboard
func (h *StatsHandler) Dashboard(c fiber.Ctx) error {
	resp, err := h.dashboard.Overview(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard data")
	}
	return c.JSON(resp)
}

// Payments handles GET /api/payments
func (h *StatsHandler) Payments(c fiber.Ctx) error {
	resp, err := h.reports.Payments(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build payment summary")
	}
	return c.JSON(resp)
}
