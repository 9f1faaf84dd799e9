package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/service"
)

// AnalyticsHandler serves dashboard figures.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Stats GET /analytics/stats.
func (h *AnalyticsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStatsResponse(stats)})
}

// Revenue GET /analytics/revenue.
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	points, err := h.service.Revenue(c.UserContext())
	if err != nil {
		return err
	}
	averages := service.AverageOrderValue(points)
	out := make([]dto.RevenueResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.RevenueResponse{
			Month:             p.Month,
			Revenue:           p.Revenue,
			Orders:            p.Orders,
			AverageOrderValue: averages[p.Month],
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

// UserGrowth GET /analytics/user-growth.
func (h *AnalyticsHandler) UserGrowth(c *fiber.Ctx) error {
	points, err := h.service.UserGrowth(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewChartResponse(points)})
}

// Categories GET /analytics/categories.
func (h *AnalyticsHandler) Categories(c *fiber.Ctx) error {
	points, err := h.service.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewChartResponse(points)})
}
