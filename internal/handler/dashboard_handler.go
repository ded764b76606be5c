package handler

import (
	"time"

	"go-phone-store/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.service.GetOverview(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", overview)
}

// Revenue defaults to the last 30 days when no range is given.
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid from date, use YYYY-MM-DD"})
		}
		start = parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid to date, use YYYY-MM-DD"})
		}
		// Include the whole end day.
		end = parsed.AddDate(0, 0, 1)
	}

	summary, err := h.service.GetRevenue(c.Context(), start, end)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", summary)
}
