package handler

import (
	"strconv"
	"time"

	"go-phone-store/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	sale, err := h.service.CreateSale(&req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Sale recorded", sale)
}

// GetAll supports period filters: ?period=day&date=2026-08-30,
// ?period=month&year=2026&month=8, ?period=year&year=2026.
func (h *SaleHandler) GetAll(c *fiber.Ctx) error {
	filter := service.SaleFilter{Type: c.Query("period", "all")}

	switch filter.Type {
	case "day":
		day, err := time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date, use YYYY-MM-DD"})
		}
		filter.Day = day
	case "month":
		filter.Year, _ = strconv.Atoi(c.Query("year"))
		filter.Month, _ = strconv.Atoi(c.Query("month"))
		if filter.Year == 0 || filter.Month < 1 || filter.Month > 12 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid year/month"})
		}
	case "year":
		filter.Year, _ = strconv.Atoi(c.Query("year"))
		if filter.Year == 0 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid year"})
		}
	}

	sales, err := h.service.FilterSales(filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", sales)
}

func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid sale ID"})
	}

	sale, err := h.service.GetSaleByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", sale)
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid sale ID"})
	}

	var req service.UpdateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	sale, err := h.service.UpdateSale(id, &req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Sale updated", sale)
}

func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid sale ID"})
	}

	if err := h.service.CancelSale(id, getUserID(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, "Sale cancelled", nil)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid sale ID"})
	}

	if err := h.service.DeleteSale(id); err != nil {
		return fail(c, err)
	}
	return ok(c, "Sale deleted", nil)
}

func (h *SaleHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", stats)
}

func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid sale ID"})
	}

	receipt, err := h.service.GetReceipt(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", receipt)
}
