package handler

import (
	"go-phone-store/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AccessoryHandler struct {
	service service.AccessoryService
}

func NewAccessoryHandler(s service.AccessoryService) *AccessoryHandler {
	return &AccessoryHandler{service: s}
}

func (h *AccessoryHandler) Create(c *fiber.Ctx) error {
	var req service.AccessoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	accessory, err := h.service.CreateAccessory(&req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Accessory added", accessory)
}

func (h *AccessoryHandler) GetAll(c *fiber.Ctx) error {
	if term := c.Query("q"); term != "" {
		accessories, err := h.service.SearchAccessories(term)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "", accessories)
	}

	accessories, err := h.service.GetAllAccessories()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", accessories)
}

func (h *AccessoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid accessory ID"})
	}

	accessory, err := h.service.GetAccessoryByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", accessory)
}

func (h *AccessoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid accessory ID"})
	}

	var req service.AccessoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	accessory, err := h.service.UpdateAccessory(id, &req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Accessory updated", accessory)
}

func (h *AccessoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid accessory ID"})
	}

	if err := h.service.DeleteAccessory(id); err != nil {
		return fail(c, err)
	}
	return ok(c, "Accessory deleted", nil)
}

func (h *AccessoryHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid accessory ID"})
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	newQuantity, err := h.service.AdjustStock(id, body.Delta, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Stock adjusted", fiber.Map{"quantity_in_stock": newQuantity})
}

func (h *AccessoryHandler) LowStock(c *fiber.Ctx) error {
	accessories, err := h.service.GetLowStockAccessories()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", accessories)
}

func (h *AccessoryHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", stats)
}
