package handler

import (
	"go-phone-store/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PhoneHandler struct {
	service service.PhoneService
}

func NewPhoneHandler(s service.PhoneService) *PhoneHandler {
	return &PhoneHandler{service: s}
}

func (h *PhoneHandler) Create(c *fiber.Ctx) error {
	var req service.CreatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	phone, err := h.service.CreatePhone(&req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Phone added to inventory", phone)
}

func (h *PhoneHandler) GetAll(c *fiber.Ctx) error {
	// ?q= switches to search mode; ?condition= narrows to new or used.
	term := c.Query("q")
	condition := c.Query("condition")
	if term != "" || condition != "" {
		phones, err := h.service.SearchPhones(term, condition)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "", phones)
	}

	phones, err := h.service.GetAllPhones()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", phones)
}

func (h *PhoneHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid phone ID"})
	}

	phone, err := h.service.GetPhoneByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", phone)
}

func (h *PhoneHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid phone ID"})
	}

	var req service.UpdatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	phone, err := h.service.UpdatePhone(id, &req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Phone updated", phone)
}

func (h *PhoneHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid phone ID"})
	}

	if err := h.service.DeletePhone(id); err != nil {
		return fail(c, err)
	}
	return ok(c, "Phone removed from inventory", nil)
}

func (h *PhoneHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", stats)
}
