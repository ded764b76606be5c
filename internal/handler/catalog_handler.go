package handler

import (
	"go-phone-store/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) GetPhoneTypes(c *fiber.Ctx) error {
	types, err := h.service.GetPhoneTypes()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", types)
}

func (h *CatalogHandler) AddPhoneType(c *fiber.Ctx) error {
	var req service.PhoneTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	pt, err := h.service.AddPhoneType(&req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Phone type added", pt)
}

func (h *CatalogHandler) DeletePhoneType(c *fiber.Ctx) error {
	brand := c.Query("brand")
	modelName := c.Query("model")
	if brand == "" || modelName == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "brand and model are required"})
	}

	if err := h.service.DeletePhoneType(brand, modelName); err != nil {
		return fail(c, err)
	}
	return ok(c, "Phone type deleted", nil)
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", categories)
}

func (h *CatalogHandler) AddCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	category, err := h.service.AddCategory(&req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Category added", category)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.DeleteCategory(name); err != nil {
		return fail(c, err)
	}
	return ok(c, "Category deleted", nil)
}
