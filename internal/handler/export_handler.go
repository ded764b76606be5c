package handler

import (
	"go-phone-store/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{service: s}
}

// GET /api/v1/export
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	payload, err := h.service.Export()
	if err != nil {
		return fail(c, err)
	}
	c.Set("Content-Disposition", `attachment; filename="phone-store-backup.json"`)
	return c.JSON(payload)
}

// POST /api/v1/import takes the raw backup document as the request body.
func (h *ExportHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Empty request body"})
	}

	summary, err := h.service.Import(body, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Import complete", summary)
}
