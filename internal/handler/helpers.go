package handler

import (
	"go-phone-store/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// User info helpers read the values the auth middleware put in Locals.
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// fail maps a service error to its HTTP status and the standard error body.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(201).JSON(fiber.Map{"success": true, "message": message, "data": data})
}
