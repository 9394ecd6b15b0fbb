package handlers

import "github.com/gofiber/fiber/v2"

func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondUpstream reports a backend failure while still shipping the
// safe-default payload, so dashboard views can render either the data or
// the message.
func respondUpstream(c *fiber.Ctx, err error, data any) error {
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"data":    data,
	})
}
