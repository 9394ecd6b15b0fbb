package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ListWindow holds the limit/offset window of an admin listing request.
type ListWindow struct {
	Limit  int
	Offset int
}

// ParseListWindow reads limit and offset query params with sane defaults.
func ParseListWindow(c *fiber.Ctx) ListWindow {
	limit := parseInt(c.Query("limit", "50"), 50)
	offset := parseInt(c.Query("offset", "0"), 0)
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return ListWindow{
		Limit:  limit,
		Offset: offset,
	}
}

// ParsePeriod reads the reporting period in days, falling back when the
// param is missing or not positive.
func ParsePeriod(c *fiber.Ctx, fallback int) int {
	period := parseInt(c.Query("period", ""), fallback)
	if period <= 0 {
		period = fallback
	}
	return period
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
