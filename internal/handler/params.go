package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 5
	MinLimit     = 1
	MaxLimit     = 10
)

// requiredQuery returns the trimmed query value or a 400 error when it is empty.
func requiredQuery(c *fiber.Ctx, name string) (string, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return v, nil
}

// limitQuery parses ?limit=, defaulting to DefaultLimit and clamping into
// [MinLimit, MaxLimit]. A value that is not an integer is a 400.
func limitQuery(c *fiber.Ctx) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "limit must be an integer")
	}
	return clampLimit(n), nil
}

func clampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
