package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/badobtech/backoffice-service/pkg/util"
)

// RequireNumericParam rejects requests whose named path parameter does not
// parse as a positive integer, before any handler logic runs. It is
// composable with or without the auth pipeline.
func RequireNumericParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(name)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return apperrors.NewValidationError(name+" must be a positive integer",
				map[string]any{name: raw})
		}
		return c.Next()
	}
}

// NumericParam returns the already-validated path parameter as int64.
func NumericParam(c *fiber.Ctx, name string) int64 {
	id, _ := strconv.ParseInt(c.Params(name), 10, 64)
	return id
}
