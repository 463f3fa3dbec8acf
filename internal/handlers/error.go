package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every handler error as a {"message": ...} body.
// Unmapped errors become 500 with the underlying message passed through.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
