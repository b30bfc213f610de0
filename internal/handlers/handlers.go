package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/config"
)

// ErrorHandler renders errors as the error page, or as the JSON error
// envelope for requests under /api. Unexpected errors are only shown
// verbatim in development.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else if cfg.IsDev() {
			message = err.Error()
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		}

		return c.Status(code).Render("error", MergeBranding(fiber.Map{
			"Title":   "Error",
			"Code":    code,
			"Message": message,
		}, cfg))
	}
}
