package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates admin routes behind a single configured admin email:
// the authenticated token's email claim must equal ADMIN_EMAIL. Must run
// after AuthRequired. There is no role system, only the one admin account.
func AdminRequired(adminEmail string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if adminEmail == "" || !strings.EqualFold(email, adminEmail) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}
