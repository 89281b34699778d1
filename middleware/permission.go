package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/models"
)

// RequireRole rejects the request before the handler runs unless the
// authenticated user holds the given role. The role is checked against
// the database, not the token, so a demoted user loses access as soon as
// the record changes.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(models.UserID)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No authentication token",
			})
		}

		var user models.User
		if err := db.DB.First(&user, userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		if user.Role != roleName {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to perform this action",
			})
		}

		return c.Next()
	}
}
