package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/controllers"
	"github.com/camilon-dental/clinic-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/session", controllers.Session)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
}
