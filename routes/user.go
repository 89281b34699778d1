package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/controllers"
	"github.com/camilon-dental/clinic-api/middleware"
	"github.com/camilon-dental/clinic-api/models"
)

// SetupUserRoutes configures all user related routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/users", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	user.Get("/", controllers.GetAllUsers)
	user.Get("/:id", controllers.GetUser)
	user.Patch("/:id", controllers.UpdateUser)
	user.Delete("/:id", controllers.DeleteUser)

	app.Get("/accounts", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.GetAllAccounts)
}
