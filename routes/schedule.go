package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/controllers"
	"github.com/camilon-dental/clinic-api/middleware"
	"github.com/camilon-dental/clinic-api/models"
)

// SetupScheduleRoutes configures all schedule related routes
func SetupScheduleRoutes(app *fiber.App) {
	schedule := app.Group("/schedules")
	schedule.Get("/", controllers.GetAllSchedules)
	schedule.Get("/:id", controllers.GetSchedule)
	schedule.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateSchedule)
	schedule.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateSchedule)
	schedule.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteSchedule)
}
