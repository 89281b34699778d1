package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/controllers"
	"github.com/camilon-dental/clinic-api/middleware"
	"github.com/camilon-dental/clinic-api/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.GetAllAppointments)
	appointment.Get("/me", middleware.Protected(), controllers.GetMyAppointments)
	appointment.Post("/", middleware.Protected(), controllers.CreateAppointment)
	appointment.Patch("/:id/accept", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.AcceptAppointment)
	appointment.Patch("/:id/reject", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.RejectAppointment)
	appointment.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteAppointment)
}
