package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/controllers"
	"github.com/camilon-dental/clinic-api/middleware"
)

// SetupMiscRoutes configures the support mail and upload endpoints
func SetupMiscRoutes(app *fiber.App) {
	app.Post("/mail", controllers.SendSupportMail)
	app.Post("/upload/proof", middleware.Protected(), controllers.UploadProof)
}
