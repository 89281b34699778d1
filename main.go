package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/camilon-dental/clinic-api/cache"
	"github.com/camilon-dental/clinic-api/cron"
	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/mail"
	"github.com/camilon-dental/clinic-api/metrics"
	"github.com/camilon-dental/clinic-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.SeedAdmin()
	cache.Init()
	mail.Init()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Camilon Dental Clinic API")
	})
	app.Get("/metrics", metrics.Handler())

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupScheduleRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupMiscRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
