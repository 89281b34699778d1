package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_bookings_created_total",
		Help: "Appointments created through the booking endpoint.",
	})
	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_emails_sent_total",
		Help: "Notification emails delivered.",
	})
	EmailFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_email_failures_total",
		Help: "Notification emails that failed to send.",
	})
)

// Handler exposes the prometheus registry on a fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
