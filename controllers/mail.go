package controllers

import (
	"html"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/mail"
	"github.com/camilon-dental/clinic-api/metrics"
)

// SendSupportMail forwards a visitor's message to the clinic operator
// address. The sender's email becomes the subject so staff can reply
// from their inbox.
func SendSupportMail(c *fiber.Ctx) error {
	type MailInput struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}

	input := new(MailInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and message are required.",
		})
	}

	// The message is visitor-controlled free text and the sender delivers
	// HTML, so escape it before it reaches the staff inbox.
	if err := mail.Send(os.Getenv("EMAIL_FROM"), input.Email, html.EscapeString(input.Message)); err != nil {
		metrics.EmailFailures.Inc()
		log.Printf("support mail failed: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("request failed.")
	}

	metrics.EmailsSent.Inc()
	return c.SendString("request success.")
}
