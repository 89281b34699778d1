package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/camilon-dental/clinic-api/cache"
	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/mail"
	"github.com/camilon-dental/clinic-api/metrics"
	"github.com/camilon-dental/clinic-api/models"
	"github.com/camilon-dental/clinic-api/utils"
)

// BookingInput is the booking form: the chosen slot and service, the
// uploaded payment-proof URL, and the patient's demographic details
// (which update their profile as part of the same booking).
type BookingInput struct {
	ServiceID  models.ServiceID  `json:"service_id"`
	ScheduleID models.ScheduleID `json:"schedule_id"`
	Proof      string            `json:"proof"`
	Name       string            `json:"name"`
	Age        string            `json:"age"`
	Gender     string            `json:"gender"`
	Contact    string            `json:"contact"`
	Address    string            `json:"address"`
}

// GetAllAppointments returns every appointment, newest first.
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if cache.Lookup(cache.KeyAppointments, &appointments) {
		return c.JSON(appointments)
	}

	if err := db.DB.Order("created_at DESC").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	cache.Put(cache.KeyAppointments, appointments)
	return c.JSON(appointments)
}

// GetMyAppointments returns the caller's own appointments, newest first.
func GetMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(models.UserID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No authentication token",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.Where("patient_id = ?", userID).
		Order("created_at DESC").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// CreateAppointment books a slot. The appointment row, the schedule's
// patient list and the patient's demographic fields are written in one
// transaction, so a failure in any of the three leaves no partial state.
func CreateAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(models.UserID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No authentication token",
		})
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.ScheduleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select your schedule.",
		})
	}
	if input.Proof == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Proof of payment is required.",
		})
	}

	appointment := models.Appointment{
		PatientID:  userID,
		ServiceID:  input.ServiceID,
		ScheduleID: input.ScheduleID,
		Proof:      input.Proof,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		schedule := models.Schedule{ID: input.ScheduleID}
		if err := schedule.Book(tx, userID); err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", userID).
			Updates(map[string]interface{}{
				"name":    input.Name,
				"age":     input.Age,
				"gender":  input.Gender,
				"contact": input.Contact,
				"address": input.Address,
				"updated": utils.ManilaNow(),
			}).Error
	})
	if err != nil {
		log.Printf("booking failed for user %d on schedule %d: %v", userID, input.ScheduleID, err)
		if errors.Is(err, models.ErrScheduleFull) || errors.Is(err, models.ErrScheduleClosed) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "This schedule is no longer available.",
			})
		}
		return c.Status(fiber.StatusBadRequest).SendString("request failed.")
	}

	metrics.BookingsCreated.Inc()
	cache.Invalidate(cache.KeyAppointments, cache.KeySchedules, cache.KeyUsers)
	return c.SendString("request success.")
}

// AcceptAppointment sets the appointment time and confirms the booking.
// The confirmation email goes out first; if it cannot be sent the status
// change is aborted, an accepted booking without its confirmation email
// would be invisible to the patient.
func AcceptAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	type AcceptInput struct {
		Time string `json:"time"`
	}
	input := new(AcceptInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Time is required.",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	if err := appointment.CanTransition(models.StatusAccepted); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var user models.User
	if err := db.DB.First(&user, appointment.PatientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Patient not found",
		})
	}
	var schedule models.Schedule
	if err := db.DB.First(&schedule, appointment.ScheduleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Schedule not found",
		})
	}
	var service models.Service
	if err := db.DB.First(&service, appointment.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if err := sendConfirmation(&appointment, &user, &schedule, &service, input.Time); err != nil {
		metrics.EmailFailures.Inc()
		log.Printf("confirmation email failed for appointment %d: %v", appointment.ID, err)
		return c.Status(fiber.StatusBadRequest).SendString("request failed.")
	}
	metrics.EmailsSent.Inc()

	appointment.Time = input.Time
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return appointment.UpdateStatus(tx, models.StatusAccepted)
	})
	if err != nil {
		log.Printf("failed to accept appointment %d: %v", appointment.ID, err)
		return c.Status(fiber.StatusBadRequest).SendString("request failed.")
	}

	cache.Invalidate(cache.KeyAppointments)
	return c.SendString("request success.")
}

// sendConfirmation composes and sends the acceptance email, including
// the patient's queue number for the day.
func sendConfirmation(appointment *models.Appointment, user *models.User, schedule *models.Schedule, service *models.Service, timeOfDay string) error {
	number := schedule.QueuePosition(appointment.PatientID)
	body := mail.ConfirmationBody(utils.ManilaNow(), number, schedule.Date, timeOfDay, service.Name, service.Price)
	return mail.Send(user.Email, mail.ConfirmationSubject, body)
}

// RejectAppointment sends the refund notice and marks the appointment
// rejected. As with acceptance, a failed email aborts the transition.
func RejectAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	if err := appointment.CanTransition(models.StatusRejected); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var user models.User
	if err := db.DB.First(&user, appointment.PatientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Patient not found",
		})
	}

	if err := mail.Send(user.Email, mail.RejectionSubject, mail.RejectionBody()); err != nil {
		metrics.EmailFailures.Inc()
		log.Printf("rejection email failed for appointment %d: %v", appointment.ID, err)
		return c.Status(fiber.StatusBadRequest).SendString("request failed.")
	}
	metrics.EmailsSent.Inc()

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return appointment.UpdateStatus(tx, models.StatusRejected)
	})
	if err != nil {
		log.Printf("failed to reject appointment %d: %v", appointment.ID, err)
		return c.Status(fiber.StatusBadRequest).SendString("request failed.")
	}

	cache.Invalidate(cache.KeyAppointments)
	return c.SendString("request success.")
}

// DeleteAppointment reports success without touching the store. The
// frontend only checks for a success response; whether bookings should
// ever be hard-deleted is still an open product decision.
func DeleteAppointment(c *fiber.Ctx) error {
	return c.SendString("request success.")
}
