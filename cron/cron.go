package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/mail"
	"github.com/camilon-dental/clinic-api/metrics"
	"github.com/camilon-dental/clinic-api/models"
	"github.com/camilon-dental/clinic-api/utils"
)

// StartCronJobs starts the scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New(cron.WithLocation(utils.Manila()))
	// Every morning at 07:00 clinic time, remind tomorrow's patients
	_, err := c.AddFunc("0 7 * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders mails every accepted appointment booked into
// tomorrow's schedule slots.
func sendAppointmentReminders() {
	tomorrow := time.Now().In(utils.Manila()).AddDate(0, 0, 1).Format("2006-01-02")

	var schedules []models.Schedule
	if err := db.DB.Where("date = ?", tomorrow).Find(&schedules).Error; err != nil {
		log.Printf("Error fetching schedules for reminders: %v", err)
		return
	}

	for _, schedule := range schedules {
		var appointments []models.Appointment
		err := db.DB.Where("schedule_id = ? AND status = ?", schedule.ID, models.StatusAccepted).
			Find(&appointments).Error
		if err != nil {
			log.Printf("Error fetching appointments for schedule %d: %v", schedule.ID, err)
			continue
		}

		for _, appointment := range appointments {
			if err := sendReminderEmail(&appointment, &schedule); err != nil {
				metrics.EmailFailures.Inc()
				log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
				continue
			}
			metrics.EmailsSent.Inc()
			log.Printf("Sent reminder for appointment %d", appointment.ID)
		}
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment, schedule *models.Schedule) error {
	var user models.User
	if err := db.DB.First(&user, appointment.PatientID).Error; err != nil {
		return fmt.Errorf("patient %d not found: %w", appointment.PatientID, err)
	}
	var service models.Service
	if err := db.DB.First(&service, appointment.ServiceID).Error; err != nil {
		return fmt.Errorf("service %d not found: %w", appointment.ServiceID, err)
	}

	subject := "Reminder: Your dental appointment tomorrow"
	body := mail.ReminderBody(user.Name, schedule.Date, appointment.Time, service.Name)
	return mail.Send(user.Email, subject, body)
}
