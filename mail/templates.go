package mail

import "fmt"

const clinicSignature = "Dr. Jevemille Pascual - Camilon Dental Clinic"

const (
	ConfirmationSubject = "We have received your partial payment successfully."
	RejectionSubject    = "We have rejected your partial payment!"
)

// ConfirmationBody builds the acceptance email. number is the patient's
// 0-based queue position in the day's schedule.
func ConfirmationBody(dateFiled string, number int, date, time, service string, price float64) string {
	return fmt.Sprintf(
		`<p>Dear Valued Customer,<br /><br />We have received your partial payment successfully through GCash. Webform with the following details:<br /><br />Date filed: %s<br /><br />Patient Number: %d<br /><br />Date Schedule: %s<br /><br />Time of Schedule: %s<br /><br />Service: %s<br /><br />Amount of Service: %v Pesos<br /><br /><b>%s</b></p>`,
		dateFiled, number, date, time, service, price, clinicSignature,
	)
}

// RejectionBody builds the refund-notice email sent when staff reject a
// payment proof.
func RejectionBody() string {
	return fmt.Sprintf(
		`<p>We have rejected your partial payment due to an insufficient amount of money you sent. Your money will be refunded to your GCash account right away.<br /><br />Note: Please send the exact partial payment amount on your next transaction.<br /><br /><b>%s</b></p>`,
		clinicSignature,
	)
}

// ReminderBody builds the day-before reminder for accepted appointments.
func ReminderBody(name, date, time, service string) string {
	return fmt.Sprintf(
		`<p>Dear %s,<br /><br />This is a reminder for your dental appointment tomorrow.<br /><br />Date: %s<br /><br />Time: %s<br /><br />Service: %s<br /><br />Please arrive on time. If you need to reschedule, contact us as soon as possible.<br /><br /><b>%s</b></p>`,
		name, date, time, service, clinicSignature,
	)
}
