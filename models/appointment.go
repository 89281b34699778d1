package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/camilon-dental/clinic-api/utils"
)

type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusAccepted AppointmentStatus = "accepted"
	StatusRejected AppointmentStatus = "rejected"
)

// Appointment is the booking record. It references the patient, the
// service and the schedule slot by typed id; Time is only set when staff
// accept the booking.
type Appointment struct {
	ID         AppointmentID     `json:"id" gorm:"primaryKey"`
	PatientID  UserID            `json:"patient_id"`
	ServiceID  ServiceID         `json:"service_id"`
	ScheduleID ScheduleID        `json:"schedule_id"`
	Time       string            `json:"time"`
	Amount     float64           `json:"amount" gorm:"default:200"`
	Method     string            `json:"method" gorm:"default:GCash"`
	Proof      string            `json:"proof"`
	Status     AppointmentStatus `json:"status"`
	Created    string            `json:"created"`
	Updated    string            `json:"updated"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Amount == 0 {
		a.Amount = 200
	}
	if a.Method == "" {
		a.Method = "GCash"
	}
	now := utils.ManilaNow()
	if a.Created == "" {
		a.Created = now
	}
	a.Updated = now
	return nil
}

// CanTransition validates a status change. Pending bookings may be
// accepted or rejected. Re-accepting an accepted booking is allowed so
// staff can correct the assigned time; the status stays accepted.
// Rejected is terminal.
func (a *Appointment) CanTransition(next AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if next != StatusAccepted && next != StatusRejected {
			return fmt.Errorf("invalid transition from pending to %s", next)
		}
	case StatusAccepted:
		if next != StatusAccepted {
			return fmt.Errorf("invalid transition from accepted to %s", next)
		}
	case StatusRejected:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	default:
		return fmt.Errorf("unknown status %s", a.Status)
	}
	return nil
}

// UpdateStatus applies a validated status change and persists the record.
func (a *Appointment) UpdateStatus(tx *gorm.DB, next AppointmentStatus) error {
	if err := a.CanTransition(next); err != nil {
		return err
	}
	a.Status = next
	a.Updated = utils.ManilaNow()
	return tx.Save(a).Error
}
