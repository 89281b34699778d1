package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/camilon-dental/clinic-api/utils"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleClosed   = errors.New("schedule is closed")
	ErrScheduleFull     = errors.New("schedule is fully booked")
)

// PatientList is the ordered list of patient ids booked into a schedule
// slot, stored as a JSONB column. The order is meaningful: a patient's
// index is their queue number for the day.
type PatientList []UserID

// Value implements the driver.Valuer interface
func (p PatientList) Value() (driver.Value, error) {
	if p == nil {
		p = PatientList{}
	}
	jsonData, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (p *PatientList) Scan(value interface{}) error {
	if value == nil {
		*p = PatientList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal PatientList: unsupported type %T", value)
	}

	return json.Unmarshal(data, p)
}

// Schedule is a bookable calendar slot. Patients holds the capacity
// ledger: len(Patients) <= Maximum must hold after every booking.
type Schedule struct {
	ID        ScheduleID  `json:"id" gorm:"primaryKey"`
	Date      string      `json:"date"` // "YYYY-MM-DD"
	Patients  PatientList `json:"patients" gorm:"type:jsonb;default:'[]'"`
	Maximum   int         `json:"maximum"`
	Status    bool        `json:"status" gorm:"default:true"`
	Created   string      `json:"created"`
	Updated   string      `json:"updated"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.Patients == nil {
		s.Patients = PatientList{}
	}
	now := utils.ManilaNow()
	if s.Created == "" {
		s.Created = now
	}
	s.Updated = now
	return nil
}

// IsBookable reports whether the slot can accept one more patient.
func (s *Schedule) IsBookable() bool {
	return s.canAccept() == nil
}

func (s *Schedule) canAccept() error {
	if !s.Status {
		return ErrScheduleClosed
	}
	if len(s.Patients) >= s.Maximum {
		return ErrScheduleFull
	}
	return nil
}

// Book appends patientID to the slot's patient list within the caller's
// transaction. The row is re-read under FOR UPDATE so that concurrent
// bookings serialize and the capacity check holds: at most Maximum
// patients can ever be appended. Duplicate ids are allowed, the same
// patient may book twice.
func (s *Schedule) Book(tx *gorm.DB, patientID UserID) error {
	var locked Schedule
	err := tx.Raw(`
		SELECT *
		FROM schedules
		WHERE id = ?
		FOR UPDATE
	`, s.ID).Scan(&locked).Error
	if err != nil {
		return err
	}
	if locked.ID == 0 {
		return ErrScheduleNotFound
	}
	if err := locked.canAccept(); err != nil {
		return err
	}

	locked.Patients = append(locked.Patients, patientID)
	err = tx.Model(&Schedule{}).Where("id = ?", locked.ID).
		Updates(map[string]interface{}{
			"patients": locked.Patients,
			"updated":  utils.ManilaNow(),
		}).Error
	if err != nil {
		return err
	}

	s.Patients = locked.Patients
	return nil
}

// QueuePosition returns the 0-based index of patientID in the patient
// list. When the same patient appears more than once the last occurrence
// wins, matching what the confirmation email has always reported.
func (s *Schedule) QueuePosition(patientID UserID) int {
	number := 0
	for i, p := range s.Patients {
		if p == patientID {
			number = i
		}
	}
	return number
}
