package models

// Typed identifiers for cross-entity references. Appointments reference
// users, schedules and services by id only, so distinct types keep the
// references from being mixed up.
type (
	UserID        uint
	ScheduleID    uint
	ServiceID     uint
	AppointmentID uint
)
