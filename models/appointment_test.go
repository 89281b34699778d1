package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to accepted", StatusPending, StatusAccepted, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"re-accept keeps accepted", StatusAccepted, StatusAccepted, true},
		{"accepted to rejected", StatusAccepted, StatusRejected, false},
		{"accepted to pending", StatusAccepted, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusAccepted, false},
		{"rejected stays rejected", StatusRejected, StatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			err := a.CanTransition(tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCanTransitionDoesNotMutate(t *testing.T) {
	a := Appointment{Status: StatusRejected, Time: "10:30", Amount: 200}
	_ = a.CanTransition(StatusAccepted)

	assert.Equal(t, StatusRejected, a.Status)
	assert.Equal(t, "10:30", a.Time)
	assert.Equal(t, float64(200), a.Amount)
}

func TestAppointmentDefaults(t *testing.T) {
	a := Appointment{PatientID: 1, ServiceID: 2, ScheduleID: 3}
	require.NoError(t, a.BeforeCreate(nil))

	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, float64(200), a.Amount)
	assert.Equal(t, "GCash", a.Method)
	assert.NotEmpty(t, a.Created)
	assert.NotEmpty(t, a.Updated)
}

func TestAppointmentDefaultsPreserveExplicitValues(t *testing.T) {
	a := Appointment{Amount: 500, Method: "Cash", Status: StatusAccepted}
	require.NoError(t, a.BeforeCreate(nil))

	assert.Equal(t, StatusAccepted, a.Status)
	assert.Equal(t, float64(500), a.Amount)
	assert.Equal(t, "Cash", a.Method)
}
