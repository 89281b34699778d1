package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestIsBookable(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		want     bool
	}{
		{"open with space", Schedule{Status: true, Maximum: 2, Patients: PatientList{1}}, true},
		{"open and empty", Schedule{Status: true, Maximum: 1, Patients: PatientList{}}, true},
		{"full", Schedule{Status: true, Maximum: 2, Patients: PatientList{1, 2}}, false},
		{"over capacity", Schedule{Status: true, Maximum: 1, Patients: PatientList{1, 2}}, false},
		{"closed", Schedule{Status: false, Maximum: 5, Patients: PatientList{}}, false},
		{"zero capacity", Schedule{Status: true, Maximum: 0, Patients: PatientList{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.schedule.IsBookable())
		})
	}
}

func TestPatientListRoundTrip(t *testing.T) {
	list := PatientList{4, 9, 7}

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[4,9,7]", value)

	var decoded PatientList
	require.NoError(t, decoded.Scan([]byte("[4,9,7]")))
	assert.Equal(t, list, decoded)

	// Postgres drivers hand back jsonb as string or []byte depending on config.
	var fromString PatientList
	require.NoError(t, fromString.Scan("[1]"))
	assert.Equal(t, PatientList{1}, fromString)

	var fromNil PatientList
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	assert.Error(t, decoded.Scan(42))
}

func TestPatientListValueNil(t *testing.T) {
	var list PatientList
	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestQueuePosition(t *testing.T) {
	s := Schedule{Patients: PatientList{10, 20, 10, 30}}

	assert.Equal(t, 1, s.QueuePosition(20))
	assert.Equal(t, 3, s.QueuePosition(30))
	// Duplicate bookings report the last occurrence.
	assert.Equal(t, 2, s.QueuePosition(10))
	// Unknown patients fall back to the front of the queue.
	assert.Equal(t, 0, s.QueuePosition(99))
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestBookAppendsUnderLock(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "patients", "maximum", "status"}).
			AddRow(1, "2026-09-01", []byte("[4,9]"), 3, true))
	mock.ExpectExec(`UPDATE "schedules"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := Schedule{ID: 1}
	require.NoError(t, s.Book(gdb, 7))
	assert.Equal(t, PatientList{4, 9, 7}, s.Patients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRefusesFullSchedule(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "patients", "maximum", "status"}).
			AddRow(1, "2026-09-01", []byte("[4,9]"), 2, true))

	s := Schedule{ID: 1}
	assert.ErrorIs(t, s.Book(gdb, 7), ErrScheduleFull)
	// No UPDATE may have been issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRefusesClosedSchedule(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "patients", "maximum", "status"}).
			AddRow(1, "2026-09-01", []byte("[]"), 10, false))

	s := Schedule{ID: 1}
	assert.ErrorIs(t, s.Book(gdb, 7), ErrScheduleClosed)
}

func TestBookMissingSchedule(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "patients", "maximum", "status"}))

	s := Schedule{ID: 42}
	assert.ErrorIs(t, s.Book(gdb, 7), ErrScheduleNotFound)
}
