package controllers

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/mail"
	"github.com/camilon-dental/clinic-api/models"
)

// setupMockDB swaps the shared handle for a sqlmock-backed one and
// restores it when the test ends.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	old := db.DB
	db.DB = gdb
	t.Cleanup(func() { db.DB = old })
	return mock
}

// bookingApp mounts CreateAppointment behind a stand-in for the JWT
// middleware so validation paths can be exercised without a database.
func bookingApp(authenticated bool) *fiber.App {
	app := fiber.New()
	app.Post("/appointments", func(c *fiber.Ctx) error {
		if authenticated {
			c.Locals("userID", models.UserID(7))
		}
		return CreateAppointment(c)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestCreateAppointmentRequiresAuth(t *testing.T) {
	status, _ := postJSON(t, bookingApp(false), "/appointments", `{"schedule_id":1,"proof":"https://example.com/p.png"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCreateAppointmentRequiresSchedule(t *testing.T) {
	status, body := postJSON(t, bookingApp(true), "/appointments", `{"proof":"https://example.com/p.png"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "select your schedule")
}

func TestCreateAppointmentRequiresProof(t *testing.T) {
	status, body := postJSON(t, bookingApp(true), "/appointments", `{"schedule_id":3}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Proof of payment is required")
}

func TestCreateAppointmentRollsBackWhenScheduleFull(t *testing.T) {
	mock := setupMockDB(t)

	// The appointment insert succeeds, then the locked schedule turns out
	// to be at capacity. The whole transaction must roll back, and the
	// patient's demographics must never be written.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "patients", "maximum", "status"}).
			AddRow(3, "2026-09-01", []byte("[4]"), 1, true))
	mock.ExpectRollback()

	status, body := postJSON(t, bookingApp(true), "/appointments",
		`{"schedule_id":3,"proof":"https://example.com/p.png"}`)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, body, "no longer available")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptAppointmentAbortsWhenEmailFails(t *testing.T) {
	mock := setupMockDB(t)

	old := mail.Default
	mail.Default = &mail.Recorder{Err: errors.New("provider down")}
	defer func() { mail.Default = old }()

	mock.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "service_id", "schedule_id", "status"}).
			AddRow(5, 9, 2, 3, "pending"))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(9, "patient@example.com"))
	mock.ExpectQuery(`SELECT (.+) FROM "schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "patients", "maximum", "status"}).
			AddRow(3, "2026-09-01", []byte("[9]"), 5, true))
	mock.ExpectQuery(`SELECT (.+) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(2, "Cleaning", 200))

	app := fiber.New()
	app.Patch("/appointments/:id/accept", AcceptAppointment)

	req := httptest.NewRequest("PATCH", "/appointments/5/accept", strings.NewReader(`{"time":"10:30"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "request failed.", string(data))
	// No BEGIN or status UPDATE may have been issued after the failed send.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendConfirmationContent(t *testing.T) {
	old := mail.Default
	rec := &mail.Recorder{}
	mail.Default = rec
	defer func() { mail.Default = old }()

	appointment := models.Appointment{ID: 1, PatientID: 9}
	user := models.User{ID: 9, Email: "patient@example.com"}
	schedule := models.Schedule{Date: "2026-09-01", Patients: models.PatientList{4, 9, 12}}
	service := models.Service{Name: "Tooth Extraction", Price: 200}

	require.NoError(t, sendConfirmation(&appointment, &user, &schedule, &service, "10:30"))
	require.Len(t, rec.Messages, 1)

	msg := rec.Messages[0]
	assert.Equal(t, "patient@example.com", msg.To)
	assert.Equal(t, mail.ConfirmationSubject, msg.Subject)
	assert.Contains(t, msg.HTML, "Patient Number: 1")
	assert.Contains(t, msg.HTML, "200 Pesos")
	assert.Contains(t, msg.HTML, "2026-09-01")
	assert.Contains(t, msg.HTML, "10:30")
}

func TestSendConfirmationPropagatesFailure(t *testing.T) {
	old := mail.Default
	mail.Default = &mail.Recorder{Err: errors.New("provider down")}
	defer func() { mail.Default = old }()

	appointment := models.Appointment{ID: 1, PatientID: 9}
	user := models.User{ID: 9, Email: "patient@example.com"}
	schedule := models.Schedule{Date: "2026-09-01", Patients: models.PatientList{9}}
	service := models.Service{Name: "Cleaning", Price: 500}

	assert.Error(t, sendConfirmation(&appointment, &user, &schedule, &service, "10:30"))
}

func TestDeleteAppointmentIsAStub(t *testing.T) {
	app := fiber.New()
	app.Delete("/appointments/:id", DeleteAppointment)

	req := httptest.NewRequest("DELETE", "/appointments/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "request success.", string(data))
}
