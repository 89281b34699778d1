package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/cache"
	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/models"
	"github.com/camilon-dental/clinic-api/utils"
)

// GetAllSchedules returns every slot. The booking UI filters the list
// with IsBookable; closed or full slots stay visible to admins.
func GetAllSchedules(c *fiber.Ctx) error {
	var schedules []models.Schedule
	if cache.Lookup(cache.KeySchedules, &schedules) {
		return c.JSON(schedules)
	}

	if err := db.DB.Order("date ASC").Find(&schedules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedules",
			Error:   err.Error(),
		})
	}

	cache.Put(cache.KeySchedules, schedules)
	return c.JSON(schedules)
}

// GetSchedule returns a single slot by id.
func GetSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	var schedule models.Schedule
	if err := db.DB.First(&schedule, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Schedule not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(schedule)
}

// CreateSchedule opens a new bookable slot.
func CreateSchedule(c *fiber.Ctx) error {
	type ScheduleInput struct {
		Date    string `json:"date"`
		Maximum int    `json:"maximum"`
	}

	input := new(ScheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date must be in YYYY-MM-DD format",
		})
	}
	if input.Maximum <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maximum must be greater than zero",
		})
	}

	schedule := models.Schedule{
		Date:    input.Date,
		Maximum: input.Maximum,
		Status:  true,
	}
	if err := db.DB.Create(&schedule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create schedule",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeySchedules)
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// UpdateSchedule edits a slot's date, capacity or open flag.
func UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	type ScheduleInput struct {
		Date    string `json:"date"`
		Maximum int    `json:"maximum"`
		Status  *bool  `json:"status"`
	}
	input := new(ScheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	updates := map[string]interface{}{"updated": utils.ManilaNow()}
	if input.Date != "" {
		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Date must be in YYYY-MM-DD format",
			})
		}
		updates["date"] = input.Date
	}
	if input.Maximum > 0 {
		updates["maximum"] = input.Maximum
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if err := db.DB.Model(&models.Schedule{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update schedule",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeySchedules)
	return c.SendString("request success.")
}

// DeleteSchedule removes a slot. Appointments referencing it keep their
// schedule id; the reference simply dangles, as it always has.
func DeleteSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Schedule{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete schedule",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeySchedules)
	return c.SendString("request success.")
}
