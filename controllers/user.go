package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/cache"
	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/models"
	"github.com/camilon-dental/clinic-api/utils"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if cache.Lookup(cache.KeyUsers, &users) {
		return c.JSON(users)
	}

	if err := db.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}

	cache.Put(cache.KeyUsers, users)
	return c.JSON(users)
}

func GetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(user)
}

// UpdateUser lets an admin edit a user's identity fields and role.
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	type UserInput struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	input := new(UserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Role != "" && input.Role != models.RoleAdmin && input.Role != models.RolePatient {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown role",
		})
	}

	updates := map[string]interface{}{"updated": utils.ManilaNow()}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Email != "" {
		updates["email"] = input.Email
	}
	if input.Role != "" {
		updates["role"] = input.Role
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update user",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeyUsers)
	return c.SendString("request success.")
}

// DeleteUser removes a patient record. Admin accounts are never deleted.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}
	if user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin accounts cannot be deleted",
		})
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete user",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeyUsers)
	return c.SendString("request success.")
}

// GetAllAccounts lists identity-provider account links.
func GetAllAccounts(c *fiber.Ctx) error {
	var accounts []models.Account
	if err := db.DB.Find(&accounts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch accounts",
			Error:   err.Error(),
		})
	}
	return c.JSON(accounts)
}
