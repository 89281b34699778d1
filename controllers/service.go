package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilon-dental/clinic-api/cache"
	"github.com/camilon-dental/clinic-api/db"
	"github.com/camilon-dental/clinic-api/models"
	"github.com/camilon-dental/clinic-api/utils"
)

func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if cache.Lookup(cache.KeyServices, &services) {
		return c.JSON(services)
	}

	if err := db.DB.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}

	cache.Put(cache.KeyServices, services)
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if service.Name == "" || service.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive price are required",
		})
	}

	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeyServices)
	return c.Status(fiber.StatusCreated).JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	type ServiceInput struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	updates := map[string]interface{}{"updated": utils.ManilaNow()}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Price > 0 {
		updates["price"] = input.Price
	}

	if err := db.DB.Model(&models.Service{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeyServices)
	return c.SendString("request success.")
}

func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Service{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(cache.KeyServices)
	return c.SendString("request success.")
}
