package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

func GetAllLocations(c *fiber.Ctx) error {
	var locations []models.Location
	query := db.DB
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if err := query.Find(&locations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(locations)
}

func GetLocation(c *fiber.Ctx) error {
	var location models.Location
	if err := db.DB.First(&location, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}
	return c.JSON(location)
}

func CreateLocation(c *fiber.Ctx) error {
	location := new(models.Location)
	if err := c.BodyParser(location); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	v := utils.Validator{}
	v.Require("city", location.City)
	if v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	if err := db.DB.Create(location).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create location"})
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func UpdateLocation(c *fiber.Ctx) error {
	var location models.Location
	if err := db.DB.First(&location, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	delete(updateData, "id")
	delete(updateData, "ID")

	if len(updateData) > 0 {
		if err := db.DB.Model(&location).Updates(updateData).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update location"})
		}
	}
	return c.JSON(location)
}

func DeleteLocation(c *fiber.Ctx) error {
	var location models.Location
	if db.DB.First(&location, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}
	db.DB.Delete(&location)
	return c.SendStatus(fiber.StatusNoContent)
}
