package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// loadOwnedCoffee walks Coffee → Service → Provider → User with admin bypass.
func loadOwnedCoffee(c *fiber.Ctx, coffeeID interface{}) (*models.Coffee, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fmt.Errorf("user ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var coffee models.Coffee
	if err := db.DB.First(&coffee, coffeeID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("coffee not found")
	}

	if role == models.RoleAdmin {
		return &coffee, 0, nil
	}

	var service models.Service
	if err := db.DB.First(&service, coffee.ServiceID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("service not found")
	}
	var owner models.Provider
	if err := db.DB.First(&owner, service.ProviderID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("provider not found")
	}
	if owner.UserID != userID {
		return nil, fiber.StatusForbidden, fmt.Errorf("you don't own this coffee")
	}

	return &coffee, 0, nil
}

type coffeeInput struct {
	ServiceID uint   `json:"service_id"`
	Style     string `json:"style"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// CreateCoffee attaches a café extension to an owned service of kind "coffee".
func CreateCoffee(c *fiber.Ctx) error {
	input := new(coffeeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	service, status, err := loadOwnedService(c, input.ServiceID)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	if service.Kind != models.KindCoffee {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service is not of kind coffee",
		})
	}

	var existing models.Coffee
	if db.DB.Where("service_id = ?", service.ID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Service already has a coffee record",
		})
	}

	coffee := models.Coffee{
		ServiceID: service.ID,
		Style:     input.Style,
		OpenTime:  input.OpenTime,
		CloseTime: input.CloseTime,
	}
	if err := db.DB.Create(&coffee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create coffee",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(coffee)
}

func GetCoffee(c *fiber.Ctx) error {
	var coffee models.Coffee
	if err := db.DB.Preload("Service").First(&coffee, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coffee not found"})
	}
	return c.JSON(coffee)
}

func UpdateCoffee(c *fiber.Ctx) error {
	coffee, status, err := loadOwnedCoffee(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	input := new(coffeeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updateMap := make(map[string]interface{})
	if input.Style != "" {
		updateMap["style"] = input.Style
	}
	if input.OpenTime != "" {
		updateMap["open_time"] = input.OpenTime
	}
	if input.CloseTime != "" {
		updateMap["close_time"] = input.CloseTime
	}

	if len(updateMap) > 0 {
		if err := db.DB.Model(coffee).Updates(updateMap).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update coffee",
			})
		}
	}

	return c.JSON(coffee)
}

func DeleteCoffee(c *fiber.Ctx) error {
	coffee, status, err := loadOwnedCoffee(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	db.DB.Delete(coffee)
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadMenuImage stores the café menu photo in Cloudinary.
func UploadMenuImage(c *fiber.Ctx) error {
	coffee, status, err := loadOwnedCoffee(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file provided"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer f.Close()

	publicID := fmt.Sprintf("coffee_%d_menu", coffee.ID)
	secureURL, err := utils.UploadToCloudinary(f, publicID, "coffee_menus")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
	}

	if err := db.DB.Model(coffee).Update("menu_image_url", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save image URL"})
	}

	return c.JSON(fiber.Map{"menu_image_url": secureURL})
}
