package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// currentProvider resolves the Provider record for the authenticated user.
func currentProvider(c *fiber.Ctx) (*models.Provider, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fmt.Errorf("user ID not found in context")
	}
	var provider models.Provider
	if err := db.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, fmt.Errorf("provider profile not found")
	}
	return &provider, nil
}

// GetProfile returns the provider profile of the logged-in user.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var provider models.Provider
	if err := db.DB.Preload("User").Preload("Services").
		Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider profile not found",
		})
	}

	provider.User.Password = ""
	return c.JSON(provider)
}

// UpdateProfile updates business fields on the provider record.
func UpdateProfile(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// Identity and ownership fields never change through this endpoint
	for _, field := range []string{"id", "ID", "provider_id", "user_id", "user", "logo_url"} {
		delete(updateData, field)
	}

	if len(updateData) > 0 {
		if err := db.DB.Model(provider).Updates(updateData).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update provider profile",
			})
		}
	}

	return c.JSON(provider)
}

// UploadLogo accepts a multipart image, stores it in Cloudinary and records
// the resulting URL on the provider.
func UploadLogo(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No logo file provided"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer f.Close()

	publicID := fmt.Sprintf("provider_%d_logo", provider.ID)
	secureURL, err := utils.UploadToCloudinary(f, publicID, "provider_logos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload logo"})
	}

	if err := db.DB.Model(provider).Update("logo_url", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save logo URL"})
	}

	return c.JSON(fiber.Map{"logo_url": secureURL})
}

// GetMyServices lists the services owned by the logged-in provider.
func GetMyServices(c *fiber.Ctx) error {
	provider, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	var services []models.Service
	if err := db.DB.Preload("Location").
		Where("provider_id = ?", provider.ID).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch services",
		})
	}

	return c.JSON(services)
}
