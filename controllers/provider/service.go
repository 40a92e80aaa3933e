package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// loadOwnedService walks Service → Provider → User and compares against the
// caller. Admins bypass the ownership check.
func loadOwnedService(c *fiber.Ctx, serviceID interface{}) (*models.Service, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fmt.Errorf("user ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("service not found")
	}

	if role == models.RoleAdmin {
		return &service, 0, nil
	}

	var owner models.Provider
	if err := db.DB.First(&owner, service.ProviderID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("provider not found")
	}
	if owner.UserID != userID {
		return nil, fiber.StatusForbidden, fmt.Errorf("you don't own this service")
	}

	return &service, 0, nil
}

type serviceInput struct {
	ServiceID        string             `json:"service_id"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	Kind             models.ServiceKind `json:"kind"`
	LocationID       uint               `json:"location_id"`
	FacilityTypeIDs  []uint             `json:"facility_type_ids"`
	PriceCategoryIDs []uint             `json:"price_category_ids"`
	SuitabilityIDs   []uint             `json:"suitability_ids"`
}

// CreateService creates a service owned by the logged-in provider.
func CreateService(c *fiber.Ctx) error {
	prov, err := currentProvider(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	input := new(serviceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	v := utils.Validator{}
	v.Require("name", input.Name)
	if !models.ValidServiceKind(input.Kind) {
		v.Add("kind", "must be hotel, restaurant or coffee")
	}
	if input.LocationID == 0 {
		v.Add("location_id", "is required")
	}
	if v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	var location models.Location
	if err := db.DB.First(&location, input.LocationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}

	businessID := input.ServiceID
	if businessID == "" {
		businessID = utils.GenerateBusinessID("SVC")
	}
	var existing models.Service
	if db.DB.Where("service_id = ?", businessID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Service with this service_id already exists",
		})
	}

	service := models.Service{
		ServiceID:   businessID,
		Name:        input.Name,
		Description: input.Description,
		Kind:        input.Kind,
		ProviderID:  prov.ID,
		LocationID:  input.LocationID,
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	if err := replaceCatalogRefs(&service, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to attach catalog references",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// replaceCatalogRefs swaps the m2m associations for the given ID lists.
func replaceCatalogRefs(service *models.Service, input *serviceInput) error {
	if input.FacilityTypeIDs != nil {
		var facilities []models.FacilityType
		if err := db.DB.Find(&facilities, input.FacilityTypeIDs).Error; err != nil {
			return err
		}
		if err := db.DB.Model(service).Association("FacilityTypes").Replace(facilities); err != nil {
			return err
		}
	}
	if input.PriceCategoryIDs != nil {
		var categories []models.PriceCategory
		if err := db.DB.Find(&categories, input.PriceCategoryIDs).Error; err != nil {
			return err
		}
		if err := db.DB.Model(service).Association("PriceCategories").Replace(categories); err != nil {
			return err
		}
	}
	if input.SuitabilityIDs != nil {
		var suitabilities []models.Suitability
		if err := db.DB.Find(&suitabilities, input.SuitabilityIDs).Error; err != nil {
			return err
		}
		if err := db.DB.Model(service).Association("Suitabilities").Replace(suitabilities); err != nil {
			return err
		}
	}
	return nil
}

// UpdateService updates fields and catalog references on an owned service.
func UpdateService(c *fiber.Ctx) error {
	service, status, err := loadOwnedService(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	input := new(serviceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updateMap := make(map[string]interface{})
	if input.Name != "" {
		updateMap["name"] = input.Name
	}
	if input.Description != "" {
		updateMap["description"] = input.Description
	}
	if input.LocationID != 0 {
		var location models.Location
		if err := db.DB.First(&location, input.LocationID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		updateMap["location_id"] = input.LocationID
	}
	// Kind is fixed at creation: the extension record depends on it

	if len(updateMap) > 0 {
		if err := db.DB.Model(service).Updates(updateMap).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update service",
			})
		}
	}

	if err := replaceCatalogRefs(service, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update catalog references",
		})
	}

	return c.JSON(service)
}

// DeleteService removes an owned service.
func DeleteService(c *fiber.Ctx) error {
	service, status, err := loadOwnedService(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	db.DB.Delete(service)
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadServiceImage stores a cover image in Cloudinary and records its URL.
func UploadServiceImage(c *fiber.Ctx) error {
	service, status, err := loadOwnedService(c, c.Params("id"))
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

	publicID := fmt.Sprintf("service_%d_cover", service.ID)
	secureURL, err := utils.UploadToCloudinary(f, publicID, "service_images")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
	}

	if err := db.DB.Model(service).Update("image_url", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save image URL"})
	}

	return c.JSON(fiber.Map{"image_url": secureURL})
}
