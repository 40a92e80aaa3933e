package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// loadOwnedHotel walks Hotel → Service → Provider → User with admin bypass.
func loadOwnedHotel(c *fiber.Ctx, hotelID interface{}) (*models.Hotel, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fmt.Errorf("user ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var hotel models.Hotel
	if err := db.DB.First(&hotel, hotelID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("hotel not found")
	}

	if role == models.RoleAdmin {
		return &hotel, 0, nil
	}

	var service models.Service
	if err := db.DB.First(&service, hotel.ServiceID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("service not found")
	}
	var owner models.Provider
	if err := db.DB.First(&owner, service.ProviderID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("provider not found")
	}
	if owner.UserID != userID {
		return nil, fiber.StatusForbidden, fmt.Errorf("you don't own this hotel")
	}

	return &hotel, 0, nil
}

type hotelInput struct {
	ServiceID   uint `json:"service_id"`
	HotelTypeID uint `json:"hotel_type_id"`
	StarRating  int  `json:"star_rating"`
}

// CreateHotel attaches a hotel extension to an owned service of kind "hotel".
func CreateHotel(c *fiber.Ctx) error {
	input := new(hotelInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	service, status, err := loadOwnedService(c, input.ServiceID)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	if service.Kind != models.KindHotel {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service is not of kind hotel",
		})
	}

	v := utils.Validator{}
	v.IntRange("star_rating", input.StarRating, 1, 5)
	if input.HotelTypeID == 0 {
		v.Add("hotel_type_id", "is required")
	}
	if v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	var hotelType models.HotelType
	if err := db.DB.First(&hotelType, input.HotelTypeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel type not found"})
	}

	var existing models.Hotel
	if db.DB.Where("service_id = ?", service.ID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Service already has a hotel record",
		})
	}

	hotel := models.Hotel{
		ServiceID:   service.ID,
		HotelTypeID: input.HotelTypeID,
		StarRating:  input.StarRating,
	}
	if err := db.DB.Create(&hotel).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create hotel",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(hotel)
}

func GetHotel(c *fiber.Ctx) error {
	var hotel models.Hotel
	if err := db.DB.Preload("HotelType").Preload("Rooms").Preload("Service").
		First(&hotel, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}
	return c.JSON(hotel)
}

func UpdateHotel(c *fiber.Ctx) error {
	hotel, status, err := loadOwnedHotel(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	input := new(hotelInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updateMap := make(map[string]interface{})
	if input.StarRating != 0 {
		v := utils.Validator{}
		v.IntRange("star_rating", input.StarRating, 1, 5)
		if v.Failed() {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
				Error:  "Validation failed",
				Fields: v.Errors(),
			})
		}
		updateMap["star_rating"] = input.StarRating
	}
	if input.HotelTypeID != 0 {
		var hotelType models.HotelType
		if err := db.DB.First(&hotelType, input.HotelTypeID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel type not found"})
		}
		updateMap["hotel_type_id"] = input.HotelTypeID
	}

	if len(updateMap) > 0 {
		if err := db.DB.Model(hotel).Updates(updateMap).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update hotel",
			})
		}
	}

	return c.JSON(hotel)
}

func DeleteHotel(c *fiber.Ctx) error {
	hotel, status, err := loadOwnedHotel(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	db.DB.Delete(hotel)
	return c.SendStatus(fiber.StatusNoContent)
}
