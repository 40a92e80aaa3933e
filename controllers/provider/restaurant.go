package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// loadOwnedRestaurant walks Restaurant → Service → Provider → User with
// admin bypass.
func loadOwnedRestaurant(c *fiber.Ctx, restaurantID interface{}) (*models.Restaurant, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fmt.Errorf("user ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant, restaurantID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("restaurant not found")
	}

	if role == models.RoleAdmin {
		return &restaurant, 0, nil
	}

	var service models.Service
	if err := db.DB.First(&service, restaurant.ServiceID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("service not found")
	}
	var owner models.Provider
	if err := db.DB.First(&owner, service.ProviderID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("provider not found")
	}
	if owner.UserID != userID {
		return nil, fiber.StatusForbidden, fmt.Errorf("you don't own this restaurant")
	}

	return &restaurant, 0, nil
}

type restaurantInput struct {
	ServiceID        uint   `json:"service_id"`
	RestaurantTypeID uint   `json:"restaurant_type_id"`
	CuisineTypeIDs   []uint `json:"cuisine_type_ids"`
	DishTypeIDs      []uint `json:"dish_type_ids"`
}

// CreateRestaurant attaches a restaurant extension to an owned service of
// kind "restaurant".
func CreateRestaurant(c *fiber.Ctx) error {
	input := new(restaurantInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	service, status, err := loadOwnedService(c, input.ServiceID)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	if service.Kind != models.KindRestaurant {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service is not of kind restaurant",
		})
	}

	v := utils.Validator{}
	if input.RestaurantTypeID == 0 {
		v.Add("restaurant_type_id", "is required")
	}
	if v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	var restaurantType models.RestaurantType
	if err := db.DB.First(&restaurantType, input.RestaurantTypeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant type not found"})
	}

	var existing models.Restaurant
	if db.DB.Where("service_id = ?", service.ID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Service already has a restaurant record",
		})
	}

	restaurant := models.Restaurant{
		ServiceID:        service.ID,
		RestaurantTypeID: input.RestaurantTypeID,
	}
	if err := db.DB.Create(&restaurant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create restaurant",
		})
	}

	if err := replaceRestaurantRefs(&restaurant, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to attach catalog references",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(restaurant)
}

func replaceRestaurantRefs(restaurant *models.Restaurant, input *restaurantInput) error {
	if input.CuisineTypeIDs != nil {
		var cuisines []models.CuisineType
		if err := db.DB.Find(&cuisines, input.CuisineTypeIDs).Error; err != nil {
			return err
		}
		if err := db.DB.Model(restaurant).Association("CuisineTypes").Replace(cuisines); err != nil {
			return err
		}
	}
	if input.DishTypeIDs != nil {
		var dishes []models.DishType
		if err := db.DB.Find(&dishes, input.DishTypeIDs).Error; err != nil {
			return err
		}
		if err := db.DB.Model(restaurant).Association("DishTypes").Replace(dishes); err != nil {
			return err
		}
	}
	return nil
}

func GetRestaurant(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := db.DB.Preload("RestaurantType").Preload("CuisineTypes").
		Preload("DishTypes").Preload("Tables").Preload("Service").
		First(&restaurant, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}
	return c.JSON(restaurant)
}

func UpdateRestaurant(c *fiber.Ctx) error {
	restaurant, status, err := loadOwnedRestaurant(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	input := new(restaurantInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if input.RestaurantTypeID != 0 {
		var restaurantType models.RestaurantType
		if err := db.DB.First(&restaurantType, input.RestaurantTypeID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant type not found"})
		}
		if err := db.DB.Model(restaurant).Update("restaurant_type_id", input.RestaurantTypeID).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update restaurant",
			})
		}
	}

	if err := replaceRestaurantRefs(restaurant, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update catalog references",
		})
	}

	return c.JSON(restaurant)
}

func DeleteRestaurant(c *fiber.Ctx) error {
	restaurant, status, err := loadOwnedRestaurant(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	db.DB.Delete(restaurant)
	return c.SendStatus(fiber.StatusNoContent)
}
