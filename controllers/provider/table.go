package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// loadOwnedTable walks Table → Restaurant → Service → Provider → User with
// admin bypass.
func loadOwnedTable(c *fiber.Ctx, tableID interface{}) (*models.Table, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fmt.Errorf("user ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var table models.Table
	if err := db.DB.First(&table, tableID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("table not found")
	}

	if role == models.RoleAdmin {
		return &table, 0, nil
	}

	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant, table.RestaurantID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("restaurant not found")
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
		return nil, fiber.StatusForbidden, fmt.Errorf("you don't own this table")
	}

	return &table, 0, nil
}

type tableInput struct {
	TableID      string  `json:"table_id"`
	RestaurantID uint    `json:"restaurant_id"`
	Name         string  `json:"name"`
	Seats        int     `json:"seats"`
	MinCharge    float64 `json:"min_charge"`
	Available    *bool   `json:"available"`
}

// CreateTable adds a table to an owned restaurant.
func CreateTable(c *fiber.Ctx) error {
	input := new(tableInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	restaurant, status, err := loadOwnedRestaurant(c, input.RestaurantID)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	v := utils.Validator{}
	v.Require("name", input.Name)
	v.Positive("seats", input.Seats)
	v.NonNegative("min_charge", input.MinCharge)
	if v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	businessID := input.TableID
	if businessID == "" {
		businessID = utils.GenerateBusinessID("TBL")
	}
	var existing models.Table
	if db.DB.Where("table_id = ?", businessID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Table with this table_id already exists",
		})
	}

	table := models.Table{
		TableID:      businessID,
		RestaurantID: restaurant.ID,
		Name:         input.Name,
		Seats:        input.Seats,
		MinCharge:    input.MinCharge,
		Available:    true,
	}
	if input.Available != nil {
		table.Available = *input.Available
	}
	if err := db.DB.Create(&table).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create table",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(table)
}

func GetTable(c *fiber.Ctx) error {
	var table models.Table
	if err := db.DB.Preload("Restaurant").First(&table, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Table not found"})
	}
	return c.JSON(table)
}

func GetRestaurantTables(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}

	var tables []models.Table
	if err := db.DB.Where("restaurant_id = ?", restaurant.ID).Find(&tables).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch tables",
		})
	}
	return c.JSON(tables)
}

func UpdateTable(c *fiber.Ctx) error {
	table, status, err := loadOwnedTable(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	input := new(tableInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updateMap := make(map[string]interface{})
	v := utils.Validator{}
	if input.Name != "" {
		updateMap["name"] = input.Name
	}
	if input.Seats != 0 {
		v.Positive("seats", input.Seats)
		updateMap["seats"] = input.Seats
	}
	if input.MinCharge != 0 {
		v.NonNegative("min_charge", input.MinCharge)
		updateMap["min_charge"] = input.MinCharge
	}
	if input.Available != nil {
		updateMap["available"] = *input.Available
	}
	if v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	if len(updateMap) > 0 {
		if err := db.DB.Model(table).Updates(updateMap).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update table",
			})
		}
	}

	return c.JSON(table)
}

func DeleteTable(c *fiber.Ctx) error {
	table, status, err := loadOwnedTable(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	db.DB.Delete(table)
	return c.SendStatus(fiber.StatusNoContent)
}
