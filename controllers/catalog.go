package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
)

// Catalog lookup CRUD. Reads are public, writes are admin-only (enforced in
// the route setup). Each type gets its own handlers; the shapes are
// intentionally identical.

type catalogInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// --- FacilityType ---

func GetFacilityTypes(c *fiber.Ctx) error {
	var items []models.FacilityType
	if err := db.DB.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func CreateFacilityType(c *fiber.Ctx) error {
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	var existing models.FacilityType
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Facility type already exists"})
	}
	item := models.FacilityType{Name: input.Name, Description: input.Description}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create facility type"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateFacilityType(c *fiber.Ctx) error {
	var item models.FacilityType
	if err := db.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Facility type not found"})
	}
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update facility type"})
	}
	return c.JSON(item)
}

func DeleteFacilityType(c *fiber.Ctx) error {
	var item models.FacilityType
	if db.DB.First(&item, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Facility type not found"})
	}
	db.DB.Delete(&item)
	return c.SendStatus(fiber.StatusNoContent)
}

// --- PriceCategory ---

func GetPriceCategories(c *fiber.Ctx) error {
	var items []models.PriceCategory
	if err := db.DB.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func CreatePriceCategory(c *fiber.Ctx) error {
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	var existing models.PriceCategory
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Price category already exists"})
	}
	item := models.PriceCategory{Name: input.Name, Description: input.Description}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create price category"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdatePriceCategory(c *fiber.Ctx) error {
	var item models.PriceCategory
	if err := db.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Price category not found"})
	}
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update price category"})
	}
	return c.JSON(item)
}

func DeletePriceCategory(c *fiber.Ctx) error {
	var item models.PriceCategory
	if db.DB.First(&item, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Price category not found"})
	}
	db.DB.Delete(&item)
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Suitability ---

func GetSuitabilities(c *fiber.Ctx) error {
	var items []models.Suitability
	if err := db.DB.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func CreateSuitability(c *fiber.Ctx) error {
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	var existing models.Suitability
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Suitability already exists"})
	}
	item := models.Suitability{Name: input.Name, Description: input.Description}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create suitability"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateSuitability(c *fiber.Ctx) error {
	var item models.Suitability
	if err := db.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Suitability not found"})
	}
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update suitability"})
	}
	return c.JSON(item)
}

func DeleteSuitability(c *fiber.Ctx) error {
	var item models.Suitability
	if db.DB.First(&item, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Suitability not found"})
	}
	db.DB.Delete(&item)
	return c.SendStatus(fiber.StatusNoContent)
}

// --- CuisineType ---

func GetCuisineTypes(c *fiber.Ctx) error {
	var items []models.CuisineType
	if err := db.DB.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func CreateCuisineType(c *fiber.Ctx) error {
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	var existing models.CuisineType
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cuisine type already exists"})
	}
	item := models.CuisineType{Name: input.Name, Description: input.Description}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create cuisine type"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateCuisineType(c *fiber.Ctx) error {
	var item models.CuisineType
	if err := db.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cuisine type not found"})
	}
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update cuisine type"})
	}
	return c.JSON(item)
}

func DeleteCuisineType(c *fiber.Ctx) error {
	var item models.CuisineType
	if db.DB.First(&item, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cuisine type not found"})
	}
	db.DB.Delete(&item)
	return c.SendStatus(fiber.StatusNoContent)
}

// --- DishType ---

func GetDishTypes(c *fiber.Ctx) error {
	var items []models.DishType
	if err := db.DB.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func CreateDishType(c *fiber.Ctx) error {
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	var existing models.DishType
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Dish type already exists"})
	}
	item := models.DishType{Name: input.Name, Description: input.Description}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create dish type"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateDishType(c *fiber.Ctx) error {
	var item models.DishType
	if err := db.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dish type not found"})
	}
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update dish type"})
	}
	return c.JSON(item)
}

func DeleteDishType(c *fiber.Ctx) error {
	var item models.DishType
	if db.DB.First(&item, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dish type not found"})
	}
	db.DB.Delete(&item)
	return c.SendStatus(fiber.StatusNoContent)
}

// --- HotelType ---

func GetHotelTypes(c *fiber.Ctx) error {
	var items []models.HotelType
	if err := db.DB.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func CreateHotelType(c *fiber.Ctx) error {
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	var existing models.HotelType
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Hotel type already exists"})
	}
	item := models.HotelType{Name: input.Name, Description: input.Description}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create hotel type"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateHotelType(c *fiber.Ctx) error {
	var item models.HotelType
	if err := db.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel type not found"})
	}
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update hotel type"})
	}
	return c.JSON(item)
}

func DeleteHotelType(c *fiber.Ctx) error {
	var item models.HotelType
	if db.DB.First(&item, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel type not found"})
	}
	db.DB.Delete(&item)
	return c.SendStatus(fiber.StatusNoContent)
}

// --- RestaurantType ---

func GetRestaurantTypes(c *fiber.Ctx) error {
	var items []models.RestaurantType
	if err := db.DB.Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

func CreateRestaurantType(c *fiber.Ctx) error {
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	var existing models.RestaurantType
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Restaurant type already exists"})
	}
	item := models.RestaurantType{Name: input.Name, Description: input.Description}
	if err := db.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create restaurant type"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateRestaurantType(c *fiber.Ctx) error {
	var item models.RestaurantType
	if err := db.DB.First(&item, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant type not found"})
	}
	input := new(catalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update restaurant type"})
	}
	return c.JSON(item)
}

func DeleteRestaurantType(c *fiber.Ctx) error {
	var item models.RestaurantType
	if db.DB.First(&item, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant type not found"})
	}
	db.DB.Delete(&item)
	return c.SendStatus(fiber.StatusNoContent)
}
