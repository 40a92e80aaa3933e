package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/redis"
	"github.com/Present111/travel-booking-api/utils"
)

const featuredCacheKey = "services:featured"

// GetAllServices returns services, filterable by kind, location and price
// category, paginated.
func GetAllServices(c *fiber.Ctx) error {
	page := 1
	if parsedPage := c.QueryInt("page"); parsedPage > 0 {
		page = parsedPage
	}
	limit := 10
	if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
		limit = parsedLimit
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Service{}).
		Preload("Location").
		Preload("FacilityTypes").
		Preload("PriceCategories").
		Preload("Suitabilities")

	if kind := c.Query("kind"); kind != "" {
		if !models.ValidServiceKind(models.ServiceKind(kind)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Kind must be hotel, restaurant or coffee",
			})
		}
		query = query.Where("kind = ?", kind)
	}
	if locationID := c.Query("location_id"); locationID != "" {
		query = query.Where("location_id = ?", locationID)
	}
	if categoryID := c.Query("price_category_id"); categoryID != "" {
		query = query.
			Joins("JOIN service_price_categories ON service_price_categories.service_id = services.id").
			Where("service_price_categories.price_category_id = ?", categoryID)
	}

	var count int64
	query.Count(&count)

	var services []models.Service
	if err := query.Limit(limit).Offset(offset).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch services",
		})
	}

	return c.JSON(fiber.Map{
		"services": services,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    utils.PageCount(count, limit),
	})
}

// GetService returns one service with its relations and kind extension.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.
		Preload("Provider").
		Preload("Location").
		Preload("FacilityTypes").
		Preload("PriceCategories").
		Preload("Suitabilities").
		First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	service.Provider.User.Password = ""

	response := fiber.Map{"service": service}

	switch service.Kind {
	case models.KindHotel:
		var hotel models.Hotel
		if db.DB.Preload("HotelType").Preload("Rooms").
			Where("service_id = ?", service.ID).First(&hotel).RowsAffected > 0 {
			response["hotel"] = hotel
		}
	case models.KindRestaurant:
		var restaurant models.Restaurant
		if db.DB.Preload("RestaurantType").Preload("CuisineTypes").Preload("DishTypes").Preload("Tables").
			Where("service_id = ?", service.ID).First(&restaurant).RowsAffected > 0 {
			response["restaurant"] = restaurant
		}
	case models.KindCoffee:
		var coffee models.Coffee
		if db.DB.Where("service_id = ?", service.ID).First(&coffee).RowsAffected > 0 {
			response["coffee"] = coffee
		}
	}

	return c.JSON(response)
}

// SearchServices searches by service name or city.
func SearchServices(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	searchQuery := fmt.Sprintf("%%%s%%", q)

	var services []models.Service
	if err := db.DB.Preload("Location").
		Joins("LEFT JOIN locations ON services.location_id = locations.id").
		Where("services.name ILIKE ? OR locations.city ILIKE ?", searchQuery, searchQuery).
		Group("services.id").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search services",
		})
	}

	return c.JSON(fiber.Map{
		"services": services,
		"count":    len(services),
	})
}

// GetFeaturedServices returns the top-rated services, cached in Redis for
// ten minutes.
func GetFeaturedServices(c *fiber.Ctx) error {
	if cached := redis.CacheGet(featuredCacheKey); cached != nil {
		var services []models.Service
		if err := json.Unmarshal(cached, &services); err == nil {
			return c.JSON(fiber.Map{"services": services, "cached": true})
		}
	}

	var services []models.Service
	if err := db.DB.Preload("Location").
		Where("review_count > 0").
		Order("avg_rating desc, review_count desc").
		Limit(10).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch featured services",
		})
	}

	if payload, err := json.Marshal(services); err == nil {
		redis.CacheSet(featuredCacheKey, payload, 10*time.Minute)
	}

	return c.JSON(fiber.Map{"services": services})
}
