package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/controllers"
	"github.com/Present111/travel-booking-api/middleware"
	"github.com/Present111/travel-booking-api/models"
)

// SetupCatalogRoutes configures the lookup-type and location routes. Reads
// are public; writes require the admin role.
func SetupCatalogRoutes(app *fiber.App) {
	catalog := app.Group("/api/catalog")

	facility := catalog.Group("/facility-types")
	facility.Get("/", controllers.GetFacilityTypes)
	facility.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateFacilityType)
	facility.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateFacilityType)
	facility.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteFacilityType)

	price := catalog.Group("/price-categories")
	price.Get("/", controllers.GetPriceCategories)
	price.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreatePriceCategory)
	price.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdatePriceCategory)
	price.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeletePriceCategory)

	suitability := catalog.Group("/suitabilities")
	suitability.Get("/", controllers.GetSuitabilities)
	suitability.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateSuitability)
	suitability.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateSuitability)
	suitability.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteSuitability)

	cuisine := catalog.Group("/cuisine-types")
	cuisine.Get("/", controllers.GetCuisineTypes)
	cuisine.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateCuisineType)
	cuisine.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateCuisineType)
	cuisine.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteCuisineType)

	dish := catalog.Group("/dish-types")
	dish.Get("/", controllers.GetDishTypes)
	dish.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateDishType)
	dish.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateDishType)
	dish.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteDishType)

	hotelType := catalog.Group("/hotel-types")
	hotelType.Get("/", controllers.GetHotelTypes)
	hotelType.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateHotelType)
	hotelType.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateHotelType)
	hotelType.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteHotelType)

	restaurantType := catalog.Group("/restaurant-types")
	restaurantType.Get("/", controllers.GetRestaurantTypes)
	restaurantType.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateRestaurantType)
	restaurantType.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateRestaurantType)
	restaurantType.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteRestaurantType)

	locations := app.Group("/api/locations")
	locations.Get("/", controllers.GetAllLocations)
	locations.Get("/:id", controllers.GetLocation)
	locations.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateLocation)
	locations.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.UpdateLocation)
	locations.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteLocation)
}
