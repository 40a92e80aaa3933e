package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/controllers/provider"
	"github.com/Present111/travel-booking-api/middleware"
	"github.com/Present111/travel-booking-api/models"
)

// SetupProviderRoutes configures the provider profile, inventory
// (hotels/rooms/restaurants/tables/coffees) and dashboard routes.
func SetupProviderRoutes(app *fiber.App) {
	providerGroup := app.Group("/api/providers",
		middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
	providerGroup.Get("/me", provider.GetProfile)
	providerGroup.Patch("/me", provider.UpdateProfile)
	providerGroup.Post("/me/logo", provider.UploadLogo)
	providerGroup.Get("/me/services", provider.GetMyServices)

	hotels := app.Group("/api/hotels")
	hotels.Get("/:id", provider.GetHotel)
	hotels.Get("/:id/rooms", provider.GetHotelRooms)
	hotels.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.CreateHotel)
	hotels.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UpdateHotel)
	hotels.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.DeleteHotel)

	rooms := app.Group("/api/rooms")
	rooms.Get("/:id", provider.GetRoom)
	rooms.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.CreateRoom)
	rooms.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UpdateRoom)
	rooms.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.DeleteRoom)
	rooms.Post("/:id/image", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UploadRoomImage)

	restaurants := app.Group("/api/restaurants")
	restaurants.Get("/:id", provider.GetRestaurant)
	restaurants.Get("/:id/tables", provider.GetRestaurantTables)
	restaurants.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.CreateRestaurant)
	restaurants.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UpdateRestaurant)
	restaurants.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.DeleteRestaurant)

	tables := app.Group("/api/tables")
	tables.Get("/:id", provider.GetTable)
	tables.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.CreateTable)
	tables.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UpdateTable)
	tables.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.DeleteTable)

	coffees := app.Group("/api/coffees")
	coffees.Get("/:id", provider.GetCoffee)
	coffees.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.CreateCoffee)
	coffees.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UpdateCoffee)
	coffees.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.DeleteCoffee)
	coffees.Post("/:id/menu-image", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UploadMenuImage)

	dashboard := app.Group("/api/dashboard",
		middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
	dashboard.Get("/overview", provider.GetDashboardOverview)
	dashboard.Get("/revenue", provider.GetRevenueReport)
}
