package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/controllers"
	"github.com/Present111/travel-booking-api/controllers/customer"
	"github.com/Present111/travel-booking-api/controllers/provider"
	"github.com/Present111/travel-booking-api/middleware"
	"github.com/Present111/travel-booking-api/models"
)

// SetupServiceRoutes configures public browsing plus provider-owned service
// writes.
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/api/services")

	// Public reads
	service.Get("/", controllers.GetAllServices)
	service.Get("/search", controllers.SearchServices)
	service.Get("/featured", controllers.GetFeaturedServices)
	service.Get("/:id", controllers.GetService)
	service.Get("/:id/reviews", customer.GetServiceReviews)

	// Provider writes (admin passes the ownership check inside the handlers)
	service.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.CreateService)
	service.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.DeleteService)
	service.Post("/:id/image", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UploadServiceImage)
}
