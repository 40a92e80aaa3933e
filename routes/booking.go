package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/controllers/customer"
	"github.com/Present111/travel-booking-api/middleware"
	"github.com/Present111/travel-booking-api/models"
)

// SetupBookingRoutes configures invoice and review routes.
func SetupBookingRoutes(app *fiber.App) {
	invoices := app.Group("/api/invoices", middleware.Protected())
	invoices.Post("/", customer.CreateInvoice)
	invoices.Get("/", customer.GetMyInvoices)
	invoices.Get("/:id", customer.GetInvoice)
	invoices.Patch("/:id/status", customer.UpdateInvoiceStatus)
	invoices.Delete("/:id", middleware.RequireRole(models.RoleAdmin), customer.DeleteInvoice)

	reviews := app.Group("/api/reviews")
	reviews.Post("/", middleware.Protected(), customer.CreateReview)
	reviews.Patch("/:id", middleware.Protected(), customer.UpdateReview)
	reviews.Delete("/:id", middleware.Protected(), customer.DeleteReview)
}
