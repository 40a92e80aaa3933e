package customer

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

type bookingInput struct {
	ServiceID  uint      `json:"service_id"`
	RoomID     *uint     `json:"room_id"`
	TableID    *uint     `json:"table_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
	Notes      string    `json:"notes"`
}

// ComputeBookingTotal derives the invoice total from the booked inventory:
// nightly price times nights for rooms, the minimum charge for tables, zero
// for café visits.
func ComputeBookingTotal(kind models.ServiceKind, unitPrice float64, nights int) float64 {
	switch kind {
	case models.KindHotel:
		if nights < 1 {
			nights = 1
		}
		return unitPrice * float64(nights)
	case models.KindRestaurant:
		return unitPrice
	default:
		return 0
	}
}

// CreateInvoice books a service for the authenticated customer.
func CreateInvoice(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(bookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	v := utils.Validator{}
	v.Positive("guest_count", input.GuestCount)
	if input.CheckIn.IsZero() {
		v.Add("check_in", "is required")
	}
	if input.CheckOut.IsZero() {
		v.Add("check_out", "is required")
	}
	if !input.CheckIn.IsZero() && !input.CheckOut.IsZero() {
		v.DateOrder("check_in", input.CheckIn, input.CheckOut)
	}
	if v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	invoice := models.Invoice{
		InvoiceNumber: utils.GenerateInvoiceNumber(),
		CustomerID:    userID,
		ServiceID:     service.ID,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		GuestCount:    input.GuestCount,
		Notes:         input.Notes,
		Status:        models.InvoicePending,
	}

	switch service.Kind {
	case models.KindHotel:
		if input.RoomID == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A room is required to book a hotel",
			})
		}
		var room models.Room
		if err := db.DB.First(&room, *input.RoomID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
		}
		var hotel models.Hotel
		if err := db.DB.First(&hotel, room.HotelID).Error; err != nil ||
			hotel.ServiceID != service.ID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Room does not belong to this service",
			})
		}
		if !room.Available {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Room is not available",
			})
		}
		if input.GuestCount > room.Capacity {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Room holds at most %d guests", room.Capacity),
			})
		}
		invoice.RoomID = &room.ID
		invoice.UnitPrice = room.EffectivePrice()

	case models.KindRestaurant:
		if input.TableID == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A table is required to book a restaurant",
			})
		}
		var table models.Table
		if err := db.DB.First(&table, *input.TableID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Table not found"})
		}
		var restaurant models.Restaurant
		if err := db.DB.First(&restaurant, table.RestaurantID).Error; err != nil ||
			restaurant.ServiceID != service.ID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Table does not belong to this service",
			})
		}
		if !table.Available {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Table is not available",
			})
		}
		if input.GuestCount > table.Seats {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Table seats at most %d guests", table.Seats),
			})
		}
		invoice.TableID = &table.ID
		invoice.UnitPrice = table.MinCharge
	}

	invoice.Total = ComputeBookingTotal(service.Kind, invoice.UnitPrice, invoice.Nights())

	if err := db.DB.Create(&invoice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create invoice",
		})
	}

	go sendBookingConfirmation(invoice.ID)

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// sendBookingConfirmation emails the customer; failures are only logged.
func sendBookingConfirmation(invoiceID uint) {
	var invoice models.Invoice
	if err := db.DB.Preload("Customer").Preload("Service").First(&invoice, invoiceID).Error; err != nil {
		log.Printf("confirmation email: failed to load invoice %d: %v", invoiceID, err)
		return
	}

	subject := fmt.Sprintf("Booking received - %s", invoice.InvoiceNumber)
	body := utils.BookingMail(invoice.Customer.Name,
		"We received your booking. It is awaiting confirmation from the provider.",
		[][2]string{
			{"Invoice", invoice.InvoiceNumber},
			{"Service", invoice.Service.Name},
			{"Check-in", invoice.CheckIn.Format("2006-01-02")},
			{"Check-out", invoice.CheckOut.Format("2006-01-02")},
			{"Total", fmt.Sprintf("%.2f", invoice.Total)},
		}, "")

	if err := utils.SendEmail(invoice.Customer.Email, subject, body); err != nil {
		log.Printf("Failed to send confirmation for invoice %d: %v", invoice.ID, err)
	}
}

// loadAccessibleInvoice returns the invoice when the caller is its customer,
// the provider behind its service, or an admin.
func loadAccessibleInvoice(c *fiber.Ctx, invoiceID string) (*models.Invoice, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fmt.Errorf("user ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var invoice models.Invoice
	if err := db.DB.Preload("Service").Preload("Room").Preload("Table").
		First(&invoice, invoiceID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("invoice not found")
	}

	if role == models.RoleAdmin || invoice.CustomerID == userID {
		return &invoice, 0, nil
	}

	if role == models.RoleProvider {
		var prov models.Provider
		if err := db.DB.Where("user_id = ?", userID).First(&prov).Error; err == nil &&
			prov.ID == invoice.Service.ProviderID {
			return &invoice, 0, nil
		}
	}

	return nil, fiber.StatusForbidden, fmt.Errorf("you don't have access to this invoice")
}

// GetMyInvoices lists invoices visible to the caller: own bookings for
// customers, bookings against owned services for providers, all for admins.
func GetMyInvoices(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	page := 1
	if parsedPage := c.QueryInt("page"); parsedPage > 0 {
		page = parsedPage
	}
	limit := 10
	if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
		limit = parsedLimit
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Invoice{}).
		Preload("Service").Preload("Room").Preload("Table")

	switch role {
	case models.RoleAdmin:
		// no filter
	case models.RoleProvider:
		var prov models.Provider
		if err := db.DB.Where("user_id = ?", userID).First(&prov).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Provider profile not found",
			})
		}
		query = query.
			Joins("JOIN services ON invoices.service_id = services.id").
			Where("services.provider_id = ?", prov.ID)
	default:
		query = query.Where("customer_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		if !models.ValidInvoiceStatus(models.InvoiceStatus(status)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Status must be pending, confirmed, cancelled or used",
			})
		}
		query = query.Where("invoices.status = ?", status)
	}

	var count int64
	query.Count(&count)

	var invoices []models.Invoice
	if err := query.Order("invoices.created_at desc").
		Limit(limit).Offset(offset).Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch invoices",
		})
	}

	return c.JSON(fiber.Map{
		"invoices": invoices,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    utils.PageCount(count, limit),
	})
}

func GetInvoice(c *fiber.Ctx) error {
	invoice, status, err := loadAccessibleInvoice(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(invoice)
}

// UpdateInvoiceStatus sets the status to any valid enum value. Transitions
// are not constrained beyond enum membership.
func UpdateInvoiceStatus(c *fiber.Ctx) error {
	invoice, status, err := loadAccessibleInvoice(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	type statusInput struct {
		Status models.InvoiceStatus `json:"status"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if !models.ValidInvoiceStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status must be pending, confirmed, cancelled or used",
		})
	}

	if err := db.DB.Model(invoice).Update("status", input.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update invoice status",
		})
	}

	return c.JSON(invoice)
}

// DeleteInvoice removes an invoice. Admin only (enforced by the route).
func DeleteInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if db.DB.First(&invoice, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	db.DB.Delete(&invoice)
	return c.SendStatus(fiber.StatusNoContent)
}
