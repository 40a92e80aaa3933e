package provider

import (
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// GetDashboardOverview returns booking and revenue statistics. Providers see
// their own services; admins see everything.
func GetDashboardOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User role not found in context",
		})
	}

	var statistics struct {
		TotalServices  int64     `json:"total_services"`
		TotalInvoices  int64     `json:"total_invoices"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		UsedCount      int64     `json:"used_count"`
		TotalRevenue   float64   `json:"total_revenue"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	invoiceQuery := db.DB.Model(&models.Invoice{})
	serviceQuery := db.DB.Model(&models.Service{})

	if role == models.RoleProvider {
		var prov models.Provider
		if err := db.DB.Where("user_id = ?", userID).First(&prov).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Provider profile not found",
			})
		}
		invoiceQuery = invoiceQuery.
			Joins("JOIN services ON invoices.service_id = services.id").
			Where("services.provider_id = ?", prov.ID)
		serviceQuery = serviceQuery.Where("provider_id = ?", prov.ID)
	}
	// Admin sees all data, so no additional filtering needed

	// New session so each Count below starts from the same base conditions.
	invoiceQuery = invoiceQuery.Session(&gorm.Session{})

	serviceQuery.Count(&statistics.TotalServices)
	invoiceQuery.Count(&statistics.TotalInvoices)
	invoiceQuery.Where("invoices.status = ?", models.InvoicePending).Count(&statistics.PendingCount)
	invoiceQuery.Where("invoices.status = ?", models.InvoiceConfirmed).Count(&statistics.ConfirmedCount)
	invoiceQuery.Where("invoices.status = ?", models.InvoiceCancelled).Count(&statistics.CancelledCount)
	invoiceQuery.Where("invoices.status = ?", models.InvoiceUsed).Count(&statistics.UsedCount)

	var revenueResult struct {
		TotalRevenue float64
	}
	invoiceQuery.Where("invoices.status = ?", models.InvoiceUsed).
		Select("COALESCE(SUM(invoices.total), 0) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// RevenueBucket is one room-type slice of the revenue report.
type RevenueBucket struct {
	RoomType string  `json:"room_type"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// GroupRevenueByRoomType sums used-invoice totals per room type in memory.
// Table and café bookings land in the "table" and "other" buckets so the
// report always accounts for every invoice it was given.
func GroupRevenueByRoomType(invoices []models.Invoice) []RevenueBucket {
	sums := make(map[string]*RevenueBucket)
	for _, inv := range invoices {
		key := "other"
		if inv.Room != nil {
			key = string(inv.Room.RoomType)
		} else if inv.TableID != nil {
			key = "table"
		}
		bucket, ok := sums[key]
		if !ok {
			bucket = &RevenueBucket{RoomType: key}
			sums[key] = bucket
		}
		bucket.Revenue += inv.Total
		bucket.Bookings++
	}

	buckets := make([]RevenueBucket, 0, len(sums))
	for _, b := range sums {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].RoomType < buckets[j].RoomType
	})
	return buckets
}

// GetRevenueReport returns revenue grouped by room type for one calendar
// month or year. Invoices are fetched for the range, then grouped in memory.
func GetRevenueReport(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	now := time.Now()
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	period := c.Query("period", "month")

	var start, end time.Time
	switch period {
	case "month":
		month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
		if month < 1 || month > 12 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Month must be between 1 and 12",
			})
		}
		start, end = utils.MonthRange(year, time.Month(month))
	case "year":
		start, end = utils.YearRange(year)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Period must be month or year",
		})
	}

	query := db.DB.Preload("Room").
		Where("invoices.status = ?", models.InvoiceUsed).
		Where("invoices.check_in >= ? AND invoices.check_in < ?", start, end)

	if role == models.RoleProvider {
		var prov models.Provider
		if err := db.DB.Where("user_id = ?", userID).First(&prov).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Provider profile not found",
			})
		}
		query = query.
			Joins("JOIN services ON invoices.service_id = services.id").
			Where("services.provider_id = ?", prov.ID)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch invoices",
		})
	}

	buckets := GroupRevenueByRoomType(invoices)

	var total float64
	for _, b := range buckets {
		total += b.Revenue
	}

	return c.JSON(fiber.Map{
		"period":     period,
		"start":      start,
		"end":        end,
		"by_room":    buckets,
		"total":      total,
		"booking_no": len(invoices),
	})
}
