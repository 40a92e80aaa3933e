package customer

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

type reviewInput struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	ServiceID uint   `json:"service_id"`
	InvoiceID *uint  `json:"invoice_id"`
}

// toReview builds the record to persist. Only scalar fields cross over, so a
// request body with nested service or customer objects cannot insert rows
// through GORM's association handling.
func (in *reviewInput) toReview(customerID uint) models.Review {
	return models.Review{
		Rating:     in.Rating,
		Comment:    in.Comment,
		ServiceID:  in.ServiceID,
		CustomerID: customerID,
		InvoiceID:  in.InvoiceID,
	}
}

// CreateReview adds a review for a service. One review per customer per
// service; linking a used invoice marks it verified.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	input := new(reviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}
	review := input.toReview(userID)

	if review.Rating < 1 || review.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, review.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this service. Please update your existing review.",
		})
	}

	// A matching used invoice makes the review verified
	if review.InvoiceID != nil && *review.InvoiceID > 0 {
		var invoice models.Invoice
		if err := db.DB.Where("id = ? AND customer_id = ? AND service_id = ?",
			*review.InvoiceID, userID, review.ServiceID).
			First(&invoice).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Invoice not found or does not match the review details",
			})
		}
		review.IsVerified = invoice.Status == models.InvoiceUsed
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	// Second, independent write: refresh the service's denormalized rating
	if err := service.RecomputeRating(db.DB); err != nil {
		log.Printf("Failed to recompute rating for service %d: %v", service.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetServiceReviews retrieves the reviews of one service, paginated.
func GetServiceReviews(c *fiber.Ctx) error {
	serviceID := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	page := 1
	if parsedPage := c.QueryInt("page"); parsedPage > 0 {
		page = parsedPage
	}
	limit := 10
	if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
		limit = parsedLimit
	}
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := db.DB.Preload("Customer", func(db *gorm.DB) *gorm.DB {
		// Only select non-sensitive fields
		return db.Select("id, name, created_at")
	}).
		Where("service_id = ?", serviceID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	var count int64
	db.DB.Model(&models.Review{}).Where("service_id = ?", serviceID).Count(&count)

	return c.JSON(fiber.Map{
		"reviews":    reviews,
		"avg_rating": service.AvgRating,
		"total":      count,
		"page":       page,
		"limit":      limit,
		"pages":      utils.PageCount(count, limit),
	})
}

// UpdateReview lets the review owner change rating and comment.
func UpdateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var existingReview models.Review
	if err := db.DB.First(&existingReview, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	if existingReview.CustomerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to update this review",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	updateMap := make(map[string]interface{})
	if raw, ok := updateData["rating"]; ok {
		rating, ok := raw.(float64)
		if !ok {
			if strRating, ok := raw.(string); ok {
				parsed, err := strconv.ParseFloat(strRating, 64)
				if err == nil {
					rating = parsed
				}
			}
		}
		if rating < 1 {
			rating = 1
		} else if rating > 5 {
			rating = 5
		}
		updateMap["rating"] = int(rating)
	}
	if comment, ok := updateData["comment"]; ok {
		updateMap["comment"] = comment
	}

	if len(updateMap) > 0 {
		if err := db.DB.Model(&existingReview).Updates(updateMap).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update review",
			})
		}
	}

	var service models.Service
	if err := db.DB.First(&service, existingReview.ServiceID).Error; err == nil {
		if err := service.RecomputeRating(db.DB); err != nil {
			log.Printf("Failed to recompute rating for service %d: %v", service.ID, err)
		}
	}

	return c.JSON(existingReview)
}

// DeleteReview removes a review (owner or admin) and refreshes the service
// rating.
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}
	role, _ := c.Locals("role").(string)

	var existingReview models.Review
	if err := db.DB.First(&existingReview, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	if existingReview.CustomerID != userID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to delete this review",
		})
	}

	if err := db.DB.Delete(&existingReview).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete review",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, existingReview.ServiceID).Error; err == nil {
		if err := service.RecomputeRating(db.DB); err != nil {
			log.Printf("Failed to recompute rating for service %d: %v", service.ID, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
