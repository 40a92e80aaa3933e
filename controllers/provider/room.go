package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/models"
	"github.com/Present111/travel-booking-api/utils"
)

// loadOwnedRoom walks the full chain Room → Hotel → Service → Provider → User
// and compares the owning user against the caller. Admins bypass the check.
func loadOwnedRoom(c *fiber.Ctx, roomID interface{}) (*models.Room, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fmt.Errorf("user ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	var room models.Room
	if err := db.DB.First(&room, roomID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("room not found")
	}

	if role == models.RoleAdmin {
		return &room, 0, nil
	}

	var hotel models.Hotel
	if err := db.DB.First(&hotel, room.HotelID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("hotel not found")
	}
	var service models.Service
	if err := db.DB.First(&service, hotel.ServiceID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("service not found")
	}
	var owner models.Provider
	if err := db.DB.First(&owner, service.ProviderID).Error; err != nil {
		return nil, fiber.StatusNotFound, fmt.Errorf("provider not found")
	}
	if owner.UserID != userID {
		return nil, fiber.StatusForbidden, fmt.Errorf("you don't own this room")
	}

	return &room, 0, nil
}

type roomInput struct {
	RoomID        string          `json:"room_id"`
	HotelID       uint            `json:"hotel_id"`
	Name          string          `json:"name"`
	RoomType      models.RoomType `json:"room_type"`
	Capacity      int             `json:"capacity"`
	Price         float64         `json:"price"`
	DiscountPrice float64         `json:"discount_price"`
	Available     *bool           `json:"available"`
}

func validateRoomInput(input *roomInput) *utils.Validator {
	v := &utils.Validator{}
	v.Require("name", input.Name)
	if !models.ValidRoomType(input.RoomType) {
		v.Add("room_type", "must be single, double, family or suite")
	}
	v.Positive("capacity", input.Capacity)
	v.NonNegative("price", input.Price)
	v.DiscountBelow("discount_price", input.DiscountPrice, input.Price)
	return v
}

// CreateRoom adds a room to an owned hotel.
func CreateRoom(c *fiber.Ctx) error {
	input := new(roomInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	hotel, status, err := loadOwnedHotel(c, input.HotelID)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if v := validateRoomInput(input); v.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: v.Errors(),
		})
	}

	businessID := input.RoomID
	if businessID == "" {
		businessID = utils.GenerateBusinessID("ROOM")
	}
	var existing models.Room
	if db.DB.Where("room_id = ?", businessID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Room with this room_id already exists",
		})
	}

	room := models.Room{
		RoomID:        businessID,
		HotelID:       hotel.ID,
		Name:          input.Name,
		RoomType:      input.RoomType,
		Capacity:      input.Capacity,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Available:     true,
	}
	if input.Available != nil {
		room.Available = *input.Available
	}
	if err := db.DB.Create(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create room",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(room)
}

func GetRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := db.DB.Preload("Hotel").First(&room, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}
	return c.JSON(room)
}

// GetHotelRooms lists rooms of one hotel, optionally filtered by type.
func GetHotelRooms(c *fiber.Ctx) error {
	var hotel models.Hotel
	if err := db.DB.First(&hotel, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}

	query := db.DB.Where("hotel_id = ?", hotel.ID)
	if roomType := c.Query("room_type"); roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch rooms",
		})
	}
	return c.JSON(rooms)
}

func UpdateRoom(c *fiber.Ctx) error {
	room, status, err := loadOwnedRoom(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	input := new(roomInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	updateMap := make(map[string]interface{})
	v := utils.Validator{}
	if input.Name != "" {
		updateMap["name"] = input.Name
	}
	if input.RoomType != "" {
		if !models.ValidRoomType(input.RoomType) {
			v.Add("room_type", "must be single, double, family or suite")
		} else {
			updateMap["room_type"] = input.RoomType
		}
	}
	if input.Capacity != 0 {
		v.Positive("capacity", input.Capacity)
		updateMap["capacity"] = input.Capacity
	}
	price := room.Price
	if input.Price != 0 {
		v.NonNegative("price", input.Price)
		updateMap["price"] = input.Price
		price = input.Price
	}
	if input.DiscountPrice != 0 {
		v.DiscountBelow("discount_price", input.DiscountPrice, price)
		updateMap["discount_price"] = input.DiscountPrice
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
		if err := db.DB.Model(room).Updates(updateMap).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update room",
			})
		}
	}

	return c.JSON(room)
}

func DeleteRoom(c *fiber.Ctx) error {
	room, status, err := loadOwnedRoom(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	db.DB.Delete(room)
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadRoomImage stores a room photo in Cloudinary and records its URL.
func UploadRoomImage(c *fiber.Ctx) error {
	room, status, err := loadOwnedRoom(c, c.Params("id"))
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file provided"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer f.Close()

	publicID := fmt.Sprintf("room_%d", room.ID)
	secureURL, err := utils.UploadToCloudinary(f, publicID, "room_images")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
	}

	if err := db.DB.Model(room).Update("image_url", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save image URL"})
	}

	return c.JSON(fiber.Map{"image_url": secureURL})
}
