package models

import (
	"gorm.io/gorm"
)

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomFamily RoomType = "family"
	RoomSuite  RoomType = "suite"
)

// ValidRoomType reports whether t is a supported room type.
func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomSingle, RoomDouble, RoomFamily, RoomSuite:
		return true
	}
	return false
}

type Room struct {
	gorm.Model
	RoomID        string   `json:"room_id" gorm:"uniqueIndex;not null"`
	HotelID       uint     `json:"hotel_id"`
	Hotel         Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Name          string   `json:"name"`
	RoomType      RoomType `json:"room_type" gorm:"not null"`
	Capacity      int      `json:"capacity"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discount_price"` // 0 means no discount
	ImageURL      string   `json:"image_url"`
	Available     bool     `json:"available" gorm:"default:true"`
}

// EffectivePrice returns the discounted nightly price when a discount is set.
func (r *Room) EffectivePrice() float64 {
	if r.DiscountPrice > 0 && r.DiscountPrice < r.Price {
		return r.DiscountPrice
	}
	return r.Price
}
