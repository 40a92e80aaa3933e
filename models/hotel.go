package models

import (
	"gorm.io/gorm"
)

// Hotel extends a Service of kind "hotel" with lodging specifics.
type Hotel struct {
	gorm.Model
	ServiceID   uint      `json:"service_id" gorm:"uniqueIndex"`
	Service     Service   `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	HotelTypeID uint      `json:"hotel_type_id"`
	HotelType   HotelType `json:"hotel_type,omitempty" gorm:"foreignKey:HotelTypeID"`
	StarRating  int       `json:"star_rating"` // 1-5
	Rooms       []Room    `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}
