package models

import (
	"gorm.io/gorm"
)

// Coffee extends a Service of kind "coffee" (a café).
type Coffee struct {
	gorm.Model
	ServiceID    uint    `json:"service_id" gorm:"uniqueIndex"`
	Service      Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Style        string  `json:"style"` // e.g. "garden", "rooftop", "specialty"
	OpenTime     string  `json:"open_time"`  // "HH:MM" 24h
	CloseTime    string  `json:"close_time"` // "HH:MM" 24h
	MenuImageURL string  `json:"menu_image_url"`
}
