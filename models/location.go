package models

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	City      string  `json:"city" gorm:"not null"`
	District  string  `json:"district"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
