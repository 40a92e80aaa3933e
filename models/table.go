package models

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableID      string     `json:"table_id" gorm:"uniqueIndex;not null"`
	RestaurantID uint       `json:"restaurant_id"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Name         string     `json:"name"`
	Seats        int        `json:"seats"`
	MinCharge    float64    `json:"min_charge"`
	Available    bool       `json:"available" gorm:"default:true"`
}
