package models

import (
	"gorm.io/gorm"
)

// Restaurant extends a Service of kind "restaurant".
type Restaurant struct {
	gorm.Model
	ServiceID        uint           `json:"service_id" gorm:"uniqueIndex"`
	Service          Service        `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	RestaurantTypeID uint           `json:"restaurant_type_id"`
	RestaurantType   RestaurantType `json:"restaurant_type,omitempty" gorm:"foreignKey:RestaurantTypeID"`
	CuisineTypes     []CuisineType  `json:"cuisine_types,omitempty" gorm:"many2many:restaurant_cuisine_types;"`
	DishTypes        []DishType     `json:"dish_types,omitempty" gorm:"many2many:restaurant_dish_types;"`
	Tables           []Table        `json:"tables,omitempty" gorm:"foreignKey:RestaurantID"`
}
