package db

import (
	"fmt"
	"log"

	"github.com/Present111/travel-booking-api/models"
)

// Migrate runs AutoMigrate for every model, then seeds roles and catalog
// defaults. DB must be initialized first.
func Migrate() {
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Provider{},
		&models.Location{},
		&models.FacilityType{},
		&models.PriceCategory{},
		&models.Suitability{},
		&models.CuisineType{},
		&models.DishType{},
		&models.HotelType{},
		&models.RestaurantType{},
		&models.Service{},
		&models.Hotel{},
		&models.Room{},
		&models.Restaurant{},
		&models.Table{},
		&models.Coffee{},
		&models.Invoice{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDefaults()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedDefaults creates the fixed roles and a starter catalog when missing.
func seedDefaults() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleProvider, Description: "Business account offering bookable services"},
		{Name: models.RoleCustomer, Description: "Customer who books services"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	hotelTypes := []string{"resort", "boutique", "business", "hostel"}
	for _, name := range hotelTypes {
		var existing models.HotelType
		if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
			DB.Create(&models.HotelType{Name: name})
		}
	}

	restaurantTypes := []string{"fine dining", "casual", "buffet", "street food"}
	for _, name := range restaurantTypes {
		var existing models.RestaurantType
		if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
			DB.Create(&models.RestaurantType{Name: name})
		}
	}

	priceCategories := []string{"budget", "mid-range", "premium", "luxury"}
	for _, name := range priceCategories {
		var existing models.PriceCategory
		if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
			DB.Create(&models.PriceCategory{Name: name})
		}
	}
}
