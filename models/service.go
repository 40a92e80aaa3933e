package models

import (
	"gorm.io/gorm"
)

type ServiceKind string

const (
	KindHotel      ServiceKind = "hotel"
	KindRestaurant ServiceKind = "restaurant"
	KindCoffee     ServiceKind = "coffee"
)

// ValidServiceKind reports whether k is one of the supported offering kinds.
func ValidServiceKind(k ServiceKind) bool {
	switch k {
	case KindHotel, KindRestaurant, KindCoffee:
		return true
	}
	return false
}

// Service is a bookable offering owned by a provider. Kind decides which
// extension record (Hotel, Restaurant, Coffee) completes it.
type Service struct {
	gorm.Model
	ServiceID       string          `json:"service_id" gorm:"uniqueIndex;not null"`
	Name            string          `json:"name" gorm:"not null"`
	Description     string          `json:"description"`
	Kind            ServiceKind     `json:"kind" gorm:"not null"`
	ProviderID      uint            `json:"provider_id"`
	Provider        Provider        `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	LocationID      uint            `json:"location_id"`
	Location        Location        `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	ImageURL        string          `json:"image_url"`
	FacilityTypes   []FacilityType  `json:"facility_types,omitempty" gorm:"many2many:service_facility_types;"`
	PriceCategories []PriceCategory `json:"price_categories,omitempty" gorm:"many2many:service_price_categories;"`
	Suitabilities   []Suitability   `json:"suitabilities,omitempty" gorm:"many2many:service_suitabilities;"`
	Reviews         []Review        `json:"reviews,omitempty" gorm:"foreignKey:ServiceID"`
	AvgRating       float64         `json:"avg_rating" gorm:"default:0"`
	ReviewCount     int64           `json:"review_count" gorm:"default:0"`
}

// RecomputeRating refreshes the denormalized rating columns from the live
// reviews. Called after review create/update/delete; the review write and
// this update are two independent writes, not a transaction.
func (s *Service) RecomputeRating(tx *gorm.DB) error {
	var result struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("service_id = ?", s.ID).
		Scan(&result).Error
	if err != nil {
		return err
	}
	return tx.Model(s).Updates(map[string]interface{}{
		"avg_rating":   result.Avg,
		"review_count": result.Count,
	}).Error
}
