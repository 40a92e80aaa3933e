package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int     `json:"rating" gorm:"not null"`
	Comment    string  `json:"comment"`
	ServiceID  uint    `json:"service_id"`
	Service    Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	CustomerID uint    `json:"customer_id"`
	Customer   User    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	InvoiceID  *uint   `json:"invoice_id,omitempty"` // optional link to the booking
	IsVerified bool    `json:"is_verified" gorm:"default:false"`
}

// BeforeCreate clamps the rating into the 1-5 range.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	return nil
}

// HasExistingReview checks whether the customer already reviewed the service.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("customer_id = ? AND service_id = ? AND deleted_at IS NULL",
			r.CustomerID, r.ServiceID).
		Count(&count).Error

	return count > 0, err
}
