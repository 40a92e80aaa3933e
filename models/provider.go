package models

import (
	"gorm.io/gorm"
)

// Provider is the business account behind one or more services. The linked
// User carries credentials and the provider role.
type Provider struct {
	gorm.Model
	ProviderID    string    `json:"provider_id" gorm:"uniqueIndex;not null"`
	UserID        uint      `json:"user_id" gorm:"uniqueIndex"`
	User          User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BusinessName  string    `json:"business_name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	LicenseNumber string    `json:"license_number"`
	LogoURL       string    `json:"logo_url"`
	Services      []Service `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
}
