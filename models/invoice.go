package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Present111/travel-booking-api/utils"
)

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoiceConfirmed InvoiceStatus = "confirmed"
	InvoiceCancelled InvoiceStatus = "cancelled"
	InvoiceUsed      InvoiceStatus = "used"
)

// ValidInvoiceStatus reports whether s is a member of the status enum.
// Transitions between members are deliberately unconstrained: the generic
// status update endpoint accepts any valid value.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoicePending, InvoiceConfirmed, InvoiceCancelled, InvoiceUsed:
		return true
	}
	return false
}

// Invoice records one booking of a service: a room stay between check-in and
// check-out, or a table reservation for the check-in date. UnitPrice is a
// snapshot of the room/table price at booking time.
type Invoice struct {
	gorm.Model
	InvoiceNumber string        `json:"invoice_number" gorm:"uniqueIndex;not null"`
	CustomerID    uint          `json:"customer_id"`
	Customer      User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceID     uint          `json:"service_id"`
	Service       Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	RoomID        *uint         `json:"room_id,omitempty"`
	Room          *Room         `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	TableID       *uint         `json:"table_id,omitempty"`
	Table         *Table        `json:"table,omitempty" gorm:"foreignKey:TableID"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	GuestCount    int           `json:"guest_count"`
	UnitPrice     float64       `json:"unit_price"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = InvoicePending
	}
	return nil
}

// Nights returns the stay length in calendar nights, minimum 1. A late
// check-in followed by an early check-out still spans the dates between them.
func (i *Invoice) Nights() int {
	nights := utils.DaysBetween(i.CheckIn, i.CheckOut)
	if nights < 1 {
		nights = 1
	}
	return nights
}
