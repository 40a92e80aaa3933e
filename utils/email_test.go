package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingMailLayout(t *testing.T) {
	body := BookingMail("Alice", "We received your booking.",
		[][2]string{
			{"Invoice", "INV-12345678"},
			{"Total", "250.00"},
		},
		"If you need to cancel, contact us.")

	assert.Contains(t, body, "<p>Dear Alice,</p>")
	assert.Contains(t, body, "<li><strong>Invoice:</strong> INV-12345678</li>")
	assert.Contains(t, body, "<li><strong>Total:</strong> 250.00</li>")
	assert.Contains(t, body, "If you need to cancel, contact us.")
	assert.Contains(t, body, "The Travel Booking Team")
}

func TestBookingMailOmitsEmptyNote(t *testing.T) {
	body := BookingMail("Bob", "Reminder.", nil, "")
	assert.NotContains(t, body, "<p></p>")
}
