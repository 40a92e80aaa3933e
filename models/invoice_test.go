package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidInvoiceStatus(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoicePending, InvoiceConfirmed, InvoiceCancelled, InvoiceUsed} {
		assert.True(t, ValidInvoiceStatus(s), "expected %q to be valid", s)
	}
	assert.False(t, ValidInvoiceStatus("paid"))
	assert.False(t, ValidInvoiceStatus(""))
}

func TestInvoiceDefaultsToPending(t *testing.T) {
	invoice := Invoice{}
	err := invoice.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, InvoicePending, invoice.Status)
}

func TestInvoiceKeepsExplicitStatus(t *testing.T) {
	invoice := Invoice{Status: InvoiceConfirmed}
	err := invoice.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, InvoiceConfirmed, invoice.Status)
}

func TestInvoiceNights(t *testing.T) {
	checkIn := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	invoice := Invoice{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3)}
	assert.Equal(t, 3, invoice.Nights())

	// Same-day visits still count as one night for pricing
	shortStay := Invoice{CheckIn: checkIn, CheckOut: checkIn.Add(4 * time.Hour)}
	assert.Equal(t, 1, shortStay.Nights())

	// Calendar nights, not 24-hour blocks: evening arrival, morning departure
	lateArrival := Invoice{
		CheckIn:  time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 2, lateArrival.Nights())
}
