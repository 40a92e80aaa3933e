package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Present111/travel-booking-api/models"
)

func roomInvoice(roomType models.RoomType, total float64) models.Invoice {
	room := models.Room{RoomType: roomType}
	return models.Invoice{Room: &room, Total: total}
}

func TestGroupRevenueByRoomType(t *testing.T) {
	tableID := uint(7)
	invoices := []models.Invoice{
		roomInvoice(models.RoomDouble, 200),
		roomInvoice(models.RoomDouble, 150),
		roomInvoice(models.RoomSuite, 500),
		{TableID: &tableID, Total: 80},
	}

	buckets := GroupRevenueByRoomType(invoices)

	assert.Len(t, buckets, 3)
	// Sorted by room type name: double, suite, table
	assert.Equal(t, "double", buckets[0].RoomType)
	assert.Equal(t, 350.0, buckets[0].Revenue)
	assert.Equal(t, 2, buckets[0].Bookings)

	assert.Equal(t, "suite", buckets[1].RoomType)
	assert.Equal(t, 500.0, buckets[1].Revenue)

	assert.Equal(t, "table", buckets[2].RoomType)
	assert.Equal(t, 80.0, buckets[2].Revenue)
}

func TestGroupRevenueByRoomTypeEmpty(t *testing.T) {
	buckets := GroupRevenueByRoomType(nil)
	assert.Empty(t, buckets)
}

func TestGroupRevenueBucketsCoffeeAsOther(t *testing.T) {
	invoices := []models.Invoice{{Total: 0}}

	buckets := GroupRevenueByRoomType(invoices)

	assert.Len(t, buckets, 1)
	assert.Equal(t, "other", buckets[0].RoomType)
	assert.Equal(t, 1, buckets[0].Bookings)
}
