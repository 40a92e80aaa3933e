package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Present111/travel-booking-api/models"
)

func TestComputeBookingTotalHotel(t *testing.T) {
	total := ComputeBookingTotal(models.KindHotel, 100, 3)
	assert.Equal(t, 300.0, total)
}

func TestComputeBookingTotalHotelMinimumOneNight(t *testing.T) {
	total := ComputeBookingTotal(models.KindHotel, 100, 0)
	assert.Equal(t, 100.0, total)
}

func TestComputeBookingTotalRestaurantIsMinCharge(t *testing.T) {
	total := ComputeBookingTotal(models.KindRestaurant, 50, 4)
	assert.Equal(t, 50.0, total)
}

func TestComputeBookingTotalCoffeeIsFree(t *testing.T) {
	total := ComputeBookingTotal(models.KindCoffee, 0, 1)
	assert.Equal(t, 0.0, total)
}
