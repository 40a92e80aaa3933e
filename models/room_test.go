package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRoomType(t *testing.T) {
	for _, rt := range []RoomType{RoomSingle, RoomDouble, RoomFamily, RoomSuite} {
		assert.True(t, ValidRoomType(rt), "expected %q to be valid", rt)
	}
	assert.False(t, ValidRoomType("penthouse"))
}

func TestEffectivePriceUsesDiscount(t *testing.T) {
	room := Room{Price: 100, DiscountPrice: 80}
	assert.Equal(t, 80.0, room.EffectivePrice())
}

func TestEffectivePriceIgnoresZeroDiscount(t *testing.T) {
	room := Room{Price: 100, DiscountPrice: 0}
	assert.Equal(t, 100.0, room.EffectivePrice())
}

func TestEffectivePriceIgnoresDiscountAbovePrice(t *testing.T) {
	room := Room{Price: 100, DiscountPrice: 120}
	assert.Equal(t, 100.0, room.EffectivePrice())
}

func TestValidServiceKind(t *testing.T) {
	for _, k := range []ServiceKind{KindHotel, KindRestaurant, KindCoffee} {
		assert.True(t, ValidServiceKind(k), "expected %q to be valid", k)
	}
	assert.False(t, ValidServiceKind("spa"))
}
