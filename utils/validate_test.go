package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidatorCollectsAllFailures(t *testing.T) {
	v := Validator{}
	v.Require("name", "")
	v.Positive("capacity", 0)
	v.NonNegative("price", -5)

	assert.True(t, v.Failed())
	assert.Len(t, v.Errors(), 3)
	assert.Equal(t, "name", v.Errors()[0].Field)
}

func TestValidatorPassesCleanInput(t *testing.T) {
	v := Validator{}
	v.Require("name", "Sea View")
	v.Positive("capacity", 2)
	v.NonNegative("price", 0)

	assert.False(t, v.Failed())
	assert.Empty(t, v.Errors())
}

func TestDiscountBelow(t *testing.T) {
	v := Validator{}
	v.DiscountBelow("discount_price", 80, 100)
	assert.False(t, v.Failed())

	v2 := Validator{}
	v2.DiscountBelow("discount_price", 100, 100)
	assert.True(t, v2.Failed())

	v3 := Validator{}
	v3.DiscountBelow("discount_price", 120, 100)
	assert.True(t, v3.Failed())

	// Zero means no discount is set
	v4 := Validator{}
	v4.DiscountBelow("discount_price", 0, 100)
	assert.False(t, v4.Failed())

	v5 := Validator{}
	v5.DiscountBelow("discount_price", -1, 100)
	assert.True(t, v5.Failed())
}

func TestIntRange(t *testing.T) {
	v := Validator{}
	v.IntRange("rating", 3, 1, 5)
	assert.False(t, v.Failed())

	v2 := Validator{}
	v2.IntRange("rating", 6, 1, 5)
	assert.True(t, v2.Failed())
	assert.Equal(t, "must be between 1 and 5", v2.Errors()[0].Message)
}

func TestDateOrder(t *testing.T) {
	checkIn := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	v := Validator{}
	v.DateOrder("check_in", checkIn, checkIn.AddDate(0, 0, 2))
	assert.False(t, v.Failed())

	v2 := Validator{}
	v2.DateOrder("check_in", checkIn, checkIn)
	assert.True(t, v2.Failed())

	v3 := Validator{}
	v3.DateOrder("check_in", checkIn, checkIn.AddDate(0, 0, -1))
	assert.True(t, v3.Failed())
}
