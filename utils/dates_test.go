package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year
	start, end = MonthRange(2024, time.December)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestYearRange(t *testing.T) {
	start, end := YearRange(2024)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 4, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 1, 17, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), BeginningOfDay(ts))
}
