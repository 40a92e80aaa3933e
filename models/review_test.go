package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewRatingClampedLow(t *testing.T) {
	review := Review{Rating: 0}
	err := review.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, review.Rating)
}

func TestReviewRatingClampedHigh(t *testing.T) {
	review := Review{Rating: 9}
	err := review.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewRatingInRangeUnchanged(t *testing.T) {
	review := Review{Rating: 4}
	err := review.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}
