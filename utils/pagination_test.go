package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
}

func TestPageCountClampsBadLimit(t *testing.T) {
	// Query strings like ?limit=0 or ?limit=abc must never crash the math
	assert.Equal(t, 5, PageCount(5, 0))
	assert.Equal(t, 5, PageCount(5, -3))
}
