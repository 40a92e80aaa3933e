package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInvoiceNumberFormat(t *testing.T) {
	number := GenerateInvoiceNumber()

	assert.True(t, strings.HasPrefix(number, "INV-"))
	assert.Len(t, number, len("INV-")+8)
	assert.Equal(t, strings.ToUpper(number), number)
}

func TestGenerateInvoiceNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateInvoiceNumber()
		assert.False(t, seen[number], "duplicate invoice number %s", number)
		seen[number] = true
	}
}

func TestGenerateBusinessIDPrefix(t *testing.T) {
	id := GenerateBusinessID("SVC")

	assert.True(t, strings.HasPrefix(id, "SVC-"))
	assert.Len(t, id, len("SVC-")+8)
}
