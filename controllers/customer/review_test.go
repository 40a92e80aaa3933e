package customer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewInputDropsNestedAssociations(t *testing.T) {
	// A request body may carry nested service/customer objects; only the
	// scalar fields may reach the persisted record.
	body := []byte(`{
		"rating": 5,
		"comment": "great",
		"service_id": 1,
		"service": {"service_id": "SVC-EVIL", "name": "rogue listing", "kind": "hotel"},
		"customer": {"name": "mallory", "email": "m@example.com"}
	}`)

	input := new(reviewInput)
	assert.NoError(t, json.Unmarshal(body, input))

	review := input.toReview(42)

	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "great", review.Comment)
	assert.Equal(t, uint(1), review.ServiceID)
	assert.Equal(t, uint(42), review.CustomerID)
	assert.Zero(t, review.Service)
	assert.Zero(t, review.Customer)
}

func TestReviewInputKeepsInvoiceLink(t *testing.T) {
	body := []byte(`{"rating": 4, "service_id": 3, "invoice_id": 9}`)

	input := new(reviewInput)
	assert.NoError(t, json.Unmarshal(body, input))

	review := input.toReview(7)
	if assert.NotNil(t, review.InvoiceID) {
		assert.Equal(t, uint(9), *review.InvoiceID)
	}
	assert.False(t, review.IsVerified)
}
