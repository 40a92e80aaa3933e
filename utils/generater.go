package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateInvoiceNumber returns a short unique invoice number, e.g. INV-9F2C1A3B.
func GenerateInvoiceNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("INV-%s", id[:8])
}

// GenerateBusinessID returns a prefixed unique identifier for a resource,
// e.g. SVC-4D1E9B0A for a service.
func GenerateBusinessID(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("%s-%s", prefix, id[:8])
}
