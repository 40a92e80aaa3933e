package utils

import (
	"fmt"
	"time"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects field-level errors for a request body.
type Validator struct {
	errs []FieldError
}

func (v *Validator) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

func (v *Validator) Require(field, value string) {
	if value == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) Positive(field string, value int) {
	if value <= 0 {
		v.Add(field, "must be greater than zero")
	}
}

func (v *Validator) NonNegative(field string, value float64) {
	if value < 0 {
		v.Add(field, "must not be negative")
	}
}

// DiscountBelow checks discount < price. A zero discount means none is set.
func (v *Validator) DiscountBelow(field string, discount, price float64) {
	if discount < 0 {
		v.Add(field, "must not be negative")
		return
	}
	if discount > 0 && discount >= price {
		v.Add(field, "must be lower than the base price")
	}
}

func (v *Validator) IntRange(field string, value, min, max int) {
	if value < min || value > max {
		v.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

// DateOrder checks that end is strictly after start.
func (v *Validator) DateOrder(startField string, start, end time.Time) {
	if !end.After(start) {
		v.Add(startField, "check-out must be after check-in")
	}
}

func (v *Validator) Failed() bool {
	return len(v.errs) > 0
}

func (v *Validator) Errors() []FieldError {
	return v.errs
}
