// Package models defines data structures for RVU report extraction.
package models

import (
	"encoding/json"
	"strconv"
)

// Number is a numeric cell value that may be missing.
// A cell that does not parse as a number is stored with Valid == false,
// which keeps it distinct from a legitimate zero.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a valid Number holding v.
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Null returns a missing Number.
func Null() Number {
	return Number{}
}

// Float returns the value and whether it is present.
func (n Number) Float() (float64, bool) {
	return n.Value, n.Valid
}

// String formats the value, or "null" when missing.
func (n Number) String() string {
	if !n.Valid {
		return "null"
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// MarshalJSON encodes a missing Number as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts a number or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = NewNumber(v)
	return nil
}
