package models

import (
	"encoding/json"
	"testing"
)

func TestNumberJSON(t *testing.T) {
	tests := []struct {
		n        Number
		expected string
	}{
		{NewNumber(1.5), "1.5"},
		{NewNumber(0), "0"},
		{Null(), "null"},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.n)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", tt.n, err)
		}
		if string(data) != tt.expected {
			t.Errorf("Marshal(%v) = %s, expected %s", tt.n, data, tt.expected)
		}

		var back Number
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if back != tt.n {
			t.Errorf("Unmarshal(%s) = %+v, expected %+v", data, back, tt.n)
		}
	}
}

func TestNumberString(t *testing.T) {
	if s := NewNumber(2.25).String(); s != "2.25" {
		t.Errorf("String() = %q, expected 2.25", s)
	}
	if s := Null().String(); s != "null" {
		t.Errorf("String() = %q, expected null", s)
	}
}

func TestRegion(t *testing.T) {
	r := Region{R1: 3, C1: 7, R2: 73, C2: 10}
	if r.Rows() != 71 {
		t.Errorf("Rows() = %d, expected 71", r.Rows())
	}
	if !r.Contains(3, 7) || !r.Contains(73, 10) {
		t.Error("expected corners to be inside the region")
	}
	if r.Contains(2, 7) || r.Contains(3, 11) {
		t.Error("expected cells outside the bounds to be excluded")
	}
	if (Region{R1: 5, R2: 4}).Rows() != 0 {
		t.Error("expected an inverted region to have no rows")
	}
}
