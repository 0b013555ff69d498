package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
)

// ParseNumber coerces cell text to a Number.
// Empty cells, text such as "N/A", NaN and infinities all become null; it never fails.
func ParseNumber(s string) models.Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Null()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Null()
	}
	return models.NewNumber(f)
}

// isEmpty reports whether a cell holds no text.
func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
