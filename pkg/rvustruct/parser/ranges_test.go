package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		rng      string
		columns  []string
		expected models.Region
	}{
		{"A25:D31", []string{"A", "B", "D"}, models.Region{R1: 25, C1: 1, R2: 31, C2: 4, Columns: []int{1, 2, 4}}},
		{"$G$3:$J$73", nil, models.Region{R1: 3, C1: 7, R2: 73, C2: 10, Columns: []int{7, 8, 9, 10}}},
		{"A3:E22", []string{}, models.Region{R1: 3, C1: 1, R2: 22, C2: 5, Columns: []int{1, 2, 3, 4, 5}}},
	}

	for _, tt := range tests {
		region, err := ParseRegion(tt.rng, tt.columns)
		require.NoError(t, err, tt.rng)
		assert.Equal(t, tt.expected, region, tt.rng)
	}
}

func TestParseRegionErrors(t *testing.T) {
	tests := []struct {
		rng     string
		columns []string
	}{
		{"A25", nil},
		{"A25:D", nil},
		{"D31:A25", nil},
		{"A25:D31", []string{"E"}},
		{"A25:D31", []string{"1"}},
	}

	for _, tt := range tests {
		_, err := ParseRegion(tt.rng, tt.columns)
		assert.Error(t, err, "%s %v", tt.rng, tt.columns)
	}
}

func TestFormatRegion(t *testing.T) {
	assert.Equal(t, "G3:J73", FormatRegion(models.Region{R1: 3, C1: 7, R2: 73, C2: 10}))
}
