package parser

import "github.com/ukaji3/rvustruct/pkg/rvustruct/models"

// ExtractLevels builds the E&M level breakdown from a region whose columns are
// Category, Pre RVU, Pre %, Post RVU and Post %.
func ExtractLevels(g Grid, region models.Region) []models.LevelBreakdown {
	result := make([]models.LevelBreakdown, 0)
	for _, row := range SliceRegion(g, region) {
		category := field(row, 0)
		if isEmpty(category) {
			continue
		}
		result = append(result, models.LevelBreakdown{
			Category: category,
			PreRVU:   ParseNumber(field(row, 1)),
			PrePct:   field(row, 2),
			PostRVU:  ParseNumber(field(row, 3)),
			PostPct:  field(row, 4),
		})
	}
	return result
}
