package parser

import "github.com/ukaji3/rvustruct/pkg/rvustruct/models"

// GrandTotalLabel is the aggregate row label excluded from the department summary.
const GrandTotalLabel = "Grand Total"

// ExtractDepartments builds the department summary from a region whose columns are
// Department, Pre-RC RVU and Post-RC RVU.
func ExtractDepartments(g Grid, region models.Region) []models.DepartmentSummary {
	result := make([]models.DepartmentSummary, 0)
	for _, row := range SliceRegion(g, region) {
		dept := field(row, 0)
		if isEmpty(dept) || dept == GrandTotalLabel {
			continue
		}
		result = append(result, models.DepartmentSummary{
			Department: dept,
			PreRVU:     ParseNumber(field(row, 1)),
			PostRVU:    ParseNumber(field(row, 2)),
		})
	}
	return result
}
