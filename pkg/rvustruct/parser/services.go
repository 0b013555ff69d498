package parser

import (
	"strings"

	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
	"golang.org/x/text/cases"
)

// ExtractServices builds the per-service detail from a region whose columns are
// Department, Service, Avg Adj Total RVU and Count %.
//
// Department is only written on the first row of each group in the export, so it is
// forward-filled before any row is dropped. Rows are then dropped when Service is empty,
// when Service or Department mentions "total" in any casing, or when no Department
// precedes the row at all.
func ExtractServices(g Grid, region models.Region) []models.ServiceDetail {
	rows := SliceRegion(g, region)

	depts := make([]string, len(rows))
	for i, row := range rows {
		depts[i] = field(row, 0)
	}
	depts = ForwardFill(depts)

	result := make([]models.ServiceDetail, 0)
	for i, row := range rows {
		dept, service := depts[i], field(row, 1)
		if isEmpty(service) || isEmpty(dept) {
			continue
		}
		if containsTotal(service) || containsTotal(dept) {
			continue
		}
		result = append(result, models.ServiceDetail{
			Department:     dept,
			Service:        service,
			AvgAdjTotalRVU: ParseNumber(field(row, 2)),
			CountPct:       field(row, 3),
		})
	}
	return result
}

// ForwardFill returns a copy of values where each empty entry takes the most recent
// non-empty entry above it. Leading empties stay empty.
func ForwardFill(values []string) []string {
	out := make([]string, len(values))
	last := ""
	for i, v := range values {
		if !isEmpty(v) {
			last = v
		}
		out[i] = last
	}
	return out
}

func containsTotal(s string) bool {
	return strings.Contains(cases.Fold().String(s), "total")
}
