// Package report derives the dashboard view data from extracted tables.
package report

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
)

// MinLevelRVU is the pre-RC RVU a level must exceed to appear in the level comparison.
const MinLevelRVU = 0.01

// Build assembles the full report for t.
func Build(t *models.Tables) models.Report {
	return models.Report{
		Source:      t.Source,
		Metrics:     Totals(t.Departments),
		Comparison:  Comparison(t.Departments),
		Departments: Departments(t.Services),
		Levels:      LevelComparison(t.Levels),
		LevelTable:  t.Levels,
	}
}

// Totals sums pre and post RVU across departments, skipping nulls.
func Totals(depts []models.DepartmentSummary) models.Metrics {
	var pre, post stats.Float64Data
	for _, d := range depts {
		if v, ok := d.PreRVU.Float(); ok {
			pre = append(pre, v)
		}
		if v, ok := d.PostRVU.Float(); ok {
			post = append(post, v)
		}
	}

	m := models.Metrics{
		TotalPreRVU:  sum(pre),
		TotalPostRVU: sum(post),
	}
	if m.TotalPreRVU != 0 {
		m.ImprovementPct = (m.TotalPostRVU - m.TotalPreRVU) / m.TotalPreRVU * 100
	}
	return m
}

func sum(data stats.Float64Data) float64 {
	if data.Len() == 0 {
		return 0
	}
	s, err := stats.Sum(data)
	if err != nil {
		return 0
	}
	return s
}

// Comparison melts departments into one pre and one post point each:
// all pre points first, then all post points.
func Comparison(depts []models.DepartmentSummary) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, 2*len(depts))
	for _, d := range depts {
		points = append(points, models.SeriesPoint{Department: d.Department, Type: models.SeriesPreRC, RVU: d.PreRVU})
	}
	for _, d := range depts {
		points = append(points, models.SeriesPoint{Department: d.Department, Type: models.SeriesPostRC, RVU: d.PostRVU})
	}
	return points
}

// Departments returns the sorted distinct departments of the service detail.
func Departments(services []models.ServiceDetail) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, s := range services {
		if _, ok := seen[s.Department]; ok {
			continue
		}
		seen[s.Department] = struct{}{}
		names = append(names, s.Department)
	}
	sort.Strings(names)
	return names
}

// Drilldown returns the services of dept ordered by ascending average RVU.
// Services without a value sort last.
func Drilldown(services []models.ServiceDetail, dept string) []models.ServiceDetail {
	out := make([]models.ServiceDetail, 0)
	for _, s := range services {
		if s.Department == dept {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessNullsLast(out[i].AvgAdjTotalRVU, out[j].AvgAdjTotalRVU, false)
	})
	return out
}

// LevelComparison keeps levels whose pre-RC RVU exceeds MinLevelRVU, ordered by
// descending post-RC RVU.
func LevelComparison(levels []models.LevelBreakdown) []models.LevelBreakdown {
	out := make([]models.LevelBreakdown, 0)
	for _, l := range levels {
		if v, ok := l.PreRVU.Float(); ok && v > MinLevelRVU {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessNullsLast(out[i].PostRVU, out[j].PostRVU, true)
	})
	return out
}

func lessNullsLast(a, b models.Number, desc bool) bool {
	switch {
	case !a.Valid:
		return false
	case !b.Valid:
		return true
	case desc:
		return a.Value > b.Value
	default:
		return a.Value < b.Value
	}
}
