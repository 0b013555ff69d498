package models

// DepartmentSummary is one department's average RVU before and after RC.
type DepartmentSummary struct {
	// Department is the department name (never empty, never "Grand Total").
	Department string `json:"department"`
	// PreRVU is the RVU before the methodology change.
	PreRVU Number `json:"pre_rvu"`
	// PostRVU is the RVU after the methodology change.
	PostRVU Number `json:"post_rvu"`
}

// LevelBreakdown is one E&M level or procedure category row.
type LevelBreakdown struct {
	// Category is the level or procedure category label.
	Category string `json:"category"`
	// PreRVU is the RVU before the methodology change.
	PreRVU Number `json:"pre_rvu"`
	// PrePct is the pre-RC share, kept as exported (e.g. "12.5%").
	PrePct string `json:"pre_pct"`
	// PostRVU is the RVU after the methodology change.
	PostRVU Number `json:"post_rvu"`
	// PostPct is the post-RC share, kept as exported.
	PostPct string `json:"post_pct"`
}

// ServiceDetail is one service line inside a department.
type ServiceDetail struct {
	// Department is the owning department, forward-filled from the rows above.
	Department string `json:"department"`
	// Service is the service or level name.
	Service string `json:"service"`
	// AvgAdjTotalRVU is the average adjusted total RVU.
	AvgAdjTotalRVU Number `json:"avg_adj_total_rvu"`
	// CountPct is the raw count percentage text.
	CountPct string `json:"count_pct"`
}

// Tables is the snapshot derived from one load of the revenue export.
// A Tables value is shared by every caller of a cached load and must not be modified.
type Tables struct {
	// Source is the file name the tables were read from (no path).
	Source string `json:"source"`
	// Layout is the version of the layout used for extraction.
	Layout string `json:"layout"`
	// Departments holds the department totals.
	Departments []DepartmentSummary `json:"departments"`
	// Levels holds the E&M level and procedure category breakdown.
	Levels []LevelBreakdown `json:"levels"`
	// Services holds the per-service drilldown.
	Services []ServiceDetail `json:"services"`
}
