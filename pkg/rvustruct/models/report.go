package models

// Series labels used in the department comparison.
const (
	SeriesPreRC  = "Pre RC"
	SeriesPostRC = "Post RC"
)

// Metrics holds the headline totals.
type Metrics struct {
	TotalPreRVU  float64 `json:"total_pre_rvu"`
	TotalPostRVU float64 `json:"total_post_rvu"`
	// ImprovementPct is (post - pre) / pre * 100, or 0 when pre is 0.
	ImprovementPct float64 `json:"improvement_pct"`
}

// SeriesPoint is one bar in the department comparison.
type SeriesPoint struct {
	Department string `json:"department"`
	Type       string `json:"type"`
	RVU        Number `json:"rvu"`
}

// Report is the view data behind the dashboard.
type Report struct {
	Source      string           `json:"source"`
	Metrics     Metrics          `json:"metrics"`
	Comparison  []SeriesPoint    `json:"department_comparison"`
	Departments []string         `json:"departments"`
	Levels      []LevelBreakdown `json:"level_comparison"`
	LevelTable  []LevelBreakdown `json:"level_table"`
}
