package models

// Region represents cell coordinate bounds for a fixed extraction area.
type Region struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
	// Columns lists the 1-based columns taken from each row, in output order.
	// Columns may skip positions inside C1..C2.
	Columns []int `json:"columns"`
}

// Rows returns the number of rows the region spans.
func (r Region) Rows() int {
	if r.R2 < r.R1 {
		return 0
	}
	return r.R2 - r.R1 + 1
}

// Contains reports whether the 1-based cell (row, col) lies inside the bounds.
func (r Region) Contains(row, col int) bool {
	return row >= r.R1 && row <= r.R2 && col >= r.C1 && col <= r.C2
}
