// Package testutil builds revenue export fixtures laid out like the revenue1 export.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// Fixture dimensions: the services region ends on row 73 in column J.
const (
	FixtureRows = 73
	FixtureCols = 10
)

// Departments written to the summary band, in order. A "Grand Total" row follows them.
var Departments = []string{"Cardiology", "Dermatology", "Family Medicine", "Neurology", "Orthopedics", "Pediatrics"}

// NewGrid returns an empty rows x cols grid.
func NewGrid(rows, cols int) [][]string {
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
	}
	return grid
}

// Set writes value at the 1-based cell (row, col), growing the grid when needed.
func Set(grid [][]string, row, col int, value string) [][]string {
	for len(grid) < row {
		grid = append(grid, nil)
	}
	r := grid[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	grid[row-1] = r
	return grid
}

// RevenueGrid returns a complete export:
//   - rows 3-8: six E&M levels in A-E, row 9 blank, row 10 a level with "N/A" values
//   - rows 25-31: six departments plus "Grand Total" in A, B and D (C holds a distractor)
//   - rows 3-11: services in G-J, Department only on the first row of each group of three
//     (Cardiology, Dermatology, Neurology), followed by subtotal rows
func RevenueGrid() [][]string {
	g := NewGrid(FixtureRows, FixtureCols)

	g = Set(g, 1, 1, "E&M Level Breakdown")
	g = Set(g, 2, 1, "Category")
	g = Set(g, 2, 7, "Department")

	levels := [][]string{
		{"99211", "0.18", "2.1%", "0.25", "2.9%"},
		{"99212", "0.70", "10.4%", "0.93", "11.0%"},
		{"99213", "1.30", "35.2%", "1.30", "30.1%"},
		{"99214", "1.92", "40.0%", "1.92", "44.3%"},
		{"99215", "2.80", "12.3%", "2.80", "11.7%"},
		{"Procedures", "0.005", "0.0%", "0.40", "0.0%"},
	}
	for i, l := range levels {
		for j, v := range l {
			g = Set(g, 3+i, 1+j, v)
		}
	}
	for j, v := range []string{"Telehealth", "N/A", "", "", "n/a"} {
		g = Set(g, 10, 1+j, v)
	}

	pre := []string{"3.10", "2.05", "1.75", "4.20", "3.60", "1.20"}
	post := []string{"3.40", "2.00", "1.95", "N/A", "3.90", "1.50"}
	for i, d := range Departments {
		g = Set(g, 25+i, 1, d)
		g = Set(g, 25+i, 2, pre[i])
		g = Set(g, 25+i, 3, "ignored")
		g = Set(g, 25+i, 4, post[i])
	}
	g = Set(g, 31, 1, "Grand Total")
	g = Set(g, 31, 2, "15.90")
	g = Set(g, 31, 4, "12.75")

	services := [][]string{
		{"Cardiology", "Level 3", "1.10", "20%"},
		{"", "Level 4", "1.90", "50%"},
		{"", "Level 5", "2.70", "30%"},
		{"Dermatology", "Level 3", "1.00", "60%"},
		{"", "Level 4", "N/A", "30%"},
		{"", "Biopsy", "0.60", "10%"},
		{"Neurology", "Level 4", "2.00", "70%"},
		{"", "Level 5", "3.00", "30%"},
		{"", "Neurology TOTAL", "2.30", "100%"},
		{"Grand Total", "All services", "1.80", "100%"},
	}
	for i, s := range services {
		for j, v := range s {
			g = Set(g, 3+i, 7+j, v)
		}
	}
	return g
}

// WriteCSV writes grid to name inside a temporary directory and returns the path.
func WriteCSV(t testing.TB, grid [][]string, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(grid); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
