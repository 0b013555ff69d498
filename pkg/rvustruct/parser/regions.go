package parser

import "github.com/ukaji3/rvustruct/pkg/rvustruct/models"

// SliceRegion returns the region's rows restricted to its column list.
// Each returned row has exactly len(region.Columns) cells. Rows past the end of
// the grid are not returned; missing cells in ragged rows are "".
func SliceRegion(g Grid, region models.Region) [][]string {
	var out [][]string
	for r := region.R1; r <= region.R2 && r <= len(g); r++ {
		row := make([]string, len(region.Columns))
		for i, c := range region.Columns {
			row[i] = g.Cell(r-1, c-1)
		}
		out = append(out, row)
	}
	return out
}

// field returns row[i], or "" when the row is too short.
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
