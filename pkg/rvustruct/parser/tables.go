package parser

import "github.com/ukaji3/rvustruct/pkg/rvustruct/models"

// DataBounds returns the bounding box of non-empty cells as a 1-based region.
// ok is false when the grid holds no data at all.
func DataBounds(g Grid) (bounds models.Region, ok bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(g)
	if minRow < 0 {
		return models.Region{}, false
	}
	return models.Region{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// RegionInGrid reports whether the region starts within the grid's rows.
// Columns are not checked: excelize drops trailing blank cells from each row,
// so a short row is indistinguishable from a blank one.
func RegionInGrid(g Grid, region models.Region) bool {
	return region.R1 >= 1 && region.R1 <= len(g)
}

// RegionCells counts the non-empty cells the region would read.
// Zero means the region is blank or lies entirely outside the data.
func RegionCells(g Grid, region models.Region) int {
	count := 0
	for _, row := range SliceRegion(g, region) {
		for _, cell := range row {
			if !isEmpty(cell) {
				count++
			}
		}
	}
	return count
}

// findDataBounds finds the zero-based bounding box of non-empty cells.
func findDataBounds(rows Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isEmpty(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
