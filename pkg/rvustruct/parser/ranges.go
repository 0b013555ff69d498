package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
	"github.com/xuri/excelize/v2"
)

// ParseRegion parses a range such as "A25:D31" or "$G$3:$J$73" together with the
// column letters to take from it. When columns is empty every column of the range is
// taken in order.
func ParseRegion(rangeStr string, columns []string) (models.Region, error) {
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.Region{}, fmt.Errorf("range %q: expected START:END", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Region{}, fmt.Errorf("range %q: %w", rangeStr, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Region{}, fmt.Errorf("range %q: %w", rangeStr, err)
	}
	if endRow < startRow || endCol < startCol {
		return models.Region{}, fmt.Errorf("range %q: end precedes start", rangeStr)
	}

	region := models.Region{R1: startRow, C1: startCol, R2: endRow, C2: endCol}

	if len(columns) == 0 {
		for c := startCol; c <= endCol; c++ {
			region.Columns = append(region.Columns, c)
		}
		return region, nil
	}

	for _, name := range columns {
		col, err := excelize.ColumnNameToNumber(strings.TrimSpace(name))
		if err != nil {
			return models.Region{}, fmt.Errorf("range %q: column %q: %w", rangeStr, name, err)
		}
		if col < startCol || col > endCol {
			return models.Region{}, fmt.Errorf("range %q: column %s lies outside the range", rangeStr, name)
		}
		region.Columns = append(region.Columns, col)
	}
	return region, nil
}

// FormatRegion renders the region bounds in A1 notation.
func FormatRegion(region models.Region) string {
	start, _ := excelize.CoordinatesToCellName(region.C1, region.R1)
	end, _ := excelize.CoordinatesToCellName(region.C2, region.R2)
	return fmt.Sprintf("%s:%s", start, end)
}
