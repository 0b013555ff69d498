package rvustruct

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/parser"
)

// Extract reads the revenue export at path and derives its three tables.
//
// Malformed cells never fail the extraction: non-numeric values in numeric columns
// become null. The call fails when the file is missing or unreadable, when the layout
// is invalid, and, in strict mode, when a region starts below the last row of the grid.
// A blank region inside the grid yields an empty table and a warning.
func Extract(path string, opts Options) (*models.Tables, error) {
	logger := opts.logger()
	layout := opts.layout()

	regions, err := layout.Resolve()
	if err != nil {
		return nil, err
	}

	grid, err := parser.ReadGrid(path, layout.Sheet)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
		default:
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
		}
	}

	attrs := []any{
		slog.String("file", path),
		slog.String("layout", layout.Version),
		slog.Int("rows", len(grid)),
		slog.Int("cols", grid.Width()),
	}
	if bounds, ok := parser.DataBounds(grid); ok {
		attrs = append(attrs, slog.String("data", parser.FormatRegion(bounds)))
	}
	logger.Debug("grid loaded", attrs...)

	for _, check := range []struct {
		table  string
		region models.Region
	}{
		{"departments", regions.Departments},
		{"levels", regions.Levels},
		{"services", regions.Services},
	} {
		where := parser.FormatRegion(check.region)
		if !parser.RegionInGrid(grid, check.region) {
			if opts.IsStrict() {
				return nil, NewExtractionError(check.table, "bounds",
					fmt.Errorf("%w: %s starts past row %d", ErrRegionOutOfBounds, where, len(grid)))
			}
			logger.Warn("region out of bounds",
				slog.String("table", check.table),
				slog.String("range", where),
				slog.Int("rows", len(grid)),
				slog.String("file", path))
			continue
		}
		if parser.RegionCells(grid, check.region) == 0 {
			logger.Warn("region holds no data",
				slog.String("table", check.table),
				slog.String("range", where),
				slog.String("file", path))
		}
	}

	tables := &models.Tables{
		Source:      filepath.Base(path),
		Layout:      layout.Version,
		Departments: parser.ExtractDepartments(grid, regions.Departments),
		Levels:      parser.ExtractLevels(grid, regions.Levels),
		Services:    parser.ExtractServices(grid, regions.Services),
	}

	logger.Info("revenue export extracted",
		slog.String("file", path),
		slog.Int("departments", len(tables.Departments)),
		slog.Int("levels", len(tables.Levels)),
		slog.Int("services", len(tables.Services)))

	return tables, nil
}
