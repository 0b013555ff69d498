package rvustruct

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/parser"
	"gopkg.in/yaml.v2"
)

// DefaultLayoutVersion names the layout of the revenue1 export.
const DefaultLayoutVersion = "revenue1-v1"

// Column counts each table reads from its region.
const (
	departmentColumns = 3
	levelColumns      = 5
	serviceColumns    = 4
)

// RegionSpec locates one table in the export.
type RegionSpec struct {
	// Range is the A1 range holding the table, e.g. "A25:D31".
	Range string `yaml:"range" json:"range" validate:"required"`
	// Columns lists the column letters read from each row, in field order.
	// Empty means every column of Range.
	Columns []string `yaml:"columns,omitempty" json:"columns,omitempty" validate:"dive,required,alpha"`
}

// Layout is a versioned set of fixed table coordinates. The coordinates are a contract
// with one export's exact layout; they are never inferred from content.
type Layout struct {
	Version     string     `yaml:"version" json:"version" validate:"required"`
	Sheet       string     `yaml:"sheet,omitempty" json:"sheet,omitempty"`
	Departments RegionSpec `yaml:"departments" json:"departments"`
	Levels      RegionSpec `yaml:"levels" json:"levels"`
	Services    RegionSpec `yaml:"services" json:"services"`
}

// Regions is a resolved Layout.
type Regions struct {
	Departments models.Region
	Levels      models.Region
	Services    models.Region
}

// DefaultLayout returns the coordinates of the revenue1 export:
// department totals in rows 25-31, the E&M breakdown in rows 3-22 and the
// per-service detail in columns G-J of rows 3-73.
func DefaultLayout() Layout {
	return Layout{
		Version: DefaultLayoutVersion,
		Departments: RegionSpec{
			Range:   "A25:D31",
			Columns: []string{"A", "B", "D"},
		},
		Levels: RegionSpec{
			Range: "A3:E22",
		},
		Services: RegionSpec{
			Range: "G3:J73",
		},
	}
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if _, err := layout.Resolve(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

var validate = validator.New()

// Resolve validates the layout and converts each RegionSpec into a Region.
func (l Layout) Resolve() (Regions, error) {
	if err := validate.Struct(l); err != nil {
		return Regions{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	var regions Regions
	specs := []struct {
		table   string
		spec    RegionSpec
		columns int
		dst     *models.Region
	}{
		{"departments", l.Departments, departmentColumns, &regions.Departments},
		{"levels", l.Levels, levelColumns, &regions.Levels},
		{"services", l.Services, serviceColumns, &regions.Services},
	}

	for _, s := range specs {
		region, err := parser.ParseRegion(s.spec.Range, s.spec.Columns)
		if err != nil {
			return Regions{}, NewExtractionError(s.table, "layout", fmt.Errorf("%w: %v", ErrInvalidLayout, err))
		}
		if len(region.Columns) != s.columns {
			return Regions{}, NewExtractionError(s.table, "layout",
				fmt.Errorf("%w: %d columns, want %d", ErrInvalidLayout, len(region.Columns), s.columns))
		}
		*s.dst = region
	}
	return regions, nil
}
