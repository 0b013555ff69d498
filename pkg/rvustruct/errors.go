package rvustruct

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnreadable indicates the input file exists but cannot be opened.
var ErrUnreadable = errors.New("file unreadable")

// ErrInvalidFormat indicates the input file could not be parsed as a grid.
var ErrInvalidFormat = errors.New("invalid revenue export format")

// ErrRegionOutOfBounds indicates a layout region starts past the end of the grid,
// which usually means the export layout no longer matches the configured one.
var ErrRegionOutOfBounds = errors.New("region out of bounds")

// ErrInvalidLayout indicates the layout configuration is malformed.
var ErrInvalidLayout = errors.New("invalid layout")

// ExtractionError represents an error while deriving one table.
type ExtractionError struct {
	Table     string // "departments", "levels", "services"
	Component string // "layout", "bounds"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in table %q (%s): %v", e.Table, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(table, component string, err error) *ExtractionError {
	return &ExtractionError{
		Table:     table,
		Component: component,
		Err:       err,
	}
}
