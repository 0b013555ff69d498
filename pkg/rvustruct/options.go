// Package rvustruct extracts the pre/post-RC RVU tables from a fixed-layout revenue export.
package rvustruct

import "log/slog"

// Options configures extraction behavior.
type Options struct {
	// Layout holds the fixed coordinates of each table.
	// If Version is empty, DefaultLayout is used.
	Layout Layout
	// Strict specifies whether a region without any data is an error.
	// If nil, defaults to true. When false the table is returned empty and a warning is logged.
	Strict *bool
	// Logger receives diagnostics. If nil, slog.Default is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Layout: DefaultLayout(),
	}
}

// IsStrict returns whether out-of-bounds regions fail the extraction.
func (o Options) IsStrict() bool {
	if o.Strict != nil {
		return *o.Strict
	}
	return true
}

func (o Options) layout() Layout {
	if o.Layout.Version == "" {
		return DefaultLayout()
	}
	return o.Layout
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
