// Package colsum sums a named column of an xlsx sheet without loading the
// whole workbook into memory.
package colsum

import (
	"errors"
)

// DefaultColumn is the EU MRV column holding per-ship CO₂ emissions.
const DefaultColumn = "Total CO₂ emissions [m tonnes]"

// DefaultHeaderRow is the row carrying column titles in EU MRV publications.
const DefaultHeaderRow = 3

// Options configures a column extraction.
type Options struct {
	// Sheet is the name of the sheet to read.
	Sheet string
	// Column is the header text of the column to sum.
	Column string
	// HeaderRow is the 1-based row containing the headers.
	// Zero searches the leading rows for Column.
	HeaderRow int
	// Normalize trims and Unicode-folds header text before comparing.
	// Matching is exact by default.
	Normalize bool
}

// DefaultOptions returns options for the given sheet with the EU MRV column and header row.
func DefaultOptions(sheet string) Options {
	return Options{
		Sheet:     sheet,
		Column:    DefaultColumn,
		HeaderRow: DefaultHeaderRow,
	}
}

// DataStartRow returns the first row summed, or 0 when the header row is detected.
func (o Options) DataStartRow() int {
	if o.HeaderRow == 0 {
		return 0
	}
	return o.HeaderRow + 1
}

// Validate checks that the options can address a column.
func (o Options) Validate() error {
	switch {
	case o.Sheet == "":
		return errors.New("sheet name is required")
	case o.Column == "":
		return errors.New("column name is required")
	case o.HeaderRow < 0:
		return errors.New("header row must not be negative")
	}
	return nil
}
