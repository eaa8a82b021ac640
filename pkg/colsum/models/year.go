package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ScaleExponent is the power of ten between source units and display units
// (tonnes to million tonnes).
const ScaleExponent = 6

// YearEntry maps a reporting year to its source workbook.
type YearEntry struct {
	// Year is the reporting year.
	Year int `json:"year" yaml:"year" toml:"year"`
	// File is the workbook file name, relative to the data directory.
	File string `json:"file" yaml:"file" toml:"file"`
	// Sheet overrides the sheet label. Empty means the year's numeral.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty" toml:"sheet,omitempty"`
}

// YearTotal is a successfully extracted total for one year.
type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// Scaled returns the total converted to display units.
func (t YearTotal) Scaled() decimal.Decimal {
	return decimal.NewFromFloat(t.Total).Shift(-ScaleExponent)
}

// Display returns the scaled total rounded to two decimals.
func (t YearTotal) Display() string {
	return t.Scaled().StringFixed(2)
}

// YearFailure records a year whose extraction failed.
type YearFailure struct {
	Year int
	Err  error
}

func (f YearFailure) Error() string {
	return fmt.Sprintf("year %d: %v", f.Year, f.Err)
}

func (f YearFailure) Unwrap() error {
	return f.Err
}
