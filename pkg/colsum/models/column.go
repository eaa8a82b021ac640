// Package models defines data structures for column extraction and yearly totals.
package models

// ColumnSum is the result of summing one column of a sheet.
type ColumnSum struct {
	// HeaderRow is the row holding the column title (1-based).
	HeaderRow int `json:"header_row"`
	// Column is the resolved column index (1-based).
	Column int `json:"column"`
	// Total is the sum of all numeric cells below the header, in source units.
	Total float64 `json:"total"`
	// NumericCells counts the cells that contributed to Total.
	NumericCells int `json:"numeric_cells"`
	// SkippedCells counts non-empty cells that were not numeric.
	SkippedCells int `json:"skipped_cells"`
}
