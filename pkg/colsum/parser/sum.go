package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
	"github.com/xuri/excelize/v2"
)

// ErrColumnNotFound indicates the header row does not contain the requested column.
var ErrColumnNotFound = errors.New("column not found")

// HeaderQuery locates a column by its header text.
type HeaderQuery struct {
	// Column is the header text to look for.
	Column string
	// Row is the 1-based header row. Zero scans the first MaxHeaderScan rows.
	Row int
	// Normalize enables whitespace and Unicode-insensitive matching.
	Normalize bool
}

// SumColumn streams the rows of a sheet, resolves the queried column on
// the header row and sums every numeric cell below it. Only the current
// row is held in memory. A column without numeric cells sums to zero.
func SumColumn(f *excelize.File, sheetName string, q HeaderQuery) (*models.ColumnSum, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &models.ColumnSum{}
	col := -1
	rowNum := 0
	for rows.Next() {
		rowNum++ // Next advances one row at a time, including gaps

		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if col < 0 {
			if q.Row > 0 && rowNum < q.Row {
				continue
			}
			if idx, ok := FindColumn(cells, q.Column, q.Normalize); ok {
				col = idx
				result.HeaderRow = rowNum
				result.Column = idx + 1
				continue
			}
			if q.Row > 0 || rowNum >= MaxHeaderScan {
				return nil, ErrColumnNotFound
			}
			continue
		}

		if col >= len(cells) || cells[col] == "" {
			continue
		}
		if v, ok := ParseNumber(cells[col]); ok {
			result.Total += v
			result.NumericCells++
		} else {
			result.SkippedCells++
		}
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	if col < 0 {
		return nil, ErrColumnNotFound
	}
	return result, nil
}
