package colsum

import (
	"errors"
	"fmt"

	"github.com/ukaji3/mrvsum-go/pkg/colsum/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates the header row does not contain the requested column.
var ErrColumnNotFound = parser.ErrColumnNotFound

// ExtractionError represents a failed column extraction for one file.
type ExtractionError struct {
	Path   string
	Sheet  string
	Column string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("column %q in %s (sheet %q): %v", e.Column, e.Path, e.Sheet, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path string, opts Options, err error) *ExtractionError {
	return &ExtractionError{
		Path:   path,
		Sheet:  opts.Sheet,
		Column: opts.Column,
		Err:    err,
	}
}
