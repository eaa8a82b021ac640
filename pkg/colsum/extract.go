package colsum

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
	"github.com/ukaji3/mrvsum-go/pkg/colsum/parser"
	"github.com/xuri/excelize/v2"
)

// SumColumn opens the workbook at path, sums the configured column and
// closes the workbook before returning, whatever the outcome.
func SumColumn(path string, opts Options) (*models.ColumnSum, error) {
	if err := opts.Validate(); err != nil {
		return nil, NewExtractionError(path, opts, err)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewExtractionError(path, opts, ErrFileNotFound)
		}
		return nil, NewExtractionError(path, opts, err)
	}

	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewExtractionError(path, opts, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	return sum(f, path, opts)
}

// Sum sums the configured column of an already opened workbook.
// The caller keeps ownership of f.
func Sum(f *excelize.File, opts Options) (*models.ColumnSum, error) {
	if err := opts.Validate(); err != nil {
		return nil, NewExtractionError(f.Path, opts, err)
	}
	return sum(f, f.Path, opts)
}

func sum(f *excelize.File, path string, opts Options) (*models.ColumnSum, error) {
	result, err := parser.SumColumn(f, opts.Sheet, parser.HeaderQuery{
		Column:    opts.Column,
		Row:       opts.HeaderRow,
		Normalize: opts.Normalize,
	})
	if err == nil {
		return result, nil
	}

	var missing excelize.ErrSheetNotExist
	if errors.As(err, &missing) {
		err = fmt.Errorf("%w (available: %s)", ErrSheetNotFound, strings.Join(f.GetSheetList(), ", "))
	}
	return nil, NewExtractionError(path, opts, err)
}
