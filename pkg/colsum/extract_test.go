package colsum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheetName string, rows ...[]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := values
		require.NoError(t, f.SetSheetRow(sheetName, cell, &values))
	}

	path := filepath.Join(t.TempDir(), sheetName+".xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSumColumn(t *testing.T) {
	path := writeWorkbook(t, "2019",
		[]interface{}{"EU MRV"},
		[]interface{}{},
		[]interface{}{"ID", "Name", DefaultColumn},
		[]interface{}{1, "A", 1000.0},
		[]interface{}{2, "B", "n/a"},
		[]interface{}{3, "C", 2000.0},
	)

	got, err := SumColumn(path, DefaultOptions("2019"))
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got.Total)
	assert.Equal(t, 3, got.Column)
	assert.Equal(t, 2, got.NumericCells)
}

func TestSumColumnErrors(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a workbook"), 0644))

	valid := writeWorkbook(t, "2020",
		[]interface{}{},
		[]interface{}{},
		[]interface{}{"ID", "Name"},
		[]interface{}{1, "A"},
	)

	tests := []struct {
		name     string
		path     string
		opts     Options
		expected error
	}{
		{"missing file", filepath.Join(dir, "missing.xlsx"), DefaultOptions("2020"), ErrFileNotFound},
		{"corrupt file", corrupt, DefaultOptions("2020"), ErrInvalidFormat},
		{"missing sheet", valid, DefaultOptions("2024 Full ERs"), ErrSheetNotFound},
		{"missing column", valid, DefaultOptions("2020"), ErrColumnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumColumn(tt.path, tt.opts)
			assert.Nil(t, got)
			require.ErrorIs(t, err, tt.expected)

			var extractionErr *ExtractionError
			require.ErrorAs(t, err, &extractionErr)
			assert.Equal(t, tt.path, extractionErr.Path)
			assert.Equal(t, tt.opts.Sheet, extractionErr.Sheet)
			assert.Equal(t, DefaultColumn, extractionErr.Column)
		})
	}
}

func TestSumColumnSheetNotFoundListsSheets(t *testing.T) {
	path := writeWorkbook(t, "2023", []interface{}{"ID"})

	_, err := SumColumn(path, DefaultOptions("2024"))
	require.ErrorIs(t, err, ErrSheetNotFound)
	assert.Contains(t, err.Error(), "available: 2023")
}

func TestSumColumnNormalizedHeader(t *testing.T) {
	path := writeWorkbook(t, "2018",
		[]interface{}{},
		[]interface{}{},
		[]interface{}{"ID", " Total CO2 emissions [m tonnes] "},
		[]interface{}{1, 5},
	)

	_, err := SumColumn(path, DefaultOptions("2018"))
	require.ErrorIs(t, err, ErrColumnNotFound)

	opts := DefaultOptions("2018")
	opts.Normalize = true
	got, err := SumColumn(path, opts)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Total)
}

func TestSumOpenWorkbook(t *testing.T) {
	path := writeWorkbook(t, "2021",
		[]interface{}{"ID", DefaultColumn},
		[]interface{}{1, 7},
	)
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	opts := DefaultOptions("2021")
	opts.HeaderRow = 1
	got, err := Sum(f, opts)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Total)

	// The workbook stays usable after Sum.
	again, err := Sum(f, opts)
	require.NoError(t, err)
	assert.Equal(t, got.Total, again.Total)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions("2019")
	assert.NoError(t, opts.Validate())
	assert.Equal(t, 4, opts.DataStartRow())

	opts.HeaderRow = 0
	assert.Equal(t, 0, opts.DataStartRow())

	assert.Error(t, Options{Column: DefaultColumn}.Validate())
	assert.Error(t, Options{Sheet: "2019"}.Validate())
	assert.Error(t, Options{Sheet: "2019", Column: "x", HeaderRow: -1}.Validate())
}
