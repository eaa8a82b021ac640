package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

const co2Column = "Total CO₂ emissions [m tonnes]"

// openFixture saves rows (keyed by 1-based row number) to a workbook and reopens it.
func openFixture(t *testing.T, sheetName string, rows map[int][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	for r, values := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r)
		values := values
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			t.Fatalf("Failed to set row %d: %v", r, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestSumColumn(t *testing.T) {
	f := openFixture(t, "2019", map[int][]interface{}{
		1: {"EU MRV publication"},
		3: {"ID", "Name", co2Column},
		4: {1, "A", 1000.0},
		5: {2, "B", "n/a"},
		6: {3, "C", 2000.0},
	})

	got, err := SumColumn(f, "2019", HeaderQuery{Column: co2Column, Row: 3})
	if err != nil {
		t.Fatalf("SumColumn failed: %v", err)
	}

	if got.Total != 3000.0 {
		t.Errorf("Expected total 3000, got %v", got.Total)
	}
	if got.HeaderRow != 3 || got.Column != 3 {
		t.Errorf("Expected header at row 3 column 3, got row %d column %d", got.HeaderRow, got.Column)
	}
	if got.NumericCells != 2 || got.SkippedCells != 1 {
		t.Errorf("Expected 2 numeric and 1 skipped cells, got %d and %d", got.NumericCells, got.SkippedCells)
	}
}

func TestSumColumnSkipsArtifacts(t *testing.T) {
	f := openFixture(t, "2020", map[int][]interface{}{
		3:  {"ID", co2Column, "Notes"},
		4:  {1, 10, "x"},
		5:  {2, "€ 5", "x"},
		6:  {3},
		8:  {5, 2.5},
		9:  {6, "Division by zero"},
		10: {7, -0.5, "last"},
	})

	got, err := SumColumn(f, "2020", HeaderQuery{Column: co2Column, Row: 3})
	if err != nil {
		t.Fatalf("SumColumn failed: %v", err)
	}
	if got.Total != 12.0 {
		t.Errorf("Expected total 12, got %v", got.Total)
	}
	if got.NumericCells != 3 {
		t.Errorf("Expected 3 numeric cells, got %d", got.NumericCells)
	}
}

func TestSumColumnIgnoresRowsAboveHeader(t *testing.T) {
	f := openFixture(t, "2021", map[int][]interface{}{
		1: {"ID", co2Column},
		2: {0, 999},
		3: {"ID", co2Column},
		4: {1, 1},
	})

	got, err := SumColumn(f, "2021", HeaderQuery{Column: co2Column, Row: 3})
	if err != nil {
		t.Fatalf("SumColumn failed: %v", err)
	}
	if got.Total != 1 {
		t.Errorf("Expected total 1, got %v", got.Total)
	}
}

func TestSumColumnNoNumericValues(t *testing.T) {
	f := openFixture(t, "2022", map[int][]interface{}{
		3: {"ID", co2Column},
		4: {1, "n/a"},
	})

	got, err := SumColumn(f, "2022", HeaderQuery{Column: co2Column, Row: 3})
	if err != nil {
		t.Fatalf("Expected zero total without error, got %v", err)
	}
	if got.Total != 0 {
		t.Errorf("Expected total 0, got %v", got.Total)
	}
}

func TestSumColumnNotFound(t *testing.T) {
	f := openFixture(t, "2023", map[int][]interface{}{
		3: {"ID", "Name", "Total fuel consumption [m tonnes]"},
		4: {1, "A", 1000.0},
	})

	tests := []struct {
		name string
		q    HeaderQuery
	}{
		{"configured row", HeaderQuery{Column: co2Column, Row: 3}},
		{"row past end of sheet", HeaderQuery{Column: co2Column, Row: 40}},
		{"auto detect", HeaderQuery{Column: co2Column}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SumColumn(f, "2023", tt.q)
			if !errors.Is(err, ErrColumnNotFound) {
				t.Errorf("Expected ErrColumnNotFound, got %v", err)
			}
		})
	}
}

func TestSumColumnDetectsHeaderRow(t *testing.T) {
	f := openFixture(t, "2024 Full ERs", map[int][]interface{}{
		1: {"Report"},
		5: {"IMO Number", co2Column},
		6: {1, 40.5},
		7: {2, 59.5},
	})

	got, err := SumColumn(f, "2024 Full ERs", HeaderQuery{Column: co2Column})
	if err != nil {
		t.Fatalf("SumColumn failed: %v", err)
	}
	if got.HeaderRow != 5 {
		t.Errorf("Expected detected header row 5, got %d", got.HeaderRow)
	}
	if got.Total != 100 {
		t.Errorf("Expected total 100, got %v", got.Total)
	}
}

func TestSumColumnMissingSheet(t *testing.T) {
	f := openFixture(t, "2018", map[int][]interface{}{
		3: {"ID", co2Column},
	})

	_, err := SumColumn(f, "2019", HeaderQuery{Column: co2Column, Row: 3})
	var target excelize.ErrSheetNotExist
	if !errors.As(err, &target) {
		t.Errorf("Expected ErrSheetNotExist, got %v", err)
	}
}
