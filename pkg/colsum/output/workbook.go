package output

import (
	"fmt"

	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the sheet written by WriteWorkbook.
const SummarySheet = "Summary"

// WorkbookOptions configures the xlsx summary.
type WorkbookOptions struct {
	Header []string
	Chart  ChartOptions
}

// WriteWorkbook writes the totals table to an xlsx file together with a
// native line chart over the same cells.
func WriteWorkbook(path string, series []models.YearTotal, opts WorkbookOptions) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}
	header := opts.Header
	if len(header) == 0 {
		header = DefaultTableHeader
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}
	for i, t := range series {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{t.Year, t.Scaled().InexactFloat64()}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}

	lastRow := len(series) + 1
	style, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "B2", fmt.Sprintf("B%d", lastRow), style); err != nil {
		return err
	}

	if err := f.AddChart(SummarySheet, "D2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", SummarySheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", SummarySheet, lastRow),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", SummarySheet, lastRow),
				Marker:     excelize.ChartMarker{Symbol: "circle", Size: 6},
			},
		},
		Title: []excelize.RichTextRun{{Text: opts.Chart.Title}},
		XAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: opts.Chart.XLabel}},
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: opts.Chart.YLabel}},
		},
		Legend: excelize.ChartLegend{Position: "none"},
	}); err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
