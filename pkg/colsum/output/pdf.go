package output

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
)

// PDFOptions configures the one-page PDF report.
type PDFOptions struct {
	Header []string
	Chart  ChartOptions
}

// Core PDF fonts are cp1252 and have no subscript digits.
var pdfReplacer = strings.NewReplacer("₂", "2")

// WritePDF writes a one-page report with the totals table and, when
// chartPNG is set, the rendered trend chart below it.
func WritePDF(path string, series []models.YearTotal, chartPNG string, opts PDFOptions) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}
	header := opts.Header
	if len(header) == 0 {
		header = DefaultTableHeader
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfReplacer.Replace(s)) }

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, text(opts.Chart.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range header {
		pdf.CellFormat(45, 8, text(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, t := range series {
		pdf.CellFormat(45, 7, fmt.Sprintf("%d", t.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, t.Display(), "1", 1, "R", false, 0, "")
	}

	if chartPNG != "" {
		pdf.Ln(6)
		pdf.ImageOptions(chartPNG, 15, pdf.GetY(), 180, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
