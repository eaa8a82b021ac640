// Package output writes yearly totals as tables, charts and reports.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
)

// ErrEmptySeries indicates there are no totals to write.
var ErrEmptySeries = errors.New("no yearly totals to write")

// DefaultTableHeader is the header row of the totals table.
var DefaultTableHeader = []string{"Year", "Total_CO2_Mt"}

// WriteCSV writes one row per total, in series order, below header.
// The scaled total is written as its shortest exact decimal form.
func WriteCSV(w io.Writer, header []string, series []models.YearTotal) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, t := range series {
		record := []string{strconv.Itoa(t.Year), t.Scaled().String()}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the totals table to path, replacing any existing file.
func WriteCSVFile(path string, header []string, series []models.YearTotal) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteCSV(file, header, series); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
