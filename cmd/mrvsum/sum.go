package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/mrvsum-go/pkg/colsum"
	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
)

func newSumCmd() *cobra.Command {
	opts := colsum.DefaultOptions("")

	cmd := &cobra.Command{
		Use:   "sum [input.xlsx]",
		Short: "Sum one column of a single workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]

			// Validate input file exists
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			res, err := colsum.SumColumn(inputPath, opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			printSum(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "Sheet name (required)")
	cmd.Flags().StringVar(&opts.Column, "column", opts.Column, "Header text of the column to sum")
	cmd.Flags().IntVar(&opts.HeaderRow, "header-row", opts.HeaderRow, "1-based header row, 0 to detect it")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "Ignore surrounding whitespace and Unicode variants in headers")
	_ = cmd.MarkFlagRequired("sheet")

	return cmd
}

func printSum(cmd *cobra.Command, res *models.ColumnSum) {
	total := models.YearTotal{Total: res.Total}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "header row:    %d\n", res.HeaderRow)
	fmt.Fprintf(w, "column:        %d\n", res.Column)
	fmt.Fprintf(w, "numeric cells: %d\n", res.NumericCells)
	fmt.Fprintf(w, "skipped cells: %d\n", res.SkippedCells)
	fmt.Fprintf(w, "total:         %v\n", res.Total)
	fmt.Fprintf(w, "scaled (1e6):  %s\n", total.Display())
}
