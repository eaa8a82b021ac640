// Package main provides the CLI entry point for mrvsum.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/mrvsum-go/internal/config"
	"github.com/ukaji3/mrvsum-go/internal/console"
	"github.com/ukaji3/mrvsum-go/internal/logging"
	"github.com/ukaji3/mrvsum-go/internal/report"
)

var (
	configPath string
	dataDir    string
	resultsDir string
	logLevel   string
	withXLSX   bool
	withPDF    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mrvsum",
		Short: "Sum annual CO₂ emissions from EU MRV workbooks",
		Long: `mrvsum sums the total CO₂ emissions column of each yearly EU MRV
publication, then writes a CSV table and a trend chart of the totals.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runReport,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML, YAML or JSON file overriding the built-in configuration")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory containing the yearly workbooks")
	rootCmd.Flags().StringVar(&resultsDir, "results-dir", "", "Directory receiving the table and chart")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&withXLSX, "xlsx", false, "Also write an xlsx summary with a native chart")
	rootCmd.Flags().BoolVar(&withPDF, "pdf", false, "Also write a one-page PDF report")

	rootCmd.AddCommand(newSumCmd())
	return rootCmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyOverrides(cfg)

	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())
	out := console.New(cmd.OutOrStdout())

	artifacts, err := report.New(cfg, out, logger).Run()
	if err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("report failed: %w", err)
	}

	out.Saved(artifacts.Paths()...)
	return nil
}

func applyOverrides(cfg *config.Config) {
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if withXLSX && cfg.Outputs.Workbook == "" {
		cfg.Outputs.Workbook = config.DefaultWorkbookFile
	}
	if withPDF && cfg.Outputs.PDF == "" {
		cfg.Outputs.PDF = config.DefaultPDFFile
	}
}
