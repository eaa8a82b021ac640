// Package report drives yearly column extraction and writes the summary artifacts.
package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ukaji3/mrvsum-go/internal/config"
	"github.com/ukaji3/mrvsum-go/pkg/colsum"
	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
	"github.com/ukaji3/mrvsum-go/pkg/colsum/output"
)

// ErrEmptyResultSet indicates that extraction failed for every configured year.
var ErrEmptyResultSet = errors.New("no year was extracted successfully")

// SumFunc extracts a column total from one workbook.
type SumFunc func(path string, opts colsum.Options) (*models.ColumnSum, error)

// Console receives per-year progress markers.
type Console interface {
	LogInfo(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})
	LogError(format string, a ...interface{})
}

// Summary holds the outcome of one pass over the configured years.
type Summary struct {
	// Totals are the successful years, in configuration order.
	Totals []models.YearTotal
	// Failures are the skipped years, in configuration order.
	Failures []models.YearFailure
}

// Artifacts lists the files written by a run.
type Artifacts struct {
	Table    string
	Chart    string
	Workbook string
	PDF      string
}

// Paths returns the written artifact paths in write order.
func (a *Artifacts) Paths() []string {
	paths := []string{a.Table, a.Chart}
	if a.Workbook != "" {
		paths = append(paths, a.Workbook)
	}
	if a.PDF != "" {
		paths = append(paths, a.PDF)
	}
	return paths
}

// Reporter runs the extractor once per configured year.
type Reporter struct {
	cfg     *config.Config
	sum     SumFunc
	console Console
	logger  *slog.Logger
}

// Option customizes a Reporter.
type Option func(*Reporter)

// WithSumFunc replaces the workbook extractor.
func WithSumFunc(fn SumFunc) Option {
	return func(r *Reporter) {
		r.sum = fn
	}
}

// New creates a Reporter. A nil logger discards diagnostics.
func New(cfg *config.Config, console Console, logger *slog.Logger, opts ...Option) *Reporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Reporter{
		cfg:     cfg,
		sum:     colsum.SumColumn,
		console: console,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run collects all years and writes the artifacts.
func (r *Reporter) Run() (*Artifacts, error) {
	return r.Write(r.Collect())
}

// Collect extracts each configured year in order. A failed year is
// reported and skipped; it never stops the pass.
func (r *Reporter) Collect() *Summary {
	summary := &Summary{}
	for _, entry := range r.cfg.Years {
		path := r.cfg.Path(entry)
		opts := r.cfg.ExtractOptions(entry)

		r.console.LogInfo("Processing %d ...", entry.Year)
		r.logger.Debug("extracting column",
			slog.Int("year", entry.Year),
			slog.String("path", path),
			slog.String("sheet", opts.Sheet))

		res, err := r.sum(path, opts)
		if err != nil {
			r.console.LogError("Failed to read %d: %v", entry.Year, err)
			r.logger.Warn("extraction failed",
				slog.Int("year", entry.Year),
				slog.String("path", path),
				slog.String("error", err.Error()))
			summary.Failures = append(summary.Failures, models.YearFailure{Year: entry.Year, Err: err})
			continue
		}

		total := models.YearTotal{Year: entry.Year, Total: res.Total}
		summary.Totals = append(summary.Totals, total)
		r.console.LogSuccess("%d: %s %s", entry.Year, total.Display(), r.cfg.Labels.Unit)
		r.logger.Debug("column summed",
			slog.Int("year", entry.Year),
			slog.Int("header_row", res.HeaderRow),
			slog.Int("column", res.Column),
			slog.Int("numeric_cells", res.NumericCells),
			slog.Int("skipped_cells", res.SkippedCells),
			slog.Float64("total", res.Total))
	}
	return summary
}

// Write emits the table, then the chart, then any optional artifacts.
// It fails with ErrEmptyResultSet when no year succeeded.
func (r *Reporter) Write(summary *Summary) (*Artifacts, error) {
	if len(summary.Totals) == 0 {
		return nil, fmt.Errorf("%w: %d of %d years failed", ErrEmptyResultSet, len(summary.Failures), len(r.cfg.Years))
	}

	if err := os.MkdirAll(r.cfg.ResultsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	labels := r.cfg.Labels
	header := []string{"Year", labels.TotalColumn}
	chartOpts := output.ChartOptions{
		Title:  labels.Title,
		XLabel: labels.XAxis,
		YLabel: labels.YAxis,
	}

	artifacts := &Artifacts{
		Table: r.cfg.ResultPath(r.cfg.Outputs.Table),
		Chart: r.cfg.ResultPath(r.cfg.Outputs.Chart),
	}
	if err := output.WriteCSVFile(artifacts.Table, header, summary.Totals); err != nil {
		return nil, fmt.Errorf("failed to write table: %w", err)
	}
	r.logger.Info("table written", slog.String("path", artifacts.Table), slog.Int("rows", len(summary.Totals)))

	if err := output.RenderChart(artifacts.Chart, summary.Totals, chartOpts); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	r.logger.Info("chart written", slog.String("path", artifacts.Chart))

	if name := r.cfg.Outputs.Workbook; name != "" {
		artifacts.Workbook = r.cfg.ResultPath(name)
		if err := output.WriteWorkbook(artifacts.Workbook, summary.Totals, output.WorkbookOptions{
			Header: header,
			Chart:  chartOpts,
		}); err != nil {
			return nil, fmt.Errorf("failed to write workbook: %w", err)
		}
		r.logger.Info("workbook written", slog.String("path", artifacts.Workbook))
	}

	if name := r.cfg.Outputs.PDF; name != "" {
		artifacts.PDF = r.cfg.ResultPath(name)
		if err := output.WritePDF(artifacts.PDF, summary.Totals, artifacts.Chart, output.PDFOptions{
			Header: header,
			Chart:  chartOpts,
		}); err != nil {
			return nil, fmt.Errorf("failed to write pdf: %w", err)
		}
		r.logger.Info("pdf written", slog.String("path", artifacts.PDF))
	}

	return artifacts, nil
}
