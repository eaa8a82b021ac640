// Package config holds the compiled-in report configuration and the
// optional file overlay.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/ukaji3/mrvsum-go/pkg/colsum"
	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
	"gopkg.in/yaml.v3"
)

// Config is the full report configuration.
type Config struct {
	DataDir    string             `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	ResultsDir string             `json:"results_dir" yaml:"results_dir" toml:"results_dir"`
	Column     string             `json:"column" yaml:"column" toml:"column"`
	HeaderRow  int                `json:"header_row" yaml:"header_row" toml:"header_row"`
	Normalize  bool               `json:"normalize" yaml:"normalize" toml:"normalize"`
	Years      []models.YearEntry `json:"years" yaml:"years" toml:"years"`
	Outputs    OutputConfig       `json:"outputs" yaml:"outputs" toml:"outputs"`
	Labels     LabelConfig        `json:"labels" yaml:"labels" toml:"labels"`
	Logging    LoggingConfig      `json:"logging" yaml:"logging" toml:"logging"`
}

// OutputConfig names the artifacts written to the results directory.
// Workbook and PDF are skipped when empty.
type OutputConfig struct {
	Table    string `json:"table" yaml:"table" toml:"table"`
	Chart    string `json:"chart" yaml:"chart" toml:"chart"`
	Workbook string `json:"workbook" yaml:"workbook" toml:"workbook"`
	PDF      string `json:"pdf" yaml:"pdf" toml:"pdf"`
}

// LabelConfig holds the fixed texts of the table, chart and console output.
type LabelConfig struct {
	TotalColumn string `json:"total_column" yaml:"total_column" toml:"total_column"`
	Unit        string `json:"unit" yaml:"unit" toml:"unit"`
	Title       string `json:"title" yaml:"title" toml:"title"`
	XAxis       string `json:"x_axis" yaml:"x_axis" toml:"x_axis"`
	YAxis       string `json:"y_axis" yaml:"y_axis" toml:"y_axis"`
}

// LoggingConfig configures the diagnostic logger.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Format string `json:"format" yaml:"format" toml:"format"`
}

// Default file names used when an output is enabled without a name.
const (
	DefaultWorkbookFile = "EU_MRV_CO2_Summary.xlsx"
	DefaultPDFFile      = "EU_MRV_CO2_Report.pdf"
)

// Default returns the compiled-in EU MRV configuration.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		ResultsDir: "results",
		Column:     colsum.DefaultColumn,
		HeaderRow:  colsum.DefaultHeaderRow,
		Years: []models.YearEntry{
			{Year: 2018, File: "2018-v272-05072025-EU MRV Publication of information.xlsx"},
			{Year: 2019, File: "2019-v227-28052025-EU MRV Publication of information.xlsx"},
			{Year: 2020, File: "2020-v207-23082025-EU MRV Publication of information.xlsx"},
			{Year: 2021, File: "2021-v214-30042025-EU MRV Publication of information.xlsx"},
			{Year: 2022, File: "2022-v238-01082025-EU MRV Publication of information.xlsx"},
			{Year: 2023, File: "2023-v69-29082025-EU MRV Publication of information.xlsx"},
			{Year: 2024, File: "2024-v55-30082025-EU MRV Publication of information.xlsx", Sheet: "2024 Full ERs"},
		},
		Outputs: OutputConfig{
			Table: "EU_MRV_CO2_Totals.csv",
			Chart: "EU_MRV_CO2_Trends.png",
		},
		Labels: LabelConfig{
			TotalColumn: "Total_CO2_Mt",
			Unit:        "Mt CO₂",
			Title:       "Annual Total CO₂ Emissions in EU MRV (2018–2024)",
			XAxis:       "Year",
			YAxis:       "CO₂ Emissions [million tonnes]",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// fileConfig is the on-disk form of Config. Absent keys keep their defaults.
type fileConfig struct {
	DataDir    string             `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	ResultsDir string             `json:"results_dir" yaml:"results_dir" toml:"results_dir"`
	Column     string             `json:"column" yaml:"column" toml:"column"`
	HeaderRow  *int               `json:"header_row" yaml:"header_row" toml:"header_row"`
	Normalize  *bool              `json:"normalize" yaml:"normalize" toml:"normalize"`
	Years      []models.YearEntry `json:"years" yaml:"years" toml:"years"`
	Outputs    OutputConfig       `json:"outputs" yaml:"outputs" toml:"outputs"`
	Labels     LabelConfig        `json:"labels" yaml:"labels" toml:"labels"`
	Logging    LoggingConfig      `json:"logging" yaml:"logging" toml:"logging"`
}

// Load reads a TOML, YAML or JSON file over the defaults.
// A year list in the file replaces the default list and keeps file order.
func Load(filePath string) (*Config, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		if err := toml.Unmarshal(fileData, &fc); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &fc); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &fc); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", filepath.Ext(filePath))
	}

	cfg := Default()
	fc.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}
	return cfg, nil
}

func (fc *fileConfig) applyTo(cfg *Config) {
	setString(&cfg.DataDir, fc.DataDir)
	setString(&cfg.ResultsDir, fc.ResultsDir)
	setString(&cfg.Column, fc.Column)
	if fc.HeaderRow != nil {
		cfg.HeaderRow = *fc.HeaderRow
	}
	if fc.Normalize != nil {
		cfg.Normalize = *fc.Normalize
	}
	if len(fc.Years) > 0 {
		cfg.Years = fc.Years
	}

	setString(&cfg.Outputs.Table, fc.Outputs.Table)
	setString(&cfg.Outputs.Chart, fc.Outputs.Chart)
	setString(&cfg.Outputs.Workbook, fc.Outputs.Workbook)
	setString(&cfg.Outputs.PDF, fc.Outputs.PDF)

	setString(&cfg.Labels.TotalColumn, fc.Labels.TotalColumn)
	setString(&cfg.Labels.Unit, fc.Labels.Unit)
	setString(&cfg.Labels.Title, fc.Labels.Title)
	setString(&cfg.Labels.XAxis, fc.Labels.XAxis)
	setString(&cfg.Labels.YAxis, fc.Labels.YAxis)

	setString(&cfg.Logging.Level, fc.Logging.Level)
	setString(&cfg.Logging.Format, fc.Logging.Format)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate checks the configuration before a run.
func (c *Config) Validate() error {
	if len(c.Years) == 0 {
		return errors.New("no years configured")
	}
	if c.Column == "" {
		return errors.New("column name is required")
	}
	if c.HeaderRow < 0 {
		return errors.New("header row must not be negative")
	}
	if c.Outputs.Table == "" || c.Outputs.Chart == "" {
		return errors.New("table and chart outputs are required")
	}

	seen := make(map[int]bool, len(c.Years))
	for _, y := range c.Years {
		if y.File == "" {
			return fmt.Errorf("year %d: file is required", y.Year)
		}
		if seen[y.Year] {
			return fmt.Errorf("year %d configured more than once", y.Year)
		}
		seen[y.Year] = true
	}
	return nil
}

// Path returns the source file of an entry, resolved against DataDir.
func (c *Config) Path(e models.YearEntry) string {
	if filepath.IsAbs(e.File) {
		return e.File
	}
	return filepath.Join(c.DataDir, e.File)
}

// SheetFor returns the sheet label of an entry: its override, or the year's numeral.
func (c *Config) SheetFor(e models.YearEntry) string {
	if e.Sheet != "" {
		return e.Sheet
	}
	return strconv.Itoa(e.Year)
}

// ExtractOptions returns the column extraction options for an entry.
func (c *Config) ExtractOptions(e models.YearEntry) colsum.Options {
	return colsum.Options{
		Sheet:     c.SheetFor(e),
		Column:    c.Column,
		HeaderRow: c.HeaderRow,
		Normalize: c.Normalize,
	}
}

// ResultPath returns name resolved against ResultsDir.
func (c *Config) ResultPath(name string) string {
	return filepath.Join(c.ResultsDir, name)
}
