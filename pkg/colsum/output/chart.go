package output

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/ukaji3/mrvsum-go/pkg/colsum/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartOptions holds the fixed labels of the trend chart.
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height default to 8x5 inches.
	Width  vg.Length
	Height vg.Length
}

// seriesColor matches the matplotlib "tab:blue" palette entry.
var seriesColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

var gridColor = color.Gray{Y: 200}

// RenderChart draws the scaled totals as a line with point markers and
// saves it to path. The image format follows the file extension.
func RenderChart(path string, series []models.YearTotal, opts ChartOptions) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}

	p, err := newTrendPlot(series, opts)
	if err != nil {
		return err
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 5 * vg.Inch
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}

func newTrendPlot(series []models.YearTotal, opts ChartOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	pts := make(plotter.XYs, len(series))
	ticks := make([]plot.Tick, len(series))
	for i, t := range series {
		pts[i].X = float64(t.Year)
		pts[i].Y = t.Scaled().InexactFloat64()
		ticks[i] = plot.Tick{Value: float64(t.Year), Label: strconv.Itoa(t.Year)}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build series: %w", err)
	}
	line.Color = seriesColor
	line.Width = vg.Points(2)
	points.Shape = draw.CircleGlyph{}
	points.Color = seriesColor
	points.Radius = vg.Points(3)
	p.Add(line, points)

	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	return p, nil
}
