// Package charts renders line charts and log P-h diagrams of vapor
// compression cycles through gonum/plot.
package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// LineChart is a thin wrapper around gonum/plot for the XY line charts used
// to present simulation sweeps.
type LineChart struct {
	p      *plot.Plot
	series int
}

// NewLineChart creates an empty chart.
func NewLineChart() *LineChart {
	return &LineChart{p: plot.New()}
}

// SetTitle sets the chart title.
func (c *LineChart) SetTitle(title string) {
	c.p.Title.Text = title
}

// SetXTitle sets the horizontal axis title.
func (c *LineChart) SetXTitle(title string) {
	c.p.X.Label.Text = title
}

// SetYTitle sets the vertical axis title.
func (c *LineChart) SetYTitle(title string) {
	c.p.Y.Label.Text = title
}

/*
Add one labeled XY series to the chart.

    Args:
        label: legend label
        xs: x values
        ys: y values, same length as xs
*/
func (c *LineChart) AddXYData(label string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("charts: series %q: %d x values but %d y values", label, len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(c.series)
	c.series++
	c.p.Add(line)
	c.p.Legend.Add(label, line)
	return nil
}

/*
Render the chart to an image file. The format follows the file extension
(.png, .pdf, .svg, ...).

    Args:
        width: figure width, inch
        height: figure height, inch
        filePath: path of the file to create
*/
func (c *LineChart) Save(width, height float64, filePath string) error {
	return c.p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, filePath)
}
