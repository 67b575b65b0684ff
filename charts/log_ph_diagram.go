package charts

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"hvac/fluids"
)

// ErrGlideNotSupported is returned when a log P-h diagram is requested for
// a zeotropic blend: with a temperature glide the two-phase region has no
// single saturation pressure per temperature, and the dome as drawn here
// would be wrong.
var ErrGlideNotSupported = errors.New("charts: log P-h diagram not supported for refrigerants with temperature glide")

// number of samples along each branch of the saturation dome
const domeSamples = 80

// LogPhDiagram draws the saturation dome of a refrigerant on log-pressure /
// enthalpy axes, optionally with a vapor compression cycle overlaid.
// Pressures are plotted in bar, enthalpies in kJ/kg.
type LogPhDiagram struct {
	refrigerant *fluids.Fluid
	p           *plot.Plot
}

/*
Create the diagram for a refrigerant and draw its saturation dome.

    Args:
        refrigerant: the refrigerant; must not have a temperature glide

    Returns:
        the diagram, ready for SetCycle or Save
*/
func NewLogPhDiagram(refrigerant *fluids.Fluid) (*LogPhDiagram, error) {
	if refrigerant.Glide() {
		return nil, fmt.Errorf("%w: %s", ErrGlideNotSupported, refrigerant.Name())
	}

	d := &LogPhDiagram{refrigerant: refrigerant, p: plot.New()}
	d.p.Title.Text = fmt.Sprintf("log P-h diagram of %s", refrigerant.Name())
	d.p.X.Label.Text = "h, kJ/kg"
	d.p.Y.Label.Text = "P, bar"
	d.p.Y.Scale = plot.LogScale{}
	d.p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := d.addDome(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *LogPhDiagram) addDome() error {
	tMin, tMax, err := d.refrigerant.Limits()
	if err != nil {
		return err
	}

	ts := floats.Span(make([]float64, domeSamples), tMin, tMax)
	dome := make(plotter.XYs, 0, 2*domeSamples)

	// liquid branch bottom up
	for _, t := range ts {
		st, err := d.refrigerant.State(fluids.T(t), fluids.X(0.0))
		if err != nil {
			return err
		}
		dome = append(dome, plotter.XY{X: st.H() / 1e3, Y: st.P() / 1e5})
	}
	// vapor branch back down
	for i := len(ts) - 1; i >= 0; i-- {
		st, err := d.refrigerant.State(fluids.T(ts[i]), fluids.X(1.0))
		if err != nil {
			return err
		}
		dome = append(dome, plotter.XY{X: st.H() / 1e3, Y: st.P() / 1e5})
	}

	line, err := plotter.NewLine(dome)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	d.p.Add(line)
	return nil
}

/*
Overlay a vapor compression cycle on the diagram.

    Args:
        cycle: the cycle to draw
*/
func (d *LogPhDiagram) SetCycle(cycle *StandardVaporCompressionCycle) error {
	pts, err := cycle.Points()
	if err != nil {
		return err
	}

	corner := func(st fluids.FluidState) plotter.XY {
		return plotter.XY{X: st.H() / 1e3, Y: st.P() / 1e5}
	}
	loop := plotter.XYs{
		corner(pts.EvaporatorIn),
		corner(pts.EvaporatorOut),
		corner(pts.Suction),
		corner(pts.Discharge),
		corner(pts.SatVaporCond),
		corner(pts.CondenserOut),
		corner(pts.EvaporatorIn),
	}
	line, err := plotter.NewLine(loop)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0xcc, G: 0x22, B: 0x22, A: 0xff}
	line.Width = vg.Points(1.5)
	d.p.Add(line)

	scatter, err := plotter.NewScatter(loop[:len(loop)-1])
	if err != nil {
		return err
	}
	scatter.Color = line.Color
	d.p.Add(scatter)
	return nil
}

/*
Render the diagram to an image file.

    Args:
        width: figure width, inch
        height: figure height, inch
        filePath: path of the file to create
*/
func (d *LogPhDiagram) Save(width, height float64, filePath string) error {
	return d.p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, filePath)
}
