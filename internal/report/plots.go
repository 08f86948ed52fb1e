package report

import (
	"fmt"
	"io"

	"conway-stats/internal/experiment"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// resultsGrid exposes a results matrix as a plotter.GridXYZ with timesteps
// along X and trials along Y.
type resultsGrid struct {
	res experiment.Results
}

func (g resultsGrid) Dims() (c, r int)   { return g.res.Steps(), g.res.Trials() }
func (g resultsGrid) Z(c, r int) float64 { return float64(g.res.At(r, c)) }
func (g resultsGrid) X(c int) float64    { return float64(c) }
func (g resultsGrid) Y(r int) float64    { return float64(r) }

// RenderHeatmap draws the trials × steps matrix with color tracking the alive
// count.
func RenderHeatmap(w io.Writer, res experiment.Results) error {
	cmap := moreland.ExtendedBlackBody()
	cmap.SetMin(0)
	cmap.SetMax(1)
	hm := plotter.NewHeatMap(resultsGrid{res: res}, cmap.Palette(255))
	if hm.Max == hm.Min {
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = "Alive Cells Over Time"
	p.X.Label.Text = "Timestep"
	p.Y.Label.Text = "Simulation #"
	p.Add(hm)
	return save(w, p, 12*vg.Inch, 6*vg.Inch)
}

// RenderBoxPlots draws one box per step returned by BoxSteps.
func RenderBoxPlots(w io.Writer, res experiment.Results) error {
	p := plot.New()
	p.Title.Text = "Alive Cell Counts at Timesteps"
	p.Y.Label.Text = "Alive Cells"

	var names []string
	for i, step := range BoxSteps(res.Steps()) {
		col := res.Column(step)
		values := make(plotter.Values, len(col))
		for j, v := range col {
			values[j] = float64(v)
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), values)
		if err != nil {
			return fmt.Errorf("box at step %d: %w", step, err)
		}
		p.Add(box)
		names = append(names, fmt.Sprintf("Timestep %d", step))
	}
	p.NominalX(names...)
	return save(w, p, 8*vg.Inch, 5*vg.Inch)
}

func save(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
