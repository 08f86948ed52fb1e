package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"conway-stats/internal/experiment"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Output file names written by Write.
const (
	HeatmapFile   = "heatmap_alive_cells.png"
	MeanLineFile  = "mean_alive_cells_line.png"
	HistogramFile = "final_alive_histogram.png"
	BoxplotFile   = "boxplot_selected_timesteps.png"
)

// Write renders the heatmap, mean line, final-count histogram and boxplots
// into dir and returns the written paths.
func Write(dir string, res experiment.Results) ([]string, error) {
	if res.Trials() == 0 {
		return nil, fmt.Errorf("no results to report")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	sum := Summarize(res)
	jobs := []struct {
		name   string
		render func(io.Writer) error
	}{
		{HeatmapFile, func(w io.Writer) error { return RenderHeatmap(w, res) }},
		{MeanLineFile, func(w io.Writer) error { return RenderMeanLine(w, sum) }},
		{HistogramFile, func(w io.Writer) error { return RenderHistogram(w, sum) }},
		{BoxplotFile, func(w io.Writer) error { return RenderBoxPlots(w, res) }},
	}
	var paths []string
	for _, job := range jobs {
		path := filepath.Join(dir, job.name)
		if err := writeFile(path, job.render); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// RenderMeanLine draws the per-step mean over a filled ±1 standard deviation
// band.
func RenderMeanLine(w io.Writer, s Summary) error {
	xs := make([]float64, s.Steps)
	upper := make([]float64, s.Steps)
	lower := make([]float64, s.Steps)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range xs {
		xs[i] = float64(i)
		upper[i] = s.Means[i] + s.StdDevs[i]
		lower[i] = s.Means[i] - s.StdDevs[i]
		lo = math.Min(lo, lower[i])
		hi = math.Max(hi, upper[i])
	}
	if hi-lo < 1 {
		lo, hi = lo-1, hi+1
	}
	band := drawing.Color{R: 0, G: 116, B: 217, A: 60}
	edge := drawing.Color{R: 0, G: 116, B: 217, A: 120}

	// The band is the upper bound filled down to the axis, then the lower
	// bound filled with the background color on top of it.
	graph := chart.Chart{
		Title:  "Mean Alive Cells Over Time",
		Width:  1000,
		Height: 500,
		XAxis: chart.XAxis{
			Name:  "Timestep",
			Range: &chart.ContinuousRange{Min: 0, Max: math.Max(1, float64(s.Steps-1))},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Alive Cells",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "±1 Std Dev",
				XValues: xs,
				YValues: upper,
				Style:   chart.Style{StrokeColor: edge, StrokeWidth: 1, FillColor: band},
			},
			chart.ContinuousSeries{
				XValues: xs,
				YValues: lower,
				Style:   chart.Style{StrokeColor: edge, StrokeWidth: 1, FillColor: drawing.ColorWhite},
			},
			chart.ContinuousSeries{
				Name:    "Mean Alive Cells",
				XValues: xs,
				YValues: s.Means,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// RenderHistogram draws the distribution of final-step alive counts.
func RenderHistogram(w io.Writer, s Summary) error {
	if len(s.Histogram) == 0 {
		return fmt.Errorf("empty histogram")
	}
	bars := make([]chart.Value, len(s.Histogram))
	peak := 0
	for i, b := range s.Histogram {
		bars[i] = chart.Value{
			Label: b.Label(),
			Value: float64(b.Count),
			Style: chart.Style{
				FillColor:   drawing.Color{R: 128, G: 0, B: 128, A: 255},
				StrokeColor: drawing.Color{R: 80, G: 0, B: 80, A: 255},
			},
		}
		peak = max(peak, b.Count)
	}
	graph := chart.BarChart{
		Title:      "Distribution of Final Alive Cell Counts",
		Width:      1200,
		Height:     500,
		BarWidth:   40,
		BarSpacing: 15,
		Bars:       bars,
		YAxis: chart.YAxis{
			Name:  "Frequency",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(peak + 1)},
		},
	}
	return graph.Render(chart.PNG, w)
}
