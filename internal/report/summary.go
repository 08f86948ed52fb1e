// Package report summarizes experiment results and renders them as charts.
package report

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"conway-stats/internal/experiment"
)

// HistogramBins is the number of equal-width bins used for final counts.
const HistogramBins = 20

// Box is a five-number summary of the counts at one step.
type Box struct {
	Step   int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Bin is one histogram bucket covering [Lo, Hi), or [Lo, Hi] for the last.
// First and Last are the smallest and largest integers falling in the bin;
// First > Last when no integer does.
type Bin struct {
	Lo, Hi      float64
	First, Last int
	Count       int
}

// Label names the integer counts the bin holds, or "" when it holds none.
func (b Bin) Label() string {
	switch {
	case b.First > b.Last:
		return ""
	case b.First == b.Last:
		return strconv.Itoa(b.First)
	default:
		return fmt.Sprintf("%d-%d", b.First, b.Last)
	}
}

// Summary holds the statistics derived from a results matrix.
type Summary struct {
	Trials    int
	Steps     int
	Means     []float64
	StdDevs   []float64
	Histogram []Bin
	Boxes     []Box
}

// BoxSteps returns the steps summarized as boxplots: first, middle and last.
func BoxSteps(steps int) []int {
	return []int{0, steps / 2, steps - 1}
}

// Summarize computes per-step mean and population standard deviation, the
// histogram of final-step counts and boxplot summaries at BoxSteps.
func Summarize(res experiment.Results) Summary {
	s := Summary{
		Trials:  res.Trials(),
		Steps:   res.Steps(),
		Means:   make([]float64, res.Steps()),
		StdDevs: make([]float64, res.Steps()),
	}
	for step := 0; step < res.Steps(); step++ {
		s.Means[step], s.StdDevs[step] = meanStd(res.Column(step))
	}
	s.Histogram = histogram(res.Final(), HistogramBins)
	for _, step := range BoxSteps(res.Steps()) {
		s.Boxes = append(s.Boxes, box(step, res.Column(step)))
	}
	return s
}

// WriteTo prints the boxplot table and the final mean.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}
	if err := write("%d trials x %d steps\n", s.Trials, s.Steps); err != nil {
		return total, err
	}
	if err := write("%-10s %8s %8s %8s %8s %8s\n", "timestep", "min", "q1", "median", "q3", "max"); err != nil {
		return total, err
	}
	for _, b := range s.Boxes {
		if err := write("%-10d %8.1f %8.1f %8.1f %8.1f %8.1f\n", b.Step, b.Min, b.Q1, b.Median, b.Q3, b.Max); err != nil {
			return total, err
		}
	}
	if s.Steps > 0 {
		last := s.Steps - 1
		if err := write("final mean %.2f (std %.2f)\n", s.Means[last], s.StdDevs[last]); err != nil {
			return total, err
		}
	}
	return total, nil
}

func meanStd(values []int) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

func histogram(values []int, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	minV, maxV := slices.Min(values), slices.Max(values)
	lo, hi := float64(minV), float64(maxV)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)
	index := func(v int) int {
		return min(max(int((float64(v)-lo)/width), 0), bins-1)
	}

	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
		out[i].First, out[i].Last = 1, 0
	}
	out[bins-1].Hi = hi
	for v := minV; v <= maxV; v++ {
		b := &out[index(v)]
		if b.First > b.Last {
			b.First = v
		}
		b.Last = v
	}
	for _, v := range values {
		out[index(v)].Count++
	}
	return out
}

func box(step int, values []int) Box {
	sorted := make([]float64, len(values))
	for i, v := range values {
		sorted[i] = float64(v)
	}
	slices.Sort(sorted)
	return Box{
		Step:   step,
		Min:    quantile(sorted, 0),
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    quantile(sorted, 1),
	}
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
