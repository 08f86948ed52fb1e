package experiment

import "fmt"

// Trial is the alive-cell count recorded at each step of one simulation.
type Trial []int

// Results is the rectangular trials × steps matrix of alive-cell counts.
type Results struct {
	trials []Trial
	steps  int
}

// NewResults wraps the provided trials, which must all have the same
// non-zero length. The slices are copied.
func NewResults(trials []Trial) (Results, error) {
	if len(trials) == 0 {
		return Results{}, fmt.Errorf("results need at least one trial")
	}
	steps := len(trials[0])
	if steps == 0 {
		return Results{}, fmt.Errorf("trial 0 has no steps")
	}
	rows := make([]Trial, len(trials))
	for i, t := range trials {
		if len(t) != steps {
			return Results{}, fmt.Errorf("trial %d has %d steps, want %d", i, len(t), steps)
		}
		rows[i] = append(Trial(nil), t...)
	}
	return Results{trials: rows, steps: steps}, nil
}

// Trials returns the number of trials.
func (r Results) Trials() int { return len(r.trials) }

// Steps returns the number of steps recorded per trial.
func (r Results) Steps() int { return r.steps }

// At returns the alive count of a trial at a step.
func (r Results) At(trial, step int) int { return r.trials[trial][step] }

// Trial returns a copy of one trial's time series.
func (r Results) Trial(i int) Trial { return append(Trial(nil), r.trials[i]...) }

// Column returns the counts of every trial at the given step.
func (r Results) Column(step int) []int {
	col := make([]int, len(r.trials))
	for i, t := range r.trials {
		col[i] = t[step]
	}
	return col
}

// Final returns the counts of every trial at its last step.
func (r Results) Final() []int {
	if r.steps == 0 {
		return nil
	}
	return r.Column(r.steps - 1)
}
