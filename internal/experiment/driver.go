// Package experiment runs repeated Game of Life trials and collects the
// alive-cell count of every step.
package experiment

import (
	"context"
	"errors"
	"fmt"

	"conway-stats/pkg/core"
	"conway-stats/pkg/sims/life"
)

// ErrAborted is returned when the context is cancelled before the experiment
// completes. No partial results accompany it.
var ErrAborted = errors.New("experiment aborted")

// Driver runs trials for a validated configuration.
type Driver struct {
	cfg Config
	obs Observer
}

// NewDriver validates cfg and returns a Driver. obs may be nil.
func NewDriver(cfg Config, obs Observer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Driver{cfg: cfg, obs: obs}, nil
}

// Config returns the driver's configuration.
func (d *Driver) Config() Config { return d.cfg }

// RunTrial simulates one trial seeded from the configured seed and the trial
// index. The count for step k is taken before generation k+1 is computed, so
// element 0 is the population of the initial grid.
func (d *Driver) RunTrial(ctx context.Context, trial int) (Trial, error) {
	rng := core.NewStreamRNG(d.cfg.Seed, uint64(trial))
	grid, err := life.Random(d.cfg.Size(), d.cfg.Probability, rng)
	if err != nil {
		return nil, err
	}

	record := make(Trial, d.cfg.Steps)
	for step := 0; step < d.cfg.Steps; step++ {
		if err := aborted(ctx); err != nil {
			return nil, err
		}
		alive := life.AliveCount(grid)
		record[step] = alive
		if d.obs != nil {
			d.obs.Observe(Frame{Trial: trial, Step: step, Alive: alive, Grid: grid})
		}
		grid = life.Next(grid)
	}
	return record, nil
}

// Run executes every trial in order and returns the complete results matrix.
func (d *Driver) Run(ctx context.Context) (Results, error) {
	starter, _ := d.obs.(TrialStarter)
	finisher, _ := d.obs.(TrialFinisher)

	trials := make([]Trial, 0, d.cfg.Trials)
	for i := 0; i < d.cfg.Trials; i++ {
		if err := aborted(ctx); err != nil {
			return Results{}, err
		}
		if starter != nil {
			starter.TrialStarted(i, d.cfg.Trials)
		}
		record, err := d.RunTrial(ctx, i)
		if err != nil {
			return Results{}, fmt.Errorf("trial %d: %w", i, err)
		}
		if finisher != nil {
			finisher.TrialFinished(i, append(Trial(nil), record...))
		}
		trials = append(trials, record)
	}
	return Results{trials: trials, steps: d.cfg.Steps}, nil
}

// RunExperiment validates cfg and runs all of its trials.
func RunExperiment(ctx context.Context, cfg Config, obs Observer) (Results, error) {
	d, err := NewDriver(cfg, obs)
	if err != nil {
		return Results{}, err
	}
	return d.Run(ctx)
}

func aborted(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrAborted, context.Cause(ctx))
}
