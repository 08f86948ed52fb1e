// Package app wires the experiment driver to an optional viewer window.
package app

import (
	"context"
	"errors"

	"conway-stats/internal/experiment"
)

var (
	// ErrNoDisplay is returned by Run in builds without the ebiten tag.
	ErrNoDisplay = errors.New("viewer requires building with the 'ebiten' tag")
	// ErrWindowClosed is the cancellation cause when the viewer is closed
	// before the experiment completes.
	ErrWindowClosed = errors.New("viewer window closed")
)

// Job runs an experiment, pushing frames to obs.
type Job func(ctx context.Context, obs experiment.Observer) (experiment.Results, error)
