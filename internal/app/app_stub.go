//go:build !ebiten

package app

import (
	"context"

	"conway-stats/internal/experiment"
)

// Run reports that no display is available in the headless build.
func Run(context.Context, *Config, Job) (experiment.Results, error) {
	return experiment.Results{}, ErrNoDisplay
}
