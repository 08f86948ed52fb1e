package app

import (
	"flag"
	"time"

	"conway-stats/internal/experiment"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Experiment experiment.Config

	View       bool
	Scale      int
	TPS        int
	TrialPause time.Duration

	Out   string
	Plots bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Experiment: experiment.DefaultConfig(),
		Scale:      20,
		TPS:        1000,
		TrialPause: 500 * time.Millisecond,
		Out:        ".",
		Plots:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Experiment.Bind(fs)
	fs.BoolVar(&c.View, "view", c.View, "show each generation in a window (requires the ebiten build tag)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the viewer")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while viewing")
	fs.DurationVar(&c.TrialPause, "pause", c.TrialPause, "pause between trials while viewing")
	fs.StringVar(&c.Out, "out", c.Out, "directory for plot files")
	fs.BoolVar(&c.Plots, "plots", c.Plots, "write plot files after a completed experiment")
}
