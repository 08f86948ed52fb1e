package experiment

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"conway-stats/pkg/core"
)

// ErrInvalidConfig is matched by every ConfigError.
var ErrInvalidConfig = errors.New("invalid experiment configuration")

// ConfigError reports the first configuration field that failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// MaxRecords bounds trials × steps, the size of the results matrix.
const MaxRecords = 1 << 26

// Config controls the dimensions and repetition counts of an experiment.
type Config struct {
	Rows        int
	Cols        int
	Steps       int
	Trials      int
	Probability float64
	Seed        int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:        40,
		Cols:        40,
		Steps:       200,
		Trials:      100,
		Probability: 0.2,
		Seed:        42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations recorded per trial")
	fs.IntVar(&c.Trials, "trials", c.Trials, "independent trials to run")
	fs.Float64Var(&c.Probability, "p", c.Probability, "initial probability that a cell is alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for trial initialization")
}

// Size returns the grid dimensions.
func (c Config) Size() core.Size { return core.Size{Rows: c.Rows, Cols: c.Cols} }

// Validate returns a *ConfigError for the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return &ConfigError{Field: "rows", Value: c.Rows, Reason: "must be positive"}
	case c.Cols <= 0:
		return &ConfigError{Field: "cols", Value: c.Cols, Reason: "must be positive"}
	case c.Steps <= 0:
		return &ConfigError{Field: "steps", Value: c.Steps, Reason: "must be positive"}
	case c.Trials <= 0:
		return &ConfigError{Field: "trials", Value: c.Trials, Reason: "must be positive"}
	case c.Rows > core.MaxCells/c.Cols:
		return &ConfigError{Field: "size", Value: fmt.Sprintf("%dx%d", c.Rows, c.Cols), Reason: fmt.Sprintf("exceeds %d cells", core.MaxCells)}
	case c.Trials > MaxRecords/c.Steps:
		return &ConfigError{Field: "trials", Value: c.Trials, Reason: fmt.Sprintf("%d trials of %d steps exceed %d records", c.Trials, c.Steps, MaxRecords)}
	case math.IsNaN(c.Probability) || c.Probability < 0 || c.Probability > 1:
		return &ConfigError{Field: "probability", Value: c.Probability, Reason: "must be within [0, 1]"}
	}
	return nil
}
