package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"conway-stats/internal/app"
	"conway-stats/internal/experiment"
	"conway-stats/internal/report"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
	exitAborted = 130
)

type progress struct {
	log *log.Logger
}

func (progress) Observe(experiment.Frame) {}

func (p progress) TrialStarted(trial, total int) {
	p.log.Printf("Running simulation %d / %d", trial+1, total)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	logger := log.New(stdout, "", log.LstdFlags)

	cfg := app.NewConfig()
	fs := flag.NewFlagSet("conway", flag.ContinueOnError)
	fs.SetOutput(stdout)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if err := cfg.Experiment.Validate(); err != nil {
		logger.Print(err)
		return exitConfig
	}

	job := func(ctx context.Context, obs experiment.Observer) (experiment.Results, error) {
		return experiment.RunExperiment(ctx, cfg.Experiment, experiment.Tee(progress{log: logger}, obs))
	}

	var (
		res experiment.Results
		err error
	)
	if cfg.View {
		res, err = app.Run(ctx, cfg, job)
	} else {
		res, err = job(ctx, nil)
	}
	switch {
	case errors.Is(err, experiment.ErrAborted):
		logger.Printf("aborted: %v", err)
		return exitAborted
	case errors.Is(err, experiment.ErrInvalidConfig):
		logger.Print(err)
		return exitConfig
	case err != nil:
		logger.Print(err)
		return exitFailure
	}

	if _, err := report.Summarize(res).WriteTo(stdout); err != nil {
		logger.Print(err)
		return exitFailure
	}
	if !cfg.Plots {
		return exitOK
	}
	paths, err := report.Write(cfg.Out, res)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}
	for _, p := range paths {
		logger.Printf("wrote %s", p)
	}
	fmt.Fprintln(stdout, "All plots saved.")
	return exitOK
}
