package experiment

import "conway-stats/pkg/core"

// Frame describes one recorded step. Grid is the generation whose population
// was recorded; it is immutable and safe to retain.
type Frame struct {
	Trial int
	Step  int
	Alive int
	Grid  *core.Grid
}

// Observer receives every recorded frame. Observers run on the driver's
// goroutine, so a slow observer slows the experiment down.
type Observer interface {
	Observe(f Frame)
}

// TrialStarter is implemented by observers that want a callback before a
// trial records its first step.
type TrialStarter interface {
	TrialStarted(trial, total int)
}

// TrialFinisher is implemented by observers that want the finished record of
// each completed trial.
type TrialFinisher interface {
	TrialFinished(trial int, record Trial)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(f Frame)

// Observe calls fn(f).
func (fn ObserverFunc) Observe(f Frame) { fn(f) }

// Tee fans callbacks out to several observers in order. Nil entries are
// skipped.
func Tee(observers ...Observer) Observer {
	var out tee
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

type tee []Observer

func (t tee) Observe(f Frame) {
	for _, o := range t {
		o.Observe(f)
	}
}

func (t tee) TrialStarted(trial, total int) {
	for _, o := range t {
		if s, ok := o.(TrialStarter); ok {
			s.TrialStarted(trial, total)
		}
	}
}

func (t tee) TrialFinished(trial int, record Trial) {
	for _, o := range t {
		if f, ok := o.(TrialFinisher); ok {
			f.TrialFinished(trial, append(Trial(nil), record...))
		}
	}
}
