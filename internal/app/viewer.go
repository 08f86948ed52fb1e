//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"
	"time"

	"conway-stats/internal/experiment"
	"conway-stats/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Viewer adapts experiment frames to the ebiten.Game interface. Observer
// callbacks arrive on the driver goroutine while Update and Draw run on the
// ebiten main loop.
type Viewer struct {
	ctx     context.Context
	cfg     *Config
	palette render.Palette
	pacer   *Pacer

	mu     sync.Mutex
	cells  []uint8
	trial  int
	total  int
	step   int
	alive  int
	paused bool
	done   bool

	img *ebiten.Image
	buf []byte
}

// NewViewer constructs a Viewer that stops pacing once ctx is done.
func NewViewer(ctx context.Context, cfg *Config) *Viewer {
	rows, cols := cfg.Experiment.Rows, cfg.Experiment.Cols
	w, h := render.PixelSize(rows, cols, cfg.Scale)
	return &Viewer{
		ctx:     ctx,
		cfg:     cfg,
		palette: render.DefaultPalette(),
		pacer:   NewPacer(cfg.TPS),
		total:   cfg.Experiment.Trials,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
}

// Observe stores the frame for drawing and paces the driver.
func (v *Viewer) Observe(f experiment.Frame) {
	v.mu.Lock()
	v.cells = f.Grid.CopyCells(v.cells[:0])
	v.trial, v.step, v.alive = f.Trial, f.Step, f.Alive
	v.mu.Unlock()

	for v.isPaused() {
		if Sleep(v.ctx, 50*time.Millisecond) != nil {
			return
		}
	}
	_ = v.pacer.Wait(v.ctx)
}

// TrialStarted records the trial count shown on the HUD.
func (v *Viewer) TrialStarted(trial, total int) {
	v.mu.Lock()
	v.trial, v.total = trial, total
	v.mu.Unlock()
}

// TrialFinished holds the last generation on screen before the next trial.
func (v *Viewer) TrialFinished(trial int, _ experiment.Trial) {
	if trial+1 < v.total {
		_ = Sleep(v.ctx, v.cfg.TrialPause)
	}
}

func (v *Viewer) finish() {
	v.mu.Lock()
	v.done = true
	v.mu.Unlock()
}

func (v *Viewer) isDone() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}

func (v *Viewer) isPaused() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paused
}

// Update handles input and ends the loop once the experiment has finished.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.mu.Lock()
		v.paused = !v.paused
		v.mu.Unlock()
	}
	if v.isDone() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest observed generation and a status line.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	rows, cols := v.cfg.Experiment.Rows, v.cfg.Experiment.Cols
	if len(v.cells) == rows*cols {
		render.FillCells(v.buf, v.cells, rows, cols, v.cfg.Scale, v.palette)
	}
	status := fmt.Sprintf("sim %d/%d  step %d  alive %d", v.trial+1, v.total, v.step, v.alive)
	if v.paused {
		status += "  [paused]"
	}
	v.mu.Unlock()

	v.img.WritePixels(v.buf)
	screen.DrawImage(v.img, nil)
	text.Draw(screen, status, basicfont.Face7x13, 6, 16, color.RGBA{R: 255, G: 200, B: 60, A: 255})
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.PixelSize(v.cfg.Experiment.Rows, v.cfg.Experiment.Cols, v.cfg.Scale)
}

// Run opens the viewer window and executes job with the viewer as observer.
// Closing the window or pressing Q/Esc cancels the experiment.
func Run(ctx context.Context, cfg *Config, job Job) (experiment.Results, error) {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	v := NewViewer(ctx, cfg)
	type outcome struct {
		res experiment.Results
		err error
	}
	out := make(chan outcome, 1)
	go func() {
		res, err := job(ctx, v)
		v.finish()
		out <- outcome{res: res, err: err}
	}()

	w, h := render.PixelSize(cfg.Experiment.Rows, cfg.Experiment.Cols, cfg.Scale)
	ebiten.SetWindowTitle("CONWAY")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		cancel(err)
		<-out
		return experiment.Results{}, err
	}
	if !v.isDone() {
		cancel(ErrWindowClosed)
	}
	o := <-out
	return o.res, o.err
}
