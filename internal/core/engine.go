// Package core drives the wallpaper cycle: startup checks, periodic
// advances, signal-triggered reloads and shutdown.
package core

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/darkawower/wallcycle/internal/config"
	"github.com/darkawower/wallcycle/internal/datasource"
	"github.com/darkawower/wallcycle/internal/platform"
	"github.com/darkawower/wallcycle/internal/state"
	"github.com/darkawower/wallcycle/internal/ui"
	"github.com/darkawower/wallcycle/internal/wallpaper"
)

// ErrNoPictures is returned when the wallpaper directory holds no images.
var ErrNoPictures = errors.New("no pictures found")

// Setter applies a selection, one image per screen.
type Setter interface {
	Set(ctx context.Context, selection []string) error
}

// waitFunc blocks for d, until wake fires, or until ctx is done.
type waitFunc func(ctx context.Context, d time.Duration, wake <-chan struct{}) error

// Engine is the cycle controller.
type Engine struct {
	cfg     *config.Config
	out     *ui.Output
	screens platform.ScreenService
	setter  Setter
	picker  *datasource.Picker
	state   *state.State

	scan     func(ctx context.Context, root string) ([]string, error)
	wait     waitFunc
	now      func() time.Time
	observer func(Phase)

	// reload is shared with the signal goroutine and consumed with Swap.
	reload atomic.Bool
	wake   chan struct{}

	phase       Phase
	candidates  []string
	screenCount int
	interval    time.Duration
}

// Option is a function that configures the Engine.
type Option func(*Engine)

// WithOutput sets the output used for progress and errors.
func WithOutput(out *ui.Output) Option {
	return func(e *Engine) {
		e.out = out
	}
}

// WithScreens sets the screen detector.
func WithScreens(svc platform.ScreenService) Option {
	return func(e *Engine) {
		e.screens = svc
	}
}

// WithSetter sets the wallpaper setter.
func WithSetter(s Setter) Option {
	return func(e *Engine) {
		e.setter = s
	}
}

// WithPicker sets the selection engine.
func WithPicker(p *datasource.Picker) Option {
	return func(e *Engine) {
		e.picker = p
	}
}

// WithObserver registers a callback invoked on every phase change.
func WithObserver(fn func(Phase)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// New creates a new Engine for a validated configuration. Components not
// supplied through options come from the current platform.
func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		state: state.New(),
		scan:  datasource.ListImages,
		wait:  sleep,
		now:   time.Now,
		wake:  make(chan struct{}, 1),
		phase: PhaseValidating,
	}

	// Apply options
	for _, opt := range opts {
		opt(e)
	}

	if e.out == nil {
		e.out = ui.DefaultOutput()
	}
	if e.screens == nil {
		e.screens = platform.Current().Screens()
	}
	if e.setter == nil {
		s := wallpaper.NewSetter(e.out)
		s.SetDryRun(cfg.DryRun)
		e.setter = s
	}
	if e.picker == nil {
		e.picker = datasource.NewPicker()
	}

	return e
}

// Advance interrupts a sleep so the next cycle starts now. Safe to call
// from any goroutine.
func (e *Engine) Advance() {
	e.poke()
}

// Reload requests that the current selection be re-applied after
// re-detecting screens, and interrupts a sleep. Safe to call from any
// goroutine.
func (e *Engine) Reload() {
	e.reload.Store(true)
	e.poke()
}

func (e *Engine) poke() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// drainWake discards a wake-up that arrived before the current iteration.
func (e *Engine) drainWake() {
	select {
	case <-e.wake:
	default:
	}
}

// Phase returns the current controller phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// State returns the current selection state.
func (e *Engine) State() *state.State {
	return e.state
}

// Interval returns the effective interval after startup adjustments.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

func (e *Engine) transition(p Phase) {
	e.phase = p
	e.out.Debug("State: %s", p)
	if e.observer != nil {
		e.observer(p)
	}
}

// Run executes the controller until one-shot completion, fallback
// completion, context cancellation or a fatal error.
func (e *Engine) Run(ctx context.Context) error {
	e.transition(PhaseInitializing)
	if err := e.initialize(ctx); err != nil {
		e.transition(PhaseTerminated)
		return err
	}

	for {
		e.drainWake()

		if e.reload.Swap(false) {
			e.transition(PhaseReloading)
			e.reloadCurrent(ctx)
		} else {
			e.transition(PhaseAdvancing)
			if err := e.advance(ctx); err != nil {
				e.transition(PhaseTerminated)
				return e.stopped(ctx, err)
			}
		}

		if e.interval == 0 {
			e.out.Info("Done")
			e.transition(PhaseTerminated)
			return nil
		}
		if e.cfg.Fallback {
			e.out.Info("Fallback mode, not cycling")
			e.transition(PhaseTerminated)
			return nil
		}

		e.transition(PhaseSleeping)
		e.out.Debug("Sleeping for %s", e.interval)
		if err := e.wait(ctx, e.interval, e.wake); err != nil {
			e.transition(PhaseTerminated)
			return e.stopped(ctx, err)
		}
	}
}

// stopped turns a cancellation into a clean exit.
func (e *Engine) stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		e.out.Info("Stopped")
		return nil
	}
	return err
}

// initialize detects screens, scans pictures and adjusts the interval.
func (e *Engine) initialize(ctx context.Context) error {
	if e.cfg.Fallback {
		e.out.Warning("%s not found, using fallback directory %s", e.cfg.PrimaryDir, e.cfg.FallbackDir)
	}

	e.screenCount = e.detectScreens(ctx)

	images, err := e.scan(ctx, e.cfg.Dir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", e.cfg.Dir, err)
	}
	if len(images) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPictures, e.cfg.Dir)
	}
	e.candidates = images
	e.out.Info("Found %d pictures in %s", len(images), e.cfg.Dir)

	e.interval = e.cfg.IntervalDuration()
	switch {
	case len(images) < e.screenCount:
		e.out.Warning("Only %d pictures for %d screens, setting wallpaper once", len(images), e.screenCount)
		e.interval = 0
	case len(images) == e.screenCount:
		e.out.Warning("Exactly %d pictures for %d screens, nothing to cycle", len(images), e.screenCount)
		e.interval = 0
	}

	return nil
}

// detectScreens returns the connected screen count, or 0 when unknown.
func (e *Engine) detectScreens(ctx context.Context) int {
	n, err := e.screens.Count(ctx)
	if err != nil {
		e.out.Warning("Failed to detect screens: %v", err)
		return 0
	}
	if n == 0 {
		e.out.Warning("No connected screens detected")
	}
	e.out.Debug("Detected %d screen(s)", n)
	return n
}

// advance draws a new selection and applies it, retrying every
// RetryDelay until the setter succeeds or ctx is done.
func (e *Engine) advance(ctx context.Context) error {
	for {
		selection, err := e.picker.Pick(e.candidates, e.screenCount)
		if err != nil {
			return err
		}
		e.state.SetCurrent(selection, e.screenCount)

		if err := e.setter.Set(ctx, selection); err == nil {
			e.state.MarkApplied(e.now())
			return nil
		}

		e.transition(PhaseRetrying)
		e.out.Warning("Retrying in %s", e.cfg.RetryDelay)
		if err := e.wait(ctx, e.cfg.RetryDelay, nil); err != nil {
			return err
		}
		e.transition(PhaseAdvancing)
	}
}

// reloadCurrent re-detects screens and re-applies the current selection,
// drawing a new one only when the screen count changed. The candidate
// set is not rescanned.
func (e *Engine) reloadCurrent(ctx context.Context) {
	n := e.detectScreens(ctx)

	if !e.state.Matches(n) {
		if n != e.screenCount {
			e.out.Info("Screen count changed from %d to %d", e.screenCount, n)
		}
		selection, err := e.picker.Pick(e.candidates, n)
		if err != nil {
			e.out.Error("Failed to pick wallpapers: %v", err)
			return
		}
		e.state.SetCurrent(selection, n)
	}
	e.screenCount = n

	// Failures are reported by the setter and not retried here.
	if err := e.setter.Set(ctx, e.state.Current()); err == nil {
		e.state.MarkApplied(e.now())
	}
}

// sleep waits for d unless woken early or cancelled.
func sleep(ctx context.Context, d time.Duration, wake <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-wake:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
