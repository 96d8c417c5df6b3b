// Package driver runs a colorful.Animator from a clock and delivers each
// frame's gradient to a Host.
//
// A Driver owns the play clock: Start restarts it from zero, Pause freezes it
// and Resume continues it, so paused time never advances the animation.
// Hosts either call Step from their own frame loop or let Run tick on a
// time.Ticker.
//
//	d := driver.New(host)
//	if err := d.Configure(colorful.Right, 500*time.Millisecond, colors, size); err != nil {
//	    return err
//	}
//	_ = d.Start()
//	err := d.Run(ctx, 16*time.Millisecond)
package driver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/colorful"
)

// DefaultInterval is the tick interval Run uses when given a non-positive one.
const DefaultInterval = 16 * time.Millisecond

// Host receives one gradient per delivered tick. Apply should install the
// gradient on the text paint and schedule a redraw.
type Host interface {
	Apply(g colorful.Gradient) error
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(g colorful.Gradient) error

// Apply calls f(g).
func (f HostFunc) Apply(g colorful.Gradient) error { return f(g) }

// Driver ticks an Animator and forwards gradients to a Host.
//
// All methods are safe for concurrent use. Remove may be called from inside
// Host.Apply; once Remove has returned on the ticking goroutine no further
// tick is delivered. A tick already inside Apply on another goroutine is
// allowed to finish.
type Driver struct {
	mu    sync.Mutex
	anim  *colorful.Animator
	host  Host
	clock Clock
	play  playhead

	visible    bool
	userPaused bool

	done   chan struct{}
	closed bool
	frames uint64
}

// New creates a driver for host. The driver starts Unconfigured.
func New(host Host, opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{
		anim:  colorful.NewAnimator(o.animOpts...),
		host:  host,
		clock: o.clock,
		done:  make(chan struct{}),
	}
}

// Configure installs a new animation. See colorful.Animator.Configure.
// On success the driver is Ready, play time is reset to zero, and any Run
// loop started before the call returns nil. Hosts start a fresh Run for the
// new animation. A user pause survives reconfiguration.
func (d *Driver) Configure(dir colorful.Direction, step time.Duration, colors []colorful.Color, size colorful.SizeMetrics) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.anim.Configure(dir, step, colors, size); err != nil {
		return err
	}
	d.play.reset()
	if !d.closed {
		close(d.done)
	}
	d.done = make(chan struct{})
	d.closed = false
	return nil
}

// Start restarts the animation from zero play time.
func (d *Driver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.startLocked()
}

func (d *Driver) startLocked() error {
	if err := d.anim.Start(); err != nil {
		return err
	}
	d.play.start(d.clock.Now())
	colorful.Logger().Debug("driver: started")
	return nil
}

// Resume continues the animation from where it was paused.
func (d *Driver) Resume() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resumeLocked()
}

func (d *Driver) resumeLocked() error {
	if err := d.anim.Resume(); err != nil {
		return err
	}
	d.play.resume(d.clock.Now())
	return nil
}

// Pause freezes the animation. It is a no-op unless Running.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pauseLocked()
}

func (d *Driver) pauseLocked() {
	if d.anim.State() != colorful.Running {
		return
	}
	d.anim.Pause()
	d.play.pause(d.clock.Now())
}

// PauseByUser pauses and records that the user asked for it, so that
// SetVisible(true) will not resume the animation behind their back.
func (d *Driver) PauseByUser() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userPaused = true
	d.pauseLocked()
}

// ResumeByUser clears the user pause and resumes.
func (d *Driver) ResumeByUser() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userPaused = false
	return d.resumeLocked()
}

// UserPaused reports whether the user pause flag is set.
func (d *Driver) UserPaused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.userPaused
}

// SetVisible reacts to the host's visibility or screen state. Becoming
// visible starts a Ready animation or resumes a Paused one, unless the user
// paused it. Becoming hidden pauses.
func (d *Driver) SetVisible(visible bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.visible = visible
	if !visible {
		d.pauseLocked()
		return nil
	}
	if d.userPaused {
		return nil
	}
	switch d.anim.State() {
	case colorful.Ready:
		return d.startLocked()
	case colorful.Paused:
		return d.resumeLocked()
	case colorful.Running:
		return nil
	default:
		return &colorful.StateError{Op: "show", State: d.anim.State()}
	}
}

// Visible reports the last visibility passed to SetVisible.
func (d *Driver) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

// Remove tears the animation down and stops Run. It is idempotent.
func (d *Driver) Remove() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.anim.Remove()
	d.play.reset()
	if !d.closed {
		close(d.done)
		d.closed = true
	}
}

// State returns the animator's lifecycle state.
func (d *Driver) State() colorful.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.anim.State()
}

// Elapsed returns the current play time.
func (d *Driver) Elapsed() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.play.elapsed(d.clock.Now())
}

// Period returns the length of one color cycle, or zero when there is no
// active animation.
func (d *Driver) Period() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	if a := d.anim.Animation(); a != nil {
		return a.Period()
	}
	return 0
}

// Frames returns the number of ticks delivered to the host.
func (d *Driver) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Step delivers one tick if the animation is Running. It reports whether a
// gradient was handed to the host.
func (d *Driver) Step() (bool, error) {
	d.mu.Lock()
	if d.anim.State() != colorful.Running {
		d.mu.Unlock()
		return false, nil
	}
	elapsed := d.play.elapsed(d.clock.Now())
	g, err := d.anim.OnTick(elapsed)
	if err != nil {
		d.mu.Unlock()
		return false, err
	}
	d.frames++
	d.mu.Unlock()

	if err := d.host.Apply(g); err != nil {
		return true, fmt.Errorf("driver: apply frame at %v: %w", elapsed, err)
	}
	return true, nil
}

// Run ticks every interval until ctx is done, Remove or Configure is
// called, or the host fails. It returns nil after Remove or Configure and
// ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		case <-ticker.C:
			if _, err := d.Step(); err != nil {
				colorful.Logger().Warn("driver: tick failed", "err", err)
				return err
			}
		}
	}
}
