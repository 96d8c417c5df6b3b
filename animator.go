package colorful

import (
	"fmt"
	"time"
)

// State is the lifecycle state of an Animator.
type State int

const (
	// Unconfigured means Configure has never succeeded.
	Unconfigured State = iota
	// Ready means configured but not yet started.
	Ready
	// Running means the host should deliver ticks.
	Running
	// Paused means ticking is suspended and can be resumed.
	Paused
	// Removed means the animation was torn down. Only Configure leaves it.
	Removed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animator is the framework-agnostic animation state object that a host
// adapter drives with Configure, OnTick, Start, Pause, Resume and Remove.
//
// Animator never advances time by itself: the host supplies the elapsed
// play time on every tick. It is not safe for concurrent use; see
// driver.Driver for a clock-driven, goroutine-safe wrapper.
type Animator struct {
	opts  options
	state State
	anim  *Animation
}

// NewAnimator creates an unconfigured animator.
func NewAnimator(opts ...Option) *Animator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Animator{opts: o}
}

// State returns the current lifecycle state.
func (a *Animator) State() State { return a.state }

// Animation returns the active configuration, or nil when Unconfigured or
// Removed.
func (a *Animator) Animation() *Animation {
	if a.state == Unconfigured || a.state == Removed {
		return nil
	}
	return a.anim
}

// Configure validates and installs a new configuration.
//
// Validation happens before teardown: on error the previous configuration
// and state are left untouched. On success any previous animation is
// removed first and the animator ends up Ready.
func (a *Animator) Configure(dir Direction, step time.Duration, colors []Color, size SizeMetrics) error {
	anim, err := NewAnimation(dir, step, colors, size, a.withOptions)
	if err != nil {
		return err
	}
	a.Remove()
	a.anim = anim
	a.state = Ready

	w := anim.Window()
	Logger().Debug("colorful: configured",
		"direction", dir,
		"step", step,
		"colors", len(colors),
		"window", w.Size,
		"multiple", w.Multiple,
	)
	return nil
}

// withOptions copies the animator's options into an Animation build.
func (a *Animator) withOptions(o *options) {
	*o = a.opts
}

// Start moves a Ready or Paused animator to Running. Hosts restart their
// play clock from zero.
func (a *Animator) Start() error {
	if err := a.requireConfigured("start"); err != nil {
		return err
	}
	a.state = Running
	return nil
}

// Resume moves a Ready or Paused animator to Running. Hosts continue their
// play clock from where it was paused.
func (a *Animator) Resume() error {
	if err := a.requireConfigured("resume"); err != nil {
		return err
	}
	a.state = Running
	return nil
}

// Pause suspends a Running animator. It is a no-op in any other state.
func (a *Animator) Pause() {
	if a.state == Running {
		a.state = Paused
	}
}

// Remove tears the animation down. It is idempotent.
func (a *Animator) Remove() {
	if a.state == Unconfigured || a.state == Removed {
		return
	}
	a.anim = nil
	a.state = Removed
	Logger().Debug("colorful: removed")
}

// OnTick returns the gradient for elapsed play time. It does not change any
// state: calling it twice with the same elapsed time yields identical
// gradients.
func (a *Animator) OnTick(elapsed time.Duration) (Gradient, error) {
	if a.state == Unconfigured || a.state == Removed {
		return Gradient{}, &StateError{Op: "tick", State: a.state}
	}
	return a.anim.Gradient(elapsed), nil
}

func (a *Animator) requireConfigured(op string) error {
	if a.state == Unconfigured || a.state == Removed {
		return &StateError{Op: op, State: a.state}
	}
	return nil
}
