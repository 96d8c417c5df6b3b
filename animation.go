package colorful

import (
	"fmt"
	"time"
)

// Animation is the immutable configuration of one gradient animation:
// direction, step duration, palette, and the window sized for the measured
// text. It computes gradients as a pure function of elapsed play time.
type Animation struct {
	dir   Direction
	step  time.Duration
	size  SizeMetrics
	frame *FrameComputer
}

// NewAnimation validates the configuration and sizes the window eagerly.
func NewAnimation(dir Direction, step time.Duration, colors []Color, size SizeMetrics, opts ...Option) (*Animation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !dir.Valid() {
		return nil, fmt.Errorf("%w: unknown direction %d", ErrInvalidConfiguration, int(dir))
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step duration %v must be positive", ErrInvalidConfiguration, step)
	}
	if err := size.Validate(); err != nil {
		return nil, err
	}
	seq, err := NewColorSequence(colors...)
	if err != nil {
		return nil, err
	}

	window := o.bands.Window(dir, size, seq.Len())
	frame, err := NewFrameComputer(seq, window, o.interp)
	if err != nil {
		return nil, err
	}
	return &Animation{dir: dir, step: step, size: size, frame: frame}, nil
}

// Direction returns the scroll direction.
func (a *Animation) Direction() Direction { return a.dir }

// StepDuration returns the time spent blending one slot into the next.
func (a *Animation) StepDuration() time.Duration { return a.step }

// Size returns the measured extent the animation was sized for.
func (a *Animation) Size() SizeMetrics { return a.size }

// Window returns the computed window.
func (a *Animation) Window() Window { return a.frame.Window() }

// Period returns the length of one full color cycle.
func (a *Animation) Period() time.Duration { return a.frame.Period(a.step) }

// Frame returns the frame colors at elapsed.
func (a *Animation) Frame(elapsed time.Duration) []Color {
	// step was validated at construction, so this cannot fail.
	colors, _ := a.frame.Colors(elapsed, a.step)
	return colors
}

// Gradient returns the renderable gradient at elapsed.
func (a *Animation) Gradient(elapsed time.Duration) Gradient {
	return BuildGradient(a.dir, a.size, a.Frame(elapsed))
}
