package colorful

import (
	"fmt"
	"time"
)

// FrameComputer maps an elapsed play time onto the colors of one frame.
//
// Each step of length step moves the window by one slot; within a step,
// every slot blends from its current color toward its successor. The
// sequence repeats every Window.Size steps.
//
// A FrameComputer is immutable and safe for concurrent use.
type FrameComputer struct {
	colors ColorSequence
	window Window
	interp Interpolation
}

// NewFrameComputer creates a computer for the given palette and window.
// The window must come from sizing the same palette.
func NewFrameComputer(colors ColorSequence, window Window, interp Interpolation) (*FrameComputer, error) {
	if !colors.valid() {
		return nil, fmt.Errorf("%w: need at least %d colors, got %d",
			ErrInvalidConfiguration, MinColors, colors.Len())
	}
	if window.Multiple < 1 || window.Size != colors.Len()*window.Multiple {
		return nil, fmt.Errorf("%w: window %d/%d does not fit %d colors",
			ErrInvalidConfiguration, window.Size, window.Multiple, colors.Len())
	}
	return &FrameComputer{colors: colors, window: window, interp: interp}, nil
}

// Window returns the window the computer was built with.
func (f *FrameComputer) Window() Window { return f.window }

// Period returns how long one full color cycle takes at the given step.
func (f *FrameComputer) Period(step time.Duration) time.Duration {
	return time.Duration(f.window.Size) * step
}

// Colors returns the Window.Size colors of the frame at elapsed.
// Negative elapsed times are treated as zero.
func (f *FrameComputer) Colors(elapsed, step time.Duration) ([]Color, error) {
	return f.AppendColors(nil, elapsed, step)
}

// AppendColors appends the frame colors at elapsed to dst.
func (f *FrameComputer) AppendColors(dst []Color, elapsed, step time.Duration) ([]Color, error) {
	if step <= 0 {
		return dst, fmt.Errorf("%w: step duration %v must be positive", ErrInvalidConfiguration, step)
	}
	if elapsed < 0 {
		elapsed = 0
	}

	fraction := float64(elapsed%step) / float64(step)
	size := int64(f.window.Size)
	colorIndex := int((int64(elapsed/step)) % size)

	for i := 0; i < f.window.Size; i++ {
		index := i + colorIndex
		dst = append(dst, f.interp.blend(f.resolve(index), f.resolve(index+1), fraction))
	}
	return dst, nil
}

// resolve maps a window slot back onto the base palette, repeating each
// base color Multiple times.
func (f *FrameComputer) resolve(index int) Color {
	return f.colors.At((index / f.window.Multiple) % f.colors.Len())
}
