package colorful

import "fmt"

// MinColors is the smallest number of colors a ColorSequence accepts.
const MinColors = 2

// ColorSequence is an immutable, ordered list of base colors.
// The zero value is empty and is rejected by every constructor that takes one.
type ColorSequence struct {
	colors []Color
}

// NewColorSequence validates and copies colors into a ColorSequence.
// It fails with ErrInvalidConfiguration when fewer than MinColors are given.
func NewColorSequence(colors ...Color) (ColorSequence, error) {
	if len(colors) < MinColors {
		return ColorSequence{}, fmt.Errorf("%w: need at least %d colors, got %d",
			ErrInvalidConfiguration, MinColors, len(colors))
	}
	owned := make([]Color, len(colors))
	copy(owned, colors)
	return ColorSequence{colors: owned}, nil
}

// MustColorSequence is like NewColorSequence but panics on error.
// Intended for package-level defaults.
func MustColorSequence(colors ...Color) ColorSequence {
	s, err := NewColorSequence(colors...)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultColors returns the palette used when none is configured.
func DefaultColors() ColorSequence {
	return MustColorSequence(Yellow, Blue, Magenta)
}

// Len returns the number of base colors.
func (s ColorSequence) Len() int { return len(s.colors) }

// At returns the i-th base color.
func (s ColorSequence) At(i int) Color { return s.colors[i] }

// Colors returns a copy of the base colors.
func (s ColorSequence) Colors() []Color {
	out := make([]Color, len(s.colors))
	copy(out, s.colors)
	return out
}

// valid reports whether the sequence came from NewColorSequence.
func (s ColorSequence) valid() bool { return len(s.colors) >= MinColors }
