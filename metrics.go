package colorful

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate in the host's logical units.
type Point struct {
	X, Y float64
}

// SizeMetrics is the measured extent of the text being painted.
// Hosts re-measure whenever the text or font size changes; the core only
// ever sees a snapshot.
type SizeMetrics struct {
	Width  float64
	Height float64
}

// Validate reports ErrInvalidConfiguration for negative or non-finite extents.
func (m SizeMetrics) Validate() error {
	if !nonNegativeFinite(m.Width) || !nonNegativeFinite(m.Height) {
		return fmt.Errorf("%w: size %vx%v must be finite and non-negative",
			ErrInvalidConfiguration, m.Width, m.Height)
	}
	return nil
}

// scale maps a unit endpoint onto the measured extent.
func (m SizeMetrics) scale(p Point) Point {
	return Point{X: p.X * m.Width, Y: p.Y * m.Height}
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
