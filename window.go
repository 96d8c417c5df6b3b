package colorful

import "math"

// Default band sizes: one base color per 100 units of width, or per 30
// units of height.
const (
	DefaultBandWidth  = 100.0
	DefaultBandHeight = 30.0
)

// MaxWindowSize bounds the number of stops per frame. Extents that would
// need more bands reuse the largest multiple that fits, so very wide text
// gets wider bands instead of more of them.
const MaxWindowSize = 1024

// BandSize controls how much extent a single color band covers before the
// window grows.
type BandSize struct {
	Width  float64
	Height float64
}

// DefaultBandSize returns the standard density.
func DefaultBandSize() BandSize {
	return BandSize{Width: DefaultBandWidth, Height: DefaultBandHeight}
}

// Window describes the number of gradient stops drawn per frame.
//
// Size is always a positive multiple of the base color count, so cycling
// through Size slots never shifts the palette phase.
type Window struct {
	// Size is the number of color stops in every frame.
	Size int
	// Multiple is how many consecutive slots repeat each base color.
	Multiple int
}

// ComputeWindow sizes the window with the default band size.
func ComputeWindow(dir Direction, size SizeMetrics, baseCount int) Window {
	return DefaultBandSize().Window(dir, size, baseCount)
}

// Window sizes the window for baseCount colors laid along dir's axis.
// Size never exceeds MaxWindowSize unless baseCount alone does.
func (b BandSize) Window(dir Direction, size SizeMetrics, baseCount int) Window {
	if baseCount < 1 {
		return Window{}
	}
	natural := b.naturalColorSize(dir, size)
	multiple := 1
	if natural > float64(baseCount) {
		limit := float64(max(MaxWindowSize/baseCount, 1))
		multiple = int(math.Min(math.Ceil(natural/float64(baseCount)), limit))
	}
	return Window{Size: baseCount * multiple, Multiple: multiple}
}

// naturalColorSize is how many bands the measured extent would hold.
func (b BandSize) naturalColorSize(dir Direction, size SizeMetrics) float64 {
	if dir.Horizontal() {
		if b.Width <= 0 {
			return 0
		}
		return size.Width / b.Width
	}
	if b.Height <= 0 {
		return 0
	}
	return size.Height / b.Height
}
