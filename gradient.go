package colorful

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// TileMode defines how a gradient extends beyond its endpoints.
type TileMode int

const (
	// TileClamp extends the edge colors.
	TileClamp TileMode = iota
	// TileRepeat restarts the color stops.
	TileRepeat
	// TileMirror reflects the color stops at each boundary.
	TileMirror
)

// String returns the tile mode name.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "clamp"
	case TileRepeat:
		return "repeat"
	case TileMirror:
		return "mirror"
	default:
		return fmt.Sprintf("TileMode(%d)", int(m))
	}
}

// extend converts the tile mode to gg's equivalent.
func (m TileMode) extend() gg.ExtendMode {
	switch m {
	case TileRepeat:
		return gg.ExtendRepeat
	case TileMirror:
		return gg.ExtendReflect
	default:
		return gg.ExtendPad
	}
}

// applyTileMode normalizes t to [0, 1].
func applyTileMode(t float64, mode TileMode) float64 {
	switch mode {
	case TileRepeat:
		t -= math.Floor(t)
	case TileMirror:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int64(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// stopOffset returns the position of stop i of n evenly spaced stops.
func stopOffset(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// colorAtOffset samples evenly spaced stops at t, after tiling.
func colorAtOffset(stops []Color, t float64, mode TileMode) Color {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0]
	}

	t = applyTileMode(t, mode)
	pos := t * float64(len(stops)-1)
	idx := int(math.Floor(pos))
	if idx >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return blendARGB(stops[idx], stops[idx+1], pos-float64(idx))
}
