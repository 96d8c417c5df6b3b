package colorful

import "github.com/gogpu/gg"

// Gradient is a renderable linear gradient for one animation frame.
// Stops are spaced evenly from Start (offset 0) to End (offset 1).
//
// A Gradient is built fresh every frame and is meant to be handed to a
// rasterizer right away. Hosts that need to keep it must not mutate Stops.
//
// Example:
//
//	g, _ := animator.OnTick(elapsed)
//	dc.SetFillBrush(g.Brush())
type Gradient struct {
	Start Point    // Start point of the gradient
	End   Point    // End point of the gradient
	Stops []Color  // Colors at evenly spaced offsets
	Tile  TileMode // How the gradient extends beyond Start and End
}

// BuildGradient lays frame colors out along dir over the measured extent.
// The tile mode is always TileMirror.
func BuildGradient(dir Direction, size SizeMetrics, frame []Color) Gradient {
	info := dir.info()
	return Gradient{
		Start: size.scale(info.start),
		End:   size.scale(info.end),
		Stops: frame,
		Tile:  TileMirror,
	}
}

// Offset returns the gradient position of stop i.
func (g Gradient) Offset(i int) float64 {
	return stopOffset(i, len(g.Stops))
}

// ColorAt returns the color at (x, y) using channel-linear blending between
// stops. It is a reference sampler; production hosts paint with Brush.
func (g Gradient) ColorAt(x, y float64) Color {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		if len(g.Stops) == 0 {
			return Transparent
		}
		return g.Stops[0]
	}

	// Project the point onto the gradient line.
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(g.Stops, t, g.Tile)
}

// Brush converts the gradient to a gg brush for rasterization.
func (g Gradient) Brush() *gg.LinearGradientBrush {
	b := gg.NewLinearGradientBrush(g.Start.X, g.Start.Y, g.End.X, g.End.Y).
		SetExtend(g.Tile.extend())
	for i, c := range g.Stops {
		b.AddColorStop(g.Offset(i), c.RGBA())
	}
	return b
}

// Equal reports whether two gradients are identical.
func (g Gradient) Equal(o Gradient) bool {
	if g.Start != o.Start || g.End != o.End || g.Tile != o.Tile || len(g.Stops) != len(o.Stops) {
		return false
	}
	for i := range g.Stops {
		if g.Stops[i] != o.Stops[i] {
			return false
		}
	}
	return true
}
