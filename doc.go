// Package colorful computes animated gradient text colors.
//
// # Overview
//
// colorful repaints text with a moving multi-color linear gradient. Given a
// palette, a direction, the measured size of the text and an elapsed play
// time, it produces the ordered color stops and the two endpoints of a
// mirrored linear gradient for that instant. Rasterization is left to the
// host; [Gradient.Brush] hands the result to github.com/gogpu/gg.
//
// # Quick Start
//
//	a := colorful.NewAnimator()
//	err := a.Configure(colorful.Right, 500*time.Millisecond,
//	    []colorful.Color{colorful.Yellow, colorful.Blue, colorful.Magenta},
//	    colorful.SizeMetrics{Width: 320, Height: 32})
//	if err != nil {
//	    return err
//	}
//	_ = a.Start()
//
//	// Once per frame, with a monotonically increasing play time:
//	g, _ := a.OnTick(elapsed)
//	dc.SetFillBrush(g.Brush())
//
// # Frames
//
// The number of stops per frame, the window, is the palette length times a
// multiple chosen so that no band exceeds 100 units of width (horizontal
// directions) or 30 units of height (vertical directions). Every step
// duration the window shifts by one slot, and within a step each slot blends
// toward its successor. Frames repeat every window × step.
//
// # Lifecycle
//
// An [Animator] moves through Unconfigured, Ready, Running, Paused and
// Removed. The driver sub-package supplies a clock-driven host loop with
// pause-aware play time and visibility hooks.
//
// # Sub-packages
//
//   - driver: ticking loop and Host interface
//   - render: gg-backed text rasterizer and PNG frame recorder
//   - term: ANSI true-color terminal host
//   - config: declarative configuration with documented defaults
package colorful
