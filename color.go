package colorful

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
)

// Color is a packed 32-bit color in 0xAARRGGBB order.
type Color uint32

// ARGB creates a color from 8-bit alpha, red, green, and blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// NRGBA converts the color to a non-premultiplied color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA converts the color to gg's float representation.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}

// Opaque returns the color with alpha forced to 0xFF.
func (c Color) Opaque() Color {
	return c | 0xFF000000
}

// Hex returns the color as "#AARRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// blendARGB blends each channel linearly: c1 + (c2-c1)*t, alpha included.
// Channel results are truncated toward zero.
func blendARGB(c1, c2 Color, t float64) Color {
	if t == 0 {
		return c1
	}
	return ARGB(
		lerp8(c1.A(), c2.A(), t),
		lerp8(c1.R(), c2.R(), t),
		lerp8(c1.G(), c2.G(), t),
		lerp8(c1.B(), c2.B(), t),
	)
}

func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Common colors, matching the usual platform palette values.
const (
	Black       Color = 0xFF000000
	DarkGray    Color = 0xFF444444
	Gray        Color = 0xFF888888
	LightGray   Color = 0xFFCCCCCC
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Yellow      Color = 0xFFFFFF00
	Cyan        Color = 0xFF00FFFF
	Magenta     Color = 0xFFFF00FF
	Transparent Color = 0x00000000
)
