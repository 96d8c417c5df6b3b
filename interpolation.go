package colorful

import (
	"fmt"
	"strings"

	"github.com/tinne26/badcolor"
)

// Interpolation selects the color space frames are blended in.
type Interpolation int

const (
	// InterpolateARGB blends each 8-bit channel linearly, alpha included.
	InterpolateARGB Interpolation = iota
	// InterpolateOklab blends color in the Oklab perceptual space and alpha
	// linearly. Mid-step colors keep a steadier lightness than ARGB blending.
	InterpolateOklab
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpolateARGB:
		return "argb"
	case InterpolateOklab:
		return "oklab"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation parses "argb" or "oklab".
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "argb":
		return InterpolateARGB, nil
	case "oklab":
		return InterpolateOklab, nil
	}
	return InterpolateARGB, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidConfiguration, s)
}

// blend mixes c1 toward c2 by t in [0, 1).
func (i Interpolation) blend(c1, c2 Color, t float64) Color {
	if i == InterpolateOklab {
		return blendOklab(c1, c2, t)
	}
	return blendARGB(c1, c2, t)
}

func blendOklab(c1, c2 Color, t float64) Color {
	if t == 0 || c1 == c2 {
		return c1
	}
	l1 := badcolor.ToOklab(c1.Opaque().NRGBA())
	l2 := badcolor.ToOklab(c2.Opaque().NRGBA())
	mixed := FromColor(l1.Interpolate(l2, t).RGBA8())
	return ARGB(lerp8(c1.A(), c2.A(), t), mixed.R(), mixed.G(), mixed.B())
}
