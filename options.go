package colorful

// Option configures an Animator during creation.
//
// Example:
//
//	// Default channel-linear blending and band density
//	a := colorful.NewAnimator()
//
//	// Perceptual blending, one band per 60 units of width
//	a := colorful.NewAnimator(
//	    colorful.WithInterpolation(colorful.InterpolateOklab),
//	    colorful.WithBandSize(colorful.BandSize{Width: 60, Height: 30}),
//	)
type Option func(*options)

// options holds optional Animator configuration.
type options struct {
	interp Interpolation
	bands  BandSize
}

func defaultOptions() options {
	return options{
		interp: InterpolateARGB,
		bands:  DefaultBandSize(),
	}
}

// WithInterpolation selects the blending space for frame colors.
func WithInterpolation(i Interpolation) Option {
	return func(o *options) {
		o.interp = i
	}
}

// WithBandSize overrides how much extent one color band covers.
// Non-positive fields keep their defaults.
func WithBandSize(b BandSize) Option {
	return func(o *options) {
		if b.Width > 0 {
			o.bands.Width = b.Width
		}
		if b.Height > 0 {
			o.bands.Height = b.Height
		}
	}
}
