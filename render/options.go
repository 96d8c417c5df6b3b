package render

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/colorful"
)

// DefaultFontSize is the size in points of the default face.
const DefaultFontSize = 32.0

// Option configures a Painter.
type Option func(*painterOptions)

type painterOptions struct {
	padding    int
	background colorful.Color
	cacheSize  int
	workers    int
}

func defaultOptions() painterOptions {
	return painterOptions{
		padding:    4,
		background: colorful.Transparent,
		cacheSize:  32,
	}
}

// WithPadding sets the transparent margin around the text, in pixels.
func WithPadding(px int) Option {
	return func(o *painterOptions) {
		if px >= 0 {
			o.padding = px
		}
	}
}

// WithBackground fills the canvas before painting text.
func WithBackground(c colorful.Color) Option {
	return func(o *painterOptions) {
		o.background = c
	}
}

// WithMaskCache sets how many rasterized strings are kept.
func WithMaskCache(n int) Option {
	return func(o *painterOptions) {
		o.cacheSize = n
	}
}

// WithWorkers shades rows on n goroutines. Values below 2 paint on the
// calling goroutine. Call Painter.Close when done.
func WithWorkers(n int) Option {
	return func(o *painterOptions) {
		o.workers = n
	}
}

var (
	goRegularOnce sync.Once
	goRegular     *text.FontSource
	goRegularErr  error
)

// DefaultFace returns Go Regular at the given size.
func DefaultFace(size float64) (text.Face, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = text.NewFontSource(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, goRegularErr
	}
	return goRegular.Face(size), nil
}
