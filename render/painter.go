// Package render paints colorful gradients onto text with gg.
//
// A Painter measures text the way the animation expects (advance width and
// font size), rasterizes its coverage once per string, and fills covered
// pixels by sampling the frame's gg brush.
//
//	p, _ := render.NewPainter(nil)
//	size, _ := p.Measure("Loading")
//	_ = a.Configure(colorful.Right, 500*time.Millisecond, colors, size)
//	g, _ := a.OnTick(elapsed)
//	img, _ := p.Paint("Loading", g)
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/colorful"
	"github.com/gogpu/colorful/internal/cache"
	"github.com/gogpu/colorful/internal/parallel"
)

// Sentinel errors for the render package.
var (
	// ErrEmptyText is returned when measuring or painting an empty string.
	ErrEmptyText = errors.New("render: empty text")
)

// Painter rasterizes text with a gradient fill.
// Painter is safe for concurrent use.
type Painter struct {
	face       text.Face
	pad        int
	background colorful.Color
	masks      *cache.Cache[string, *image.Alpha]
	pool       *parallel.Pool // nil paints on the calling goroutine
}

// NewPainter creates a painter for face. A nil face uses the default
// Go Regular face at DefaultFontSize.
func NewPainter(face text.Face, opts ...Option) (*Painter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if face == nil {
		f, err := DefaultFace(DefaultFontSize)
		if err != nil {
			return nil, err
		}
		face = f
	}
	p := &Painter{
		face:       face,
		pad:        o.padding,
		background: o.background,
		masks:      cache.New[string, *image.Alpha](o.cacheSize),
	}
	if o.workers > 1 {
		p.pool = parallel.NewPool(o.workers)
	}
	return p, nil
}

// Close stops the painter's workers, if any. Paint keeps working on the
// calling goroutine afterwards.
func (p *Painter) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Face returns the painter's font face.
func (p *Painter) Face() text.Face { return p.face }

// Measure returns the extent the animation should be sized for: the
// advance width of s and the font size.
func (p *Painter) Measure(s string) (colorful.SizeMetrics, error) {
	s = norm.NFC.String(s)
	if s == "" {
		return colorful.SizeMetrics{}, ErrEmptyText
	}
	w, _ := text.Measure(s, p.face)
	return colorful.SizeMetrics{Width: w, Height: p.face.Size()}, nil
}

// Bounds returns the canvas rectangle Paint produces for s.
func (p *Painter) Bounds(s string) image.Rectangle {
	s = norm.NFC.String(s)
	w, h := text.Measure(s, p.face)
	return image.Rect(0, 0, int(math.Ceil(w))+2*p.pad, int(math.Ceil(h))+2*p.pad)
}

// Paint renders s filled with g. Gradient coordinates are relative to the
// top-left corner of the text, inside the padding.
func (p *Painter) Paint(s string, g colorful.Gradient) (*image.NRGBA, error) {
	s = norm.NFC.String(s)
	if s == "" {
		return nil, ErrEmptyText
	}
	mask := p.mask(s)

	b := mask.Bounds()
	out := image.NewNRGBA(b)
	opaqueBg := p.background != colorful.Transparent
	if opaqueBg {
		draw.Draw(out, b, image.NewUniform(p.background.NRGBA()), image.Point{}, draw.Src)
	}

	smp := newSampler(g, b, float64(p.pad))
	if p.pool == nil {
		p.shade(out, mask, smp, b.Min.Y, b.Max.Y, opaqueBg)
		return out, nil
	}
	spans := parallel.Split(b.Dy(), p.pool.Workers())
	work := make([]func(), len(spans))
	for i, sp := range spans {
		work[i] = func() { p.shade(out, mask, smp, b.Min.Y+sp.Min, b.Min.Y+sp.Max, opaqueBg) }
	}
	p.pool.Run(work)
	return out, nil
}

// Forget drops the cached coverage of s. It reports whether s was cached.
func (p *Painter) Forget(s string) bool {
	return p.masks.Delete(norm.NFC.String(s))
}

// mask returns the coverage of s, rasterizing it on a cache miss. Two
// goroutines missing at once both rasterize; the results are identical.
func (p *Painter) mask(s string) *image.Alpha {
	if m, ok := p.masks.Get(s); ok {
		return m
	}
	m := p.rasterize(s)
	p.masks.Set(s, m)
	return m
}

// shade fills covered pixels of rows [y0, y1).
func (p *Painter) shade(out *image.NRGBA, mask *image.Alpha, smp *sampler, y0, y1 int, opaqueBg bool) {
	b := mask.Bounds()
	for y := y0; y < y1; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			coverage := mask.AlphaAt(x, y).A
			if coverage == 0 {
				continue
			}
			c := smp.at(x, y)
			a := c.A * float64(coverage) / 255
			if opaqueBg {
				out.SetNRGBA(x, y, over(c, a, out.NRGBAAt(x, y)))
				continue
			}
			out.SetNRGBA(x, y, color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(a)})
		}
	}
}

// sampler evaluates a gradient brush at pixel centers. Gradients along a
// single axis are evaluated once per column or row up front.
type sampler struct {
	brush  *gg.LinearGradientBrush
	bounds image.Rectangle
	off    float64
	cols   []gg.RGBA
	rows   []gg.RGBA
}

func newSampler(g colorful.Gradient, bounds image.Rectangle, off float64) *sampler {
	s := &sampler{brush: g.Brush(), bounds: bounds, off: off}
	switch {
	case g.Start.Y == g.End.Y:
		s.cols = make([]gg.RGBA, bounds.Dx())
		for i := range s.cols {
			s.cols[i] = s.brush.ColorAt(float64(bounds.Min.X+i)-off+0.5, 0)
		}
	case g.Start.X == g.End.X:
		s.rows = make([]gg.RGBA, bounds.Dy())
		for i := range s.rows {
			s.rows[i] = s.brush.ColorAt(0, float64(bounds.Min.Y+i)-off+0.5)
		}
	}
	return s
}

func (s *sampler) at(x, y int) gg.RGBA {
	switch {
	case s.cols != nil:
		return s.cols[x-s.bounds.Min.X]
	case s.rows != nil:
		return s.rows[y-s.bounds.Min.Y]
	}
	return s.brush.ColorAt(float64(x)-s.off+0.5, float64(y)-s.off+0.5)
}

// over composites c with alpha a over the non-premultiplied dst.
func over(c gg.RGBA, a float64, dst color.NRGBA) color.NRGBA {
	da := float64(dst.A) / 255
	oa := a + da*(1-a)
	if oa == 0 {
		return color.NRGBA{}
	}
	mix := func(src float64, d uint8) uint8 {
		return unit8((src*a + float64(d)/255*da*(1-a)) / oa)
	}
	return color.NRGBA{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: unit8(oa)}
}

// unit8 converts a [0, 1] channel to 8 bits, truncating like gg.RGBA.Color.
func unit8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, v*255)))
}

// rasterize draws s in opaque white with gg and keeps its coverage.
func (p *Painter) rasterize(s string) *image.Alpha {
	b := p.Bounds(s)
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetFont(p.face)
	dc.SetRGBA(1, 1, 1, 1)
	dc.DrawString(s, float64(p.pad), float64(p.pad)+p.face.Metrics().Ascent)

	mask := image.NewAlpha(b)
	draw.Draw(mask, b, dc.Image(), image.Point{}, draw.Src)
	colorful.Logger().Debug("render: rasterized text", "text", s, "width", b.Dx(), "height", b.Dy())
	return mask
}
