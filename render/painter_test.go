package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/colorful"
)

func newTestPainter(t *testing.T, opts ...Option) *Painter {
	t.Helper()
	p, err := NewPainter(nil, opts...)
	if err != nil {
		t.Fatalf("NewPainter() error = %v", err)
	}
	return p
}

func TestPainterMeasure(t *testing.T) {
	p := newTestPainter(t)
	short, err := p.Measure("Hi")
	if err != nil {
		t.Fatal(err)
	}
	long, err := p.Measure("Hi there, colorful")
	if err != nil {
		t.Fatal(err)
	}
	if short.Width <= 0 || long.Width <= short.Width {
		t.Errorf("widths = %v, %v; want 0 < short < long", short.Width, long.Width)
	}
	if short.Height != DefaultFontSize {
		t.Errorf("Height = %v, want %v", short.Height, DefaultFontSize)
	}
	if _, err := p.Measure(""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Measure(\"\") error = %v, want ErrEmptyText", err)
	}
}

func TestPainterMeasureNormalizes(t *testing.T) {
	p := newTestPainter(t)
	composed, _ := p.Measure("caf\u00e9")
	decomposed, _ := p.Measure("cafe\u0301")
	if composed != decomposed {
		t.Errorf("NFC and NFD measure differently: %v vs %v", composed, decomposed)
	}
}

func TestPainterPaint(t *testing.T) {
	p := newTestPainter(t, WithPadding(6))
	size, err := p.Measure("Wave")
	if err != nil {
		t.Fatal(err)
	}
	g := colorful.BuildGradient(colorful.Right, size, []colorful.Color{colorful.Red, colorful.Red})

	img, err := p.Paint("Wave", g)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != p.Bounds("Wave") {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), p.Bounds("Wave"))
	}
	if c := img.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("padding pixel = %v, want transparent", c)
	}

	painted := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			painted++
			if c.G != 0 || c.B != 0 {
				t.Fatalf("pixel (%d,%d) = %v, want pure red", x, y, c)
			}
		}
	}
	if painted == 0 {
		t.Error("no pixels painted")
	}
	if _, err := p.Paint("", g); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Paint(\"\") error = %v, want ErrEmptyText", err)
	}
}

func TestPainterBackground(t *testing.T) {
	p := newTestPainter(t, WithBackground(colorful.Black))
	size, _ := p.Measure("H")
	img, err := p.Paint("H", colorful.BuildGradient(colorful.Up, size, []colorful.Color{colorful.White, colorful.White}))
	if err != nil {
		t.Fatal(err)
	}
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{A: 0xFF}) {
		t.Errorf("corner = %v, want opaque black", c)
	}

	var brightest uint8
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A != 0xFF || c.R != c.G || c.G != c.B {
				t.Fatalf("pixel (%d,%d) = %v, want opaque gray", x, y, c)
			}
			brightest = max(brightest, c.R)
		}
	}
	if brightest < 0xF0 {
		t.Errorf("brightest pixel = %#x, want fully covered white", brightest)
	}
}

func TestOver(t *testing.T) {
	tests := []struct {
		name string
		c    gg.RGBA
		a    float64
		dst  color.NRGBA
		want color.NRGBA
	}{
		{"opaque source", gg.RGBA{R: 1, A: 1}, 1, color.NRGBA{B: 255, A: 255}, color.NRGBA{R: 255, A: 255}},
		{"half white over black", gg.RGBA{R: 1, G: 1, B: 1, A: 1}, 0.5, color.NRGBA{A: 255}, color.NRGBA{R: 127, G: 127, B: 127, A: 255}},
		{"over transparent", gg.RGBA{G: 1, A: 1}, 0.5, color.NRGBA{}, color.NRGBA{G: 255, A: 127}},
		{"nothing", gg.RGBA{}, 0, color.NRGBA{}, color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := over(tt.c, tt.a, tt.dst); got != tt.want {
				t.Errorf("over() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSamplerMatchesBrush(t *testing.T) {
	bounds := image.Rect(0, 0, 40, 24)
	const off = 4.0
	size := colorful.SizeMetrics{Width: 32, Height: 16}
	frame := []colorful.Color{colorful.Yellow, colorful.Blue, colorful.Magenta}

	tests := []struct {
		name string
		g    colorful.Gradient
		cols bool
		rows bool
	}{
		{"right", colorful.BuildGradient(colorful.Right, size, frame), true, false},
		{"down", colorful.BuildGradient(colorful.Down, size, frame), false, true},
		{"diagonal", colorful.Gradient{End: colorful.Point{X: 32, Y: 16}, Stops: frame, Tile: colorful.TileMirror}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSampler(tt.g, bounds, off)
			if (s.cols != nil) != tt.cols || (s.rows != nil) != tt.rows {
				t.Fatalf("cols=%v rows=%v, want cols=%v rows=%v", s.cols != nil, s.rows != nil, tt.cols, tt.rows)
			}
			brush := tt.g.Brush()
			for y := bounds.Min.Y; y < bounds.Max.Y; y += 3 {
				for x := bounds.Min.X; x < bounds.Max.X; x += 3 {
					got := s.at(x, y)
					want := brush.ColorAt(float64(x)-off+0.5, float64(y)-off+0.5)
					if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 ||
						math.Abs(got.B-want.B) > 1e-9 || math.Abs(got.A-want.A) > 1e-9 {
						t.Fatalf("at(%d,%d) = %+v, want %+v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestPainterCachesMasks(t *testing.T) {
	p := newTestPainter(t, WithMaskCache(2))
	size, _ := p.Measure("x")
	g := colorful.BuildGradient(colorful.Left, size, []colorful.Color{colorful.Red, colorful.Blue})
	for range 3 {
		if _, err := p.Paint("x", g); err != nil {
			t.Fatal(err)
		}
	}
	s := p.masks.Stats()
	if s.Misses != 1 || s.Hits != 2 || s.Len != 1 {
		t.Errorf("mask cache stats = %+v, want 1 miss, 2 hits, 1 entry", s)
	}

	if !p.Forget("x") {
		t.Error("Forget(x) = false, want true")
	}
	if p.Forget("x") {
		t.Error("second Forget(x) = true, want false")
	}
	if _, err := p.Paint("x", g); err != nil {
		t.Fatal(err)
	}
	if s := p.masks.Stats(); s.Misses != 2 {
		t.Errorf("misses after Forget = %d, want 2", s.Misses)
	}
}

type bufferCloser struct {
	*bytes.Buffer
}

func (bufferCloser) Close() error { return nil }

func TestRecorder(t *testing.T) {
	p := newTestPainter(t)
	var bufs []*bytes.Buffer
	sink := func(n int) (io.WriteCloser, error) {
		if n != len(bufs) {
			t.Errorf("sink frame %d, want %d", n, len(bufs))
		}
		b := &bytes.Buffer{}
		bufs = append(bufs, b)
		return bufferCloser{b}, nil
	}

	doneCalls := 0
	rec := NewRecorder(p, "Rec", sink).Limit(2, func() { doneCalls++ })

	size, _ := p.Measure("Rec")
	g := colorful.BuildGradient(colorful.Down, size, []colorful.Color{colorful.Yellow, colorful.Blue, colorful.Magenta})
	for range 4 {
		if err := rec.Apply(g); err != nil {
			t.Fatal(err)
		}
	}
	if rec.Frames() != 2 || len(bufs) != 2 {
		t.Errorf("frames = %d, buffers = %d; want 2", rec.Frames(), len(bufs))
	}
	if doneCalls != 1 {
		t.Errorf("done called %d times, want 1", doneCalls)
	}

	img, err := png.Decode(bufs[0])
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != p.Bounds("Rec").Dx() {
		t.Errorf("decoded width = %d, want %d", img.Bounds().Dx(), p.Bounds("Rec").Dx())
	}
}

func TestRecorderSinkError(t *testing.T) {
	p := newTestPainter(t)
	errDisk := errors.New("disk full")
	rec := NewRecorder(p, "x", func(int) (io.WriteCloser, error) { return nil, errDisk })
	size, _ := p.Measure("x")
	if err := rec.Apply(colorful.BuildGradient(colorful.Right, size, []colorful.Color{colorful.Red, colorful.Blue})); !errors.Is(err, errDisk) {
		t.Errorf("Apply() error = %v, want wrapped sink error", err)
	}
}

func TestPainterWorkersMatchSequential(t *testing.T) {
	seq := newTestPainter(t)
	par := newTestPainter(t, WithWorkers(4))
	defer par.Close()

	size, _ := seq.Measure("Parallel")
	g := colorful.BuildGradient(colorful.Down, size, []colorful.Color{colorful.Yellow, colorful.Blue, colorful.Magenta})
	a, err := seq.Paint("Parallel", g)
	if err != nil {
		t.Fatal(err)
	}
	b, err := par.Paint("Parallel", g)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("parallel paint differs from sequential paint")
	}
}
