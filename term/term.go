// Package term shows a colorful animation on an ANSI terminal.
//
// Each grapheme cluster of the text is colored with the gradient sampled at
// the cluster's center cell, and the line is redrawn in place on every tick.
package term

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"

	"github.com/gogpu/colorful"
)

// Default cell geometry in logical units. Text of ten cells spans one band
// at the default band width.
const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 20.0
)

type cluster struct {
	text   string
	center float64 // cell-space center, in logical units
}

// Host is a driver host that redraws one line of gradient text.
type Host struct {
	out      *termenv.Output
	profile  *termenv.Profile
	clusters []cluster
	cells    int
	cellW    float64
	cellH    float64

	mu      sync.Mutex
	started bool
}

// Option configures a Host.
type Option func(*Host)

// WithProfile forces a color profile instead of detecting it.
func WithProfile(p termenv.Profile) Option {
	return func(h *Host) {
		h.profile = &p
	}
}

// WithCellSize sets the logical size of one terminal cell.
func WithCellSize(width, height float64) Option {
	return func(h *Host) {
		if width > 0 {
			h.cellW = width
		}
		if height > 0 {
			h.cellH = height
		}
	}
}

// New creates a host writing s to w.
func New(w io.Writer, s string, opts ...Option) *Host {
	h := &Host{
		cellW: DefaultCellWidth,
		cellH: DefaultCellHeight,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.profile != nil {
		h.out = termenv.NewOutput(w, termenv.WithProfile(*h.profile))
	} else {
		h.out = termenv.NewOutput(w)
	}
	h.segment(s)
	return h
}

// segment splits s into grapheme clusters and records their centers.
func (h *Host) segment(s string) {
	gr := uniseg.NewGraphemes(s)
	col := 0
	for gr.Next() {
		w := gr.Width()
		h.clusters = append(h.clusters, cluster{
			text:   gr.Str(),
			center: (float64(col) + float64(w)/2) * h.cellW,
		})
		col += w
	}
	h.cells = col
}

// Measure returns the text extent in logical units.
func (h *Host) Measure() colorful.SizeMetrics {
	return colorful.SizeMetrics{
		Width:  float64(h.cells) * h.cellW,
		Height: h.cellH,
	}
}

// Render returns the text styled with g, without cursor control.
func (h *Host) Render(g colorful.Gradient) string {
	var b strings.Builder
	y := h.cellH / 2
	for _, cl := range h.clusters {
		if strings.TrimSpace(cl.text) == "" {
			b.WriteString(cl.text)
			continue
		}
		c := g.ColorAt(cl.center, y)
		b.WriteString(h.out.String(cl.text).Foreground(h.out.Color(rgbHex(c))).String())
	}
	return b.String()
}

// Apply implements driver.Host by redrawing the line in place.
func (h *Host) Apply(g colorful.Gradient) error {
	line := h.Render(g)

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.started {
		h.out.HideCursor()
		h.started = true
	}
	if _, err := io.WriteString(h.out, "\r"); err != nil {
		return err
	}
	h.out.ClearLine()
	_, err := io.WriteString(h.out, line)
	return err
}

// Close ends the line and restores the cursor.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.started {
		return nil
	}
	h.started = false
	h.out.ShowCursor()
	_, err := io.WriteString(h.out, "\n")
	return err
}

// rgbHex drops alpha; terminals have no per-glyph transparency.
func rgbHex(c colorful.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}
