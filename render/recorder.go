package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/colorful"
)

// Sink opens the destination for frame n.
type Sink func(n int) (io.WriteCloser, error)

// DirSink writes frames as frame-00000.png, frame-00001.png, ... in dir.
func DirSink(dir string) Sink {
	return func(n int) (io.WriteCloser, error) {
		return os.Create(filepath.Join(dir, fmt.Sprintf("frame-%05d.png", n))) //nolint:gosec // dir is user-provided intentionally
	}
}

// Recorder is a driver host that paints each gradient onto a string and
// encodes it as PNG.
type Recorder struct {
	painter *Painter
	text    string
	sink    Sink
	limit   int
	onLimit func()

	mu sync.Mutex
	n  int
}

// NewRecorder creates a recorder painting s with p into sink.
func NewRecorder(p *Painter, s string, sink Sink) *Recorder {
	return &Recorder{painter: p, text: s, sink: sink}
}

// Limit stops recording after n frames and calls done once when reached.
// Typically done removes the driver.
func (r *Recorder) Limit(n int, done func()) *Recorder {
	r.limit = n
	r.onLimit = done
	return r
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Apply implements driver.Host.
func (r *Recorder) Apply(g colorful.Gradient) error {
	r.mu.Lock()
	if r.limit > 0 && r.n >= r.limit {
		r.mu.Unlock()
		return nil
	}
	n := r.n
	r.n++
	reached := r.limit > 0 && r.n == r.limit
	r.mu.Unlock()

	img, err := r.painter.Paint(r.text, g)
	if err != nil {
		return err
	}
	w, err := r.sink(n)
	if err != nil {
		return fmt.Errorf("render: open frame %d: %w", n, err)
	}
	if err := gg.NewContextForImage(img).EncodePNG(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("render: encode frame %d: %w", n, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("render: close frame %d: %w", n, err)
	}
	colorful.Logger().Debug("render: frame written", "frame", n)

	if reached {
		st := r.painter.masks.Stats()
		colorful.Logger().Debug("render: frame limit reached", "frames", r.limit,
			"mask_hits", st.Hits, "mask_misses", st.Misses, "masks", st.Len)
		if r.onLimit != nil {
			r.onLimit()
		}
	}
	return nil
}
