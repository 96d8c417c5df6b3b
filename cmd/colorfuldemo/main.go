// Command colorfuldemo animates text with a moving gradient, either in the
// terminal or as a sequence of PNG frames.
//
//	colorfuldemo --text "Loading" --colors "red,#00ff00,blue"
//	colorfuldemo --mode png --output frames --direction up
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gogpu/colorful"
	"github.com/gogpu/colorful/config"
	"github.com/gogpu/colorful/driver"
	"github.com/gogpu/colorful/render"
	"github.com/gogpu/colorful/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fatal("load config", err)
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	colorful.SetLogger(logger)

	if err := cfg.Validate(); err != nil {
		fatal("invalid config", err)
	}

	switch cfg.Mode {
	case config.ModePNG:
		err = recordPNG(ctx, cfg)
	default:
		err = runTerminal(ctx, cfg)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal("animation failed", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

// recordPNG renders frames offline on a stepped clock, one frame interval
// apart, so output does not depend on machine speed.
func recordPNG(ctx context.Context, cfg *config.Config) error {
	s, err := cfg.Settings()
	if err != nil {
		return err
	}
	face, err := render.DefaultFace(cfg.FontSize)
	if err != nil {
		return err
	}
	painter, err := render.NewPainter(face, render.WithWorkers(runtime.GOMAXPROCS(0)))
	if err != nil {
		return err
	}
	defer painter.Close()
	size, err := painter.Measure(cfg.Text)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output, 0o750); err != nil {
		return err
	}

	interval := time.Second / time.Duration(cfg.FPS)
	clock := &steppedClock{now: time.Unix(0, 0)}
	rec := render.NewRecorder(painter, cfg.Text, render.DirSink(cfg.Output))
	d := driver.New(rec,
		driver.WithClock(clock),
		driver.WithAnimatorOptions(colorful.WithInterpolation(s.Interpolation)),
	)
	if err := d.Configure(s.Direction, s.StepDuration, s.Colors, size); err != nil {
		return err
	}

	frames := cfg.Frames
	if frames == 0 {
		frames = max(int(d.Period()/interval), 1)
	}
	rec.Limit(frames, d.Remove)

	colorful.Logger().Info("recording frames", "frames", frames, "dir", cfg.Output,
		"width", size.Width, "height", size.Height)
	if err := d.Start(); err != nil {
		return err
	}
	for d.State() == colorful.Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := d.Step(); err != nil {
			return err
		}
		clock.advance(interval)
	}
	colorful.Logger().Info("frames written", "frames", rec.Frames())
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config) error {
	s, err := cfg.Settings()
	if err != nil {
		return err
	}
	host := term.New(os.Stdout, cfg.Text)
	defer func() { _ = host.Close() }()

	d := driver.New(host, driver.WithAnimatorOptions(colorful.WithInterpolation(s.Interpolation)))
	if err := d.Configure(s.Direction, s.StepDuration, s.Colors, host.Measure()); err != nil {
		return err
	}
	if err := d.SetVisible(true); err != nil {
		return err
	}
	defer d.Remove()

	interval := time.Second / time.Duration(cfg.FPS)
	if cfg.Frames > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Frames)*interval)
		defer cancel()
	}
	err = d.Run(ctx, interval)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// steppedClock is a manual clock for offline rendering.
type steppedClock struct {
	now time.Time
}

func (c *steppedClock) Now() time.Time { return c.now }

func (c *steppedClock) advance(d time.Duration) { c.now = c.now.Add(d) }
