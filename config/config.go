// Package config loads colorful animation settings from the environment and
// command-line flags, with documented defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vimeo/dials"
	"github.com/vimeo/dials/sources/env"
	"github.com/vimeo/dials/sources/flag"

	"github.com/gogpu/colorful"
)

// Sentinel errors for the config package.
var (
	// ErrUnknownColor is returned for a color that is neither a known name
	// nor a #RGB, #RRGGBB or #AARRGGBB hex string.
	ErrUnknownColor = errors.New("config: unknown color")

	// ErrUnknownMode is returned for an output mode other than png or term.
	ErrUnknownMode = errors.New("config: unknown mode")
)

// Output modes.
const (
	ModePNG  = "png"
	ModeTerm = "term"
)

// Config is the declarative configuration of the demo and of any host that
// wants the standard attribute set.
type Config struct {
	Direction     string        `dialsdesc:"Scroll direction: right, left, up or down"`
	StepDuration  time.Duration `dialsdesc:"Time to blend one color slot into the next"`
	Colors        string        `dialsdesc:"Comma-separated colors: names, #RGB, #RRGGBB or #AARRGGBB"`
	Interpolation string        `dialsdesc:"Blend space: argb or oklab"`
	Text          string        `dialsdesc:"Text to animate"`
	FontSize      float64       `dialsdesc:"Font size in points (png mode)"`
	Mode          string        `dialsdesc:"Output mode: png or term"`
	Output        string        `dialsdesc:"Directory for PNG frames"`
	Frames        int           `dialsdesc:"Frames to record in png mode; 0 records one full cycle"`
	FPS           int           `dialsdesc:"Frames per second" dialsflag:"fps"`
	Verbose       bool          `dialsdesc:"Enable debug logging"`
}

// Default returns the documented defaults: direction right, 500ms steps,
// yellow, blue and magenta.
func Default() *Config {
	return &Config{
		Direction:     colorful.Right.String(),
		StepDuration:  500 * time.Millisecond,
		Colors:        "yellow,blue,magenta",
		Interpolation: colorful.InterpolateARGB.String(),
		Text:          "colorful",
		FontSize:      48,
		Mode:          ModeTerm,
		Output:        ".",
		Frames:        0,
		FPS:           30,
	}
}

// Load layers environment variables and command-line flags over Default.
func Load(ctx context.Context) (*Config, error) {
	cfg := Default()
	flagSrc, err := flag.NewCmdLineSet(flag.DefaultFlagNameConfig(), cfg)
	if err != nil {
		return nil, fmt.Errorf("config: flags: %w", err)
	}
	d, err := dials.Config(ctx, cfg, &env.Source{}, flagSrc)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return d.View(), nil
}

// Settings is a parsed, validated Config.
type Settings struct {
	Direction     colorful.Direction
	StepDuration  time.Duration
	Colors        []colorful.Color
	Interpolation colorful.Interpolation
}

// Settings parses the animation fields. Empty fields fall back to their
// defaults.
func (c *Config) Settings() (Settings, error) {
	def := Default()

	dir := c.Direction
	if dir == "" {
		dir = def.Direction
	}
	d, err := colorful.ParseDirection(dir)
	if err != nil {
		return Settings{}, err
	}

	step := c.StepDuration
	if step == 0 {
		step = def.StepDuration
	}
	if step < 0 {
		return Settings{}, fmt.Errorf("%w: step duration %v must be positive", colorful.ErrInvalidConfiguration, step)
	}

	list := c.Colors
	if strings.TrimSpace(list) == "" {
		list = def.Colors
	}
	colors, err := ParseColors(list)
	if err != nil {
		return Settings{}, err
	}
	if len(colors) < colorful.MinColors {
		return Settings{}, fmt.Errorf("%w: need at least %d colors, got %d",
			colorful.ErrInvalidConfiguration, colorful.MinColors, len(colors))
	}

	interp, err := colorful.ParseInterpolation(c.Interpolation)
	if err != nil {
		return Settings{}, err
	}

	return Settings{Direction: d, StepDuration: step, Colors: colors, Interpolation: interp}, nil
}

// Validate checks the output fields.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModePNG, ModeTerm:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if c.Text == "" {
		return fmt.Errorf("%w: empty text", colorful.ErrInvalidConfiguration)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", colorful.ErrInvalidConfiguration, c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames %d must not be negative", colorful.ErrInvalidConfiguration, c.Frames)
	}
	_, err := c.Settings()
	return err
}
