package config

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/colorful"
)

func TestDefaultSettings(t *testing.T) {
	s, err := Default().Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Direction != colorful.Right || s.StepDuration != 500*time.Millisecond || s.Interpolation != colorful.InterpolateARGB {
		t.Errorf("Settings() = %+v", s)
	}
	want := []colorful.Color{colorful.Yellow, colorful.Blue, colorful.Magenta}
	if len(s.Colors) != len(want) {
		t.Fatalf("Colors = %v, want %v", s.Colors, want)
	}
	for i := range want {
		if s.Colors[i] != want[i] {
			t.Errorf("Colors[%d] = %v, want %v", i, s.Colors[i], want[i])
		}
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestSettingsEmptyFieldsUseDefaults(t *testing.T) {
	s, err := (&Config{}).Settings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Direction != colorful.Right || s.StepDuration != 500*time.Millisecond || len(s.Colors) != 3 {
		t.Errorf("Settings() = %+v, want defaults", s)
	}
}

func TestSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"bad direction", Config{Direction: "diagonal"}, colorful.ErrInvalidConfiguration},
		{"negative step", Config{StepDuration: -time.Second}, colorful.ErrInvalidConfiguration},
		{"one color", Config{Colors: "red"}, colorful.ErrInvalidConfiguration},
		{"bad color", Config{Colors: "red,notacolor"}, ErrUnknownColor},
		{"bad interpolation", Config{Interpolation: "hsl"}, colorful.ErrInvalidConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Settings(); !errors.Is(err, tt.want) {
				t.Errorf("Settings() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown mode", func(c *Config) { c.Mode = "gif" }, ErrUnknownMode},
		{"empty text", func(c *Config) { c.Text = "" }, colorful.ErrInvalidConfiguration},
		{"zero fps", func(c *Config) { c.FPS = 0 }, colorful.ErrInvalidConfiguration},
		{"negative frames", func(c *Config) { c.Frames = -1 }, colorful.ErrInvalidConfiguration},
		{"png ok", func(c *Config) { c.Mode = ModePNG }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want colorful.Color
	}{
		{"red", colorful.Red},
		{"Magenta", colorful.Magenta},
		{" blue ", colorful.Blue},
		{"#f0c", colorful.RGB(0xFF, 0x00, 0xCC)},
		{"#123456", colorful.RGB(0x12, 0x34, 0x56)},
		{"#80FF0000", colorful.ARGB(0x80, 0xFF, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "chartreuse-ish", "#12", "#zzzzzz", "#GG000000"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", in, err)
		}
	}
}

func TestParseColorsSkipsEmpty(t *testing.T) {
	got, err := ParseColors("red, ,blue,")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != colorful.Red || got[1] != colorful.Blue {
		t.Errorf("ParseColors() = %v, want [Red Blue]", got)
	}
}
