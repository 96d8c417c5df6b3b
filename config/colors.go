package config

import (
	"fmt"
	"strconv"
	"strings"

	gocolorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/gogpu/colorful"
)

// ParseColors parses a comma-separated color list. Empty items are skipped.
func ParseColors(list string) ([]colorful.Color, error) {
	var out []colorful.Color
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		c, err := ParseColor(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseColor parses an SVG color name, #RGB, #RRGGBB or #AARRGGBB.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return colorful.FromColor(c), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	alpha := uint8(0xFF)
	hex := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		alpha = uint8(a)
		hex = "#" + s[3:]
	}

	c, err := gocolorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	r, g, b := c.RGB255()
	return colorful.ARGB(alpha, r, g, b), nil
}
