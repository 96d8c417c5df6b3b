package colorful

import (
	"fmt"
	"strings"
)

// Direction is the direction in which the gradient colors scroll.
type Direction int

const (
	// Right scrolls colors rightward. This is the default.
	Right Direction = iota
	// Left scrolls colors leftward.
	Left
	// Up scrolls colors upward.
	Up
	// Down scrolls colors downward.
	Down
)

// directionInfo describes the axis and endpoint order of a direction.
// Endpoints are expressed as multipliers of the measured extent.
type directionInfo struct {
	name       string
	horizontal bool
	start      Point
	end        Point
}

var directions = [...]directionInfo{
	Right: {name: "right", horizontal: true, start: Point{X: 1}, end: Point{}},
	Left:  {name: "left", horizontal: true, start: Point{}, end: Point{X: 1}},
	Up:    {name: "up", horizontal: false, start: Point{}, end: Point{Y: 1}},
	Down:  {name: "down", horizontal: false, start: Point{Y: 1}, end: Point{}},
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= Right && d <= Down
}

// Horizontal reports whether d sizes and orients along the width axis.
func (d Direction) Horizontal() bool {
	return d.info().horizontal
}

func (d Direction) info() directionInfo {
	if !d.Valid() {
		return directions[Right]
	}
	return directions[d]
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directions[d].name
}

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, info := range directions {
		if info.name == name {
			return Direction(d), nil
		}
	}
	return Right, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfiguration, s)
}

// DirectionFromValue decodes a stored integer attribute.
// Unknown values decode to Down.
func DirectionFromValue(v int) Direction {
	switch v {
	case 0:
		return Right
	case 1:
		return Left
	case 2:
		return Up
	default:
		return Down
	}
}
