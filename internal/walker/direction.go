package walker

import (
	"errors"
	"fmt"
	"strings"

	"pikaptcha/internal/grid"
)

var ErrSide = errors.New("side must be L or R")

// Direction is a heading. The order is counter-clockwise on screen so a
// +90 turn is the next value.
type Direction uint8

const (
	Right Direction = iota
	Up
	Left
	Down
)

var glyphs = [...]rune{Right: '>', Up: '^', Left: '<', Down: 'v'}

// ParseDirection maps a start glyph to its heading.
func ParseDirection(r rune) (Direction, bool) {
	for d, g := range glyphs {
		if g == r {
			return Direction(d), true
		}
	}
	return 0, false
}

func (d Direction) Glyph() rune {
	return glyphs[d%4]
}

func (d Direction) String() string {
	return [...]string{"right", "up", "left", "down"}[d%4]
}

// Step is the neighbour of c in direction d.
func (d Direction) Step(c grid.Cell) grid.Cell {
	switch d {
	case Right:
		c.X++
	case Up:
		c.Y--
	case Left:
		c.X--
	case Down:
		c.Y++
	}
	return c
}

// Turn rotates by +90 (counter-clockwise, > to ^) or -90 (clockwise).
// Other angles leave d unchanged.
func (d Direction) Turn(degrees int) Direction {
	switch degrees {
	case 90:
		return (d + 1) % 4
	case -90:
		return (d + 3) % 4
	}
	return d
}

// Side is the wall the walker keeps its hand on.
type Side uint8

const (
	LeftHand Side = iota
	RightHand
)

// ParseSide accepts "L", "R", "left" and "right" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return LeftHand, nil
	case "r", "right":
		return RightHand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrSide, s)
}

// degrees is the turn toward the side.
func (s Side) degrees() int {
	if s == RightHand {
		return -90
	}
	return 90
}

// Of is the heading pointing at the side cell when facing d.
func (s Side) Of(d Direction) Direction {
	return d.Turn(s.degrees())
}

func (s Side) Letter() string {
	if s == RightHand {
		return "R"
	}
	return "L"
}

func (s Side) String() string {
	if s == RightHand {
		return "right"
	}
	return "left"
}
