package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShape = errors.New("grid is not rectangular")
	ErrGlyph = errors.New("unknown grid glyph")
)

// Cell is a row/column pair. Cells outside the grid are walls.
type Cell struct {
	Y, X int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Y, c.X)
}

// Kind is what occupies a tile.
type Kind uint8

const (
	Open Kind = iota
	Wall
)

// Tile holds the content of one grid position.
type Tile struct {
	Kind   Kind
	Visits int
}

// Marker is a direction glyph found while parsing.
type Marker struct {
	Cell  Cell
	Glyph rune
}

// Grid is a rectangular maze with a visit counter per open tile.
type Grid struct {
	width   int
	height  int
	tiles   [][]Tile
	markers []Marker
}

// IsMarkerGlyph reports whether r marks a start cell and heading.
func IsMarkerGlyph(r rune) bool {
	return r == '>' || r == '<' || r == '^' || r == 'v'
}

// New builds a grid from puzzle lines.
// '#' is a wall, a digit is an open tile with that initial count and a
// direction glyph is an open tile with count 0 recorded in Markers.
func New(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrShape)
	}
	g := &Grid{width: len(lines[0]), height: len(lines)}
	g.tiles = make([][]Tile, g.height)
	for y, line := range lines {
		if len(line) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, y, len(line), g.width)
		}
		g.tiles[y] = make([]Tile, g.width)
		for x, r := range []byte(line) {
			switch {
			case r == '#':
				g.tiles[y][x] = Tile{Kind: Wall}
			case r >= '0' && r <= '9':
				g.tiles[y][x] = Tile{Kind: Open, Visits: int(r - '0')}
			case IsMarkerGlyph(rune(r)):
				g.tiles[y][x] = Tile{Kind: Open}
				g.markers = append(g.markers, Marker{Cell: Cell{Y: y, X: x}, Glyph: rune(r)})
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrGlyph, r, Cell{Y: y, X: x})
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Markers returns the direction glyphs in reading order.
func (g *Grid) Markers() []Marker {
	return append([]Marker(nil), g.markers...)
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Y >= 0 && c.Y < g.height && c.X >= 0 && c.X < g.width
}

// IsWall is true outside the grid and on wall tiles.
func (g *Grid) IsWall(c Cell) bool {
	return !g.InBounds(c) || g.tiles[c.Y][c.X].Kind == Wall
}

func (g *Grid) Tile(c Cell) (Tile, bool) {
	if !g.InBounds(c) {
		return Tile{}, false
	}
	return g.tiles[c.Y][c.X], true
}

// IncrementCounter adds one visit to an open tile. Walls are left alone.
func (g *Grid) IncrementCounter(c Cell) {
	if g.IsWall(c) {
		return
	}
	g.tiles[c.Y][c.X].Visits++
}

// Value is the visit count of c, 0 for walls.
func (g *Grid) Value(c Cell) int {
	if g.IsWall(c) {
		return 0
	}
	return g.tiles[c.Y][c.X].Visits
}

// Reset zeroes the counter of an open tile.
func (g *Grid) Reset(c Cell) {
	if g.IsWall(c) {
		return
	}
	g.tiles[c.Y][c.X].Visits = 0
}

// Visits copies the counters row by row; walls read -1.
func (g *Grid) Visits() [][]int {
	out := make([][]int, g.height)
	for y, row := range g.tiles {
		out[y] = make([]int, g.width)
		for x, t := range row {
			if t.Kind == Wall {
				out[y][x] = -1
				continue
			}
			out[y][x] = t.Visits
		}
	}
	return out
}

// Glyph is the puzzle character for c. Counters print modulo 10.
func (g *Grid) Glyph(c Cell) byte {
	if g.IsWall(c) {
		return '#'
	}
	return byte('0' + g.tiles[c.Y][c.X].Visits%10)
}

// Lines renders the grid back into the puzzle alphabet.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	buf := make([]byte, g.width)
	for y := range g.tiles {
		for x := range buf {
			buf[x] = g.Glyph(Cell{Y: y, X: x})
		}
		lines[y] = string(buf)
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
