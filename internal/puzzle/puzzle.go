package puzzle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pikaptcha/internal/grid"
	"pikaptcha/internal/walker"
)

var (
	ErrDimensions = errors.New("puzzle dimensions do not match")
	ErrStart      = errors.New("puzzle needs exactly one start glyph")
)

// Puzzle is a validated maze with its start glyph still in place.
type Puzzle struct {
	Name  string
	Lines []string
	// Side is nil when the file does not name one.
	Side *walker.Side
}

// Load reads a puzzle file from disk.
func Load(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse reads a puzzle and checks its header against the rows.
func Parse(name string, r io.Reader) (*Puzzle, error) {
	file, err := parseFile(name, r)
	if err != nil {
		return nil, err
	}
	if len(file.Rows) != file.Height {
		return nil, fmt.Errorf("%w: %s: header says %d rows, got %d", ErrDimensions, name, file.Height, len(file.Rows))
	}
	p := &Puzzle{Name: name, Lines: make([]string, len(file.Rows))}
	for i, row := range file.Rows {
		if len(row.Text) != file.Width {
			return nil, fmt.Errorf("%w: %s: row %d is %d wide, header says %d", ErrDimensions, row.Pos, i, len(row.Text), file.Width)
		}
		p.Lines[i] = row.Text
	}
	if file.Side != "" {
		side, err := walker.ParseSide(file.Side)
		if err != nil {
			return nil, err
		}
		p.Side = &side
	}
	if _, _, err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromLines wraps a bare grid with no header or side line.
func FromLines(name string, lines []string) (*Puzzle, error) {
	p := &Puzzle{Name: name, Lines: append([]string(nil), lines...)}
	if _, _, err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Puzzle) start() (*grid.Grid, grid.Marker, error) {
	g, err := grid.New(p.Lines)
	if err != nil {
		return nil, grid.Marker{}, fmt.Errorf("%s: %w", p.Name, err)
	}
	markers := g.Markers()
	if len(markers) != 1 {
		cells := make([]string, len(markers))
		for i, m := range markers {
			cells[i] = m.Cell.String()
		}
		return nil, grid.Marker{}, fmt.Errorf("%w: %s: found %d [%s]", ErrStart, p.Name, len(markers), strings.Join(cells, " "))
	}
	return g, markers[0], nil
}
