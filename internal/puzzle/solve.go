package puzzle

import (
	"fmt"

	"pikaptcha/internal/walker"
)

// SolveOptions tune a single run.
type SolveOptions struct {
	// Side overrides the side named in the file.
	Side *walker.Side
	// DefaultSide is used when neither Side nor the file names one.
	DefaultSide walker.Side
	// MaxSteps bounds the walk; 0 means unbounded.
	MaxSteps int
	// Observe is called after every step.
	Observe func(*walker.Walker)
}

// Solve walks the maze until the walker is back on its start.
func (p *Puzzle) Solve(opts SolveOptions) (*Result, error) {
	g, marker, err := p.start()
	if err != nil {
		return nil, err
	}
	dir, ok := walker.ParseDirection(marker.Glyph)
	if !ok {
		return nil, fmt.Errorf("%w: %s: glyph %q", ErrStart, p.Name, marker.Glyph)
	}

	side := opts.DefaultSide
	switch {
	case opts.Side != nil:
		side = *opts.Side
	case p.Side != nil:
		side = *p.Side
	}

	w := walker.New(g, marker.Cell, dir, side)
	steps, err := w.Run(opts.MaxSteps, opts.Observe)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	return &Result{
		Name:    p.Name,
		Side:    side.Letter(),
		Start:   Position{Row: marker.Cell.Y, Col: marker.Cell.X},
		Heading: dir.String(),
		Steps:   steps,
		Lines:   g.Lines(),
		Visits:  g.Visits(),
	}, nil
}
