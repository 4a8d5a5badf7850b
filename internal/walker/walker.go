package walker

import (
	"errors"
	"fmt"

	"pikaptcha/internal/grid"
)

var ErrStepLimit = errors.New("walker did not return to start")

// maxRetries is how many times Move turns away from the side before
// giving up: once to the opposite side, once more to face backwards.
const maxRetries = 2

// Walker follows one wall of a grid and counts visits in it.
type Walker struct {
	grid  *grid.Grid
	start grid.Cell
	pos   grid.Cell
	dir   Direction
	side  Side
	steps int
}

// New places a walker on start. The start tile counter is reset to 0.
func New(g *grid.Grid, start grid.Cell, dir Direction, side Side) *Walker {
	g.Reset(start)
	return &Walker{grid: g, start: start, pos: start, dir: dir, side: side}
}

func (w *Walker) Position() grid.Cell { return w.pos }
func (w *Walker) Start() grid.Cell { return w.start }
func (w *Walker) Direction() Direction { return w.dir }
func (w *Walker) Side() Side { return w.side }
func (w *Walker) Grid() *grid.Grid { return w.grid }

// Steps counts calls to Move.
func (w *Walker) Steps() int { return w.steps }

func (w *Walker) IsWallForward() bool {
	return w.grid.IsWall(w.dir.Step(w.pos))
}

func (w *Walker) IsWallOnSide() bool {
	return w.grid.IsWall(w.side.Of(w.dir).Step(w.pos))
}

func (w *Walker) IsStartPosition() bool {
	return w.pos == w.start
}

// Turn accepts 90 and -90 only.
func (w *Walker) Turn(degrees int) {
	w.dir = w.dir.Turn(degrees)
}

// MoveForward counts the current tile and steps ahead. It reports false
// and does nothing when the way is blocked.
func (w *Walker) MoveForward() bool {
	if w.IsWallForward() {
		return false
	}
	w.grid.IncrementCounter(w.pos)
	w.pos = w.dir.Step(w.pos)
	return true
}

// Move takes one step of the wall-following rule: side first, then
// ahead, then turn away from the side and try again. A walker boxed in on
// all four sides stays put.
func (w *Walker) Move() {
	w.steps++
	for retry := 0; ; retry++ {
		if !w.IsWallOnSide() {
			w.Turn(w.side.degrees())
			w.MoveForward()
			return
		}
		if !w.IsWallForward() {
			w.MoveForward()
			return
		}
		if retry == maxRetries {
			return
		}
		w.Turn(-w.side.degrees())
	}
}

// Run moves at least once and until the walker is back on its start.
// observe, if set, is called after every step. A positive limit caps the
// number of steps.
func (w *Walker) Run(limit int, observe func(*Walker)) (int, error) {
	n := 0
	for {
		w.Move()
		n++
		if observe != nil {
			observe(w)
		}
		if w.IsStartPosition() {
			return n, nil
		}
		if limit > 0 && n >= limit {
			return n, fmt.Errorf("%w after %d steps (at %v)", ErrStepLimit, n, w.pos)
		}
	}
}
