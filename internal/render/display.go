package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"pikaptcha/internal/grid"
	"pikaptcha/internal/walker"
)

// Renderer draws a grid as a visit heat map.
type Renderer struct {
	wall  lipgloss.Style
	cold  lipgloss.Style
	warm  lipgloss.Style
	hot   lipgloss.Style
	robot lipgloss.Style
}

// NewRenderer picks colors for w. noColor forces plain puzzle glyphs.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		wall:  lr.NewStyle().Foreground(lipgloss.Color("8")),
		cold:  lr.NewStyle().Faint(true),
		warm:  lr.NewStyle().Foreground(lipgloss.Color("3")),
		hot:   lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		robot: lr.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}

func (r *Renderer) tile(g *grid.Grid, c grid.Cell) string {
	glyph := string(g.Glyph(c))
	if g.IsWall(c) {
		return r.wall.Render(glyph)
	}
	switch v := g.Value(c); {
	case v == 0:
		return r.cold.Render(glyph)
	case v < 3:
		return r.warm.Render(glyph)
	default:
		return r.hot.Render(glyph)
	}
}

// Frame renders g with the walker glyph drawn over its tile.
func (r *Renderer) Frame(g *grid.Grid, w *walker.Walker) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Cell{Y: y, X: x}
			if w != nil && w.Position() == c {
				b.WriteString(r.robot.Render(string(w.Direction().Glyph())))
				continue
			}
			b.WriteString(r.tile(g, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Animator redraws the maze after every step.
type Animator struct {
	Out      io.Writer
	Renderer *Renderer
	Delay    time.Duration
}

// Observe matches the walker.Run callback.
func (a *Animator) Observe(w *walker.Walker) {
	fmt.Fprint(a.Out, "\033[H\033[2J")
	fmt.Fprint(a.Out, a.Renderer.Frame(w.Grid(), w))
	fmt.Fprintf(a.Out, "step %d  %v %s\n", w.Steps(), w.Position(), w.Direction())
	if a.Delay > 0 {
		time.Sleep(a.Delay)
	}
}
