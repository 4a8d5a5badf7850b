package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pikaptcha/internal/grid"
)

func TestTurn(t *testing.T) {
	tests := []struct {
		from    rune
		degrees int
		want    rune
	}{
		{'<', 90, 'v'},
		{'v', 90, '>'},
		{'>', 90, '^'},
		{'^', 90, '<'},
		{'<', -90, '^'},
		{'v', -90, '<'},
		{'>', -90, 'v'},
		{'^', -90, '>'},
		{'>', 180, '>'},
		{'v', 0, 'v'},
		{'<', 45, '<'},
	}
	for _, tt := range tests {
		d, ok := ParseDirection(tt.from)
		require.True(t, ok)
		assert.Equal(t, tt.want, d.Turn(tt.degrees).Glyph(), "%c turned %d", tt.from, tt.degrees)
	}
}

func TestParseDirection(t *testing.T) {
	_, ok := ParseDirection('#')
	assert.False(t, ok)
}

func TestStep(t *testing.T) {
	c := grid.Cell{Y: 1, X: 1}
	assert.Equal(t, grid.Cell{Y: 1, X: 2}, Right.Step(c))
	assert.Equal(t, grid.Cell{Y: 0, X: 1}, Up.Step(c))
	assert.Equal(t, grid.Cell{Y: 1, X: 0}, Left.Step(c))
	assert.Equal(t, grid.Cell{Y: 2, X: 1}, Down.Step(c))
}

func TestSideOf(t *testing.T) {
	assert.Equal(t, Up, LeftHand.Of(Right))
	assert.Equal(t, Down, RightHand.Of(Right))
	assert.Equal(t, Right, LeftHand.Of(Down))
	assert.Equal(t, Left, RightHand.Of(Down))
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{"L": LeftHand, "l": LeftHand, "left": LeftHand, "R": RightHand, " right ": RightHand} {
		got, err := ParseSide(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSide("up")
	assert.ErrorIs(t, err, ErrSide)
}
