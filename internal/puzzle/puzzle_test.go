package puzzle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pikaptcha/internal/walker"
)

const branching = `5 3
>000#
#0#00
00#0#
L
`

func parse(t *testing.T, src string) *Puzzle {
	t.Helper()
	p, err := Parse("test", strings.NewReader(src))
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	p := parse(t, branching)
	assert.Equal(t, []string{">000#", "#0#00", "00#0#"}, p.Lines)
	require.NotNil(t, p.Side)
	assert.Equal(t, walker.LeftHand, *p.Side)
}

func TestParseNoSide(t *testing.T) {
	p := parse(t, "2 2\r\nv0\r\n0#")
	assert.Nil(t, p.Side)
	assert.Equal(t, []string{"v0", "0#"}, p.Lines)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"too few rows", "2 3\nv0\n0#\n", ErrDimensions},
		{"too many rows", "2 1\nv0\n0#\n", ErrDimensions},
		{"wrong width", "3 2\nv0\n0#\n", ErrDimensions},
		{"no start", "2 2\n00\n0#\n", ErrStart},
		{"two starts", "2 2\nv>\n0#\n", ErrStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", strings.NewReader(tt.src))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("test", strings.NewReader("2 2\nv0\n0x\n"))
	assert.Error(t, err)
	_, err = Parse("test", strings.NewReader("v0\n0#\n"))
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	for _, side := range []walker.Side{walker.LeftHand, walker.RightHand} {
		p := parse(t, branching)
		res, err := p.Solve(SolveOptions{Side: &side, MaxSteps: 1000})
		require.NoError(t, err)
		assert.Equal(t, side.Letter(), res.Side)
		if diff := cmp.Diff([]string{"1322#", "#2#31", "12#1#"}, res.Lines); diff != "" {
			t.Fatalf("%s hand (-want +got):\n%s", side, diff)
		}
	}
}

func TestSolveSidePrecedence(t *testing.T) {
	p := parse(t, "2 2\nv0\n0#\nR\n")
	res, err := p.Solve(SolveOptions{DefaultSide: walker.LeftHand})
	require.NoError(t, err)
	assert.Equal(t, "R", res.Side)

	p = parse(t, "2 2\nv0\n0#\n")
	res, err = p.Solve(SolveOptions{DefaultSide: walker.LeftHand})
	require.NoError(t, err)
	assert.Equal(t, "L", res.Side)
	assert.Equal(t, []string{"11", "0#"}, res.Lines)
}

func TestSolveStepLimit(t *testing.T) {
	p, err := FromLines("row", []string{">0000"})
	require.NoError(t, err)
	_, err = p.Solve(SolveOptions{MaxSteps: 3})
	assert.ErrorIs(t, err, walker.ErrStepLimit)
}

func TestSolveDoesNotMutatePuzzle(t *testing.T) {
	p := parse(t, branching)
	_, err := p.Solve(SolveOptions{})
	require.NoError(t, err)
	res, err := p.Solve(SolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1322#", "#2#31", "12#1#"}, res.Lines)
}

func TestWriteYAML(t *testing.T) {
	p := parse(t, "2 2\nv0\n0#\nL\n")
	res, err := p.Solve(SolveOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.Write(&buf, "yaml"))

	var got Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Steps)
	assert.Equal(t, "down", got.Heading)
	assert.Equal(t, Position{Row: 0, Col: 0}, got.Start)
	assert.Equal(t, [][]int{{1, 1}, {0, -1}}, got.Visits)
}

func TestWriteText(t *testing.T) {
	res := &Result{Lines: []string{"11", "0#"}}
	var buf bytes.Buffer
	require.NoError(t, res.Write(&buf, "text"))
	assert.Equal(t, "11\n0#\n", buf.String())
	assert.Error(t, res.Write(&buf, "xml"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(branching), 0o644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
