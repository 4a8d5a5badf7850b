package puzzle

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Result is the outcome of one walk. Visits holds the exact counters
// (walls are -1); Lines is the puzzle rendering with counters mod 10.
type Result struct {
	Name    string   `yaml:"name,omitempty"`
	Side    string   `yaml:"side"`
	Start   Position `yaml:"start"`
	Heading string   `yaml:"heading"`
	Steps   int      `yaml:"steps"`
	Lines   []string `yaml:"grid"`
	Visits  [][]int  `yaml:"visits,flow"`
}

// WriteText prints the grid lines only.
func (r *Result) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, strings.Join(r.Lines, "\n")+"\n")
	return err
}

func (r *Result) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}

// Write dispatches on format: "text" or "yaml".
func (r *Result) Write(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.WriteText(w)
	case "yaml":
		return r.WriteYAML(w)
	}
	return fmt.Errorf("unknown output format %q", format)
}
