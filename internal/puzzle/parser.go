package puzzle

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the raw puzzle file:
//
//	<width> <height>
//	<height rows of # 0-9 > < ^ v>
//	[L|R]
type File struct {
	Pos    lexer.Position
	Width  int    `parser:"EOL* @Row"`
	Height int    `parser:"@Row EOL+"`
	Rows   []*Row `parser:"@@+"`
	Side   string `parser:"(@Side EOL*)?"`
}

type Row struct {
	Pos  lexer.Position
	Text string `parser:"@Row EOL*"`
}

var puzzleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Side", Pattern: `[LR]`},
	{Name: "Row", Pattern: `[#0-9<>^v]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(puzzleLexer),
	participle.Elide("Whitespace"),
)

func parseFile(name string, r io.Reader) (*File, error) {
	return parser.Parse(name, r)
}
