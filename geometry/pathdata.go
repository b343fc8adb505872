package geometry

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Path data is a flat stream of single-letter commands followed by
// numeric arguments, with whitespace and commas as interchangeable
// separators. The grammar below parses that stream without assigning
// meaning; interpretation happens in extractPathCoords.
var (
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Command", Pattern: `[MmLlHhVvCcSsQqTtAaZz]`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Sep", Pattern: `[\s,]+`},
	})

	pathParser = participle.MustBuild[pathData](
		participle.Lexer(pathLexer),
		participle.Elide("Sep"),
	)
)

type pathData struct {
	Segments []pathSegment `parser:"@@*"`
}

type pathSegment struct {
	Command string    `parser:"@Command"`
	Args    []float64 `parser:"@Number*"`
}

func parsePathData(d string) (*pathData, error) {
	return pathParser.ParseString("", d)
}

// pathCoords holds the literal coordinates extracted from a path,
// split by axis, plus a count of relative (lowercase) commands that
// the extraction heuristic does not handle.
type pathCoords struct {
	xs, ys   []float64
	relative int
}

// extractPathCoords pulls extremal-candidate coordinates out of parsed
// path data. Only absolute commands contribute: moveto/lineto family
// as x,y pairs, H and V as single-axis values, and curve commands with
// every control point included (outlined-font glyph control points
// legitimately extend past the nominal page box). Arcs contribute only
// their endpoint; the radii and flags are not coordinates.
func extractPathCoords(pd *pathData) pathCoords {
	var pc pathCoords
	for _, seg := range pd.Segments {
		args := seg.Args
		switch seg.Command {
		case "M", "L", "T", "C", "S", "Q":
			for i := 0; i+1 < len(args); i += 2 {
				pc.xs = append(pc.xs, args[i])
				pc.ys = append(pc.ys, args[i+1])
			}
		case "H":
			pc.xs = append(pc.xs, args...)
		case "V":
			pc.ys = append(pc.ys, args...)
		case "A":
			for i := 0; i+6 < len(args); i += 7 {
				pc.xs = append(pc.xs, args[i+5])
				pc.ys = append(pc.ys, args[i+6])
			}
		case "Z", "z":
			// closepath carries no coordinates
		default:
			// Relative commands are unhandled by this heuristic;
			// counted so callers can flag the document.
			pc.relative++
		}
	}
	return pc
}
