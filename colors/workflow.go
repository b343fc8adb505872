package colors

import "github.com/printforge/preflight/model"

// WorkflowOptions describe how color should be handled downstream for
// a classified artwork.
type WorkflowOptions struct {
	// PreserveCMYK keeps existing CMYK definitions untouched.
	PreserveCMYK bool
	// ConvertToCMYK converts RGB definitions to CMYK for print.
	ConvertToCMYK bool
	// AllowRasterConversion permits rasterizing during production.
	// Never set for artwork with vector content.
	AllowRasterConversion bool
}

// WorkflowFor derives the color workflow from a content verdict.
// Vector and mixed artwork keeps its vector parts as-is; only
// raster-routed artwork may be rasterized further.
func WorkflowFor(rec model.Recommendation, hasCMYK bool) WorkflowOptions {
	switch rec {
	case model.RecommendVector, model.RecommendMixed:
		return WorkflowOptions{
			PreserveCMYK:          hasCMYK,
			ConvertToCMYK:         !hasCMYK,
			AllowRasterConversion: false,
		}
	default:
		return WorkflowOptions{
			PreserveCMYK:          false,
			ConvertToCMYK:         true,
			AllowRasterConversion: true,
		}
	}
}

// Reference is a named production ink with its screen and print
// representations. Reference tables are read-only configuration.
type Reference struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
	C    int    `yaml:"c"`
	M    int    `yaml:"m"`
	Y    int    `yaml:"y"`
	K    int    `yaml:"k"`
}

// DefaultReferences returns the standard production ink set.
func DefaultReferences() []Reference {
	return []Reference{
		{Name: "White", Hex: "#FFFFFF", C: 0, M: 0, Y: 0, K: 0},
		{Name: "Black", Hex: "#000000", C: 0, M: 0, Y: 0, K: 100},
		{Name: "Red", Hex: "#E4002B", C: 0, M: 100, Y: 85, K: 0},
		{Name: "Royal Blue", Hex: "#0033A0", C: 100, M: 75, Y: 0, K: 5},
		{Name: "Kelly Green", Hex: "#007A33", C: 90, M: 10, Y: 100, K: 10},
		{Name: "Yellow", Hex: "#FEDD00", C: 0, M: 10, Y: 100, K: 0},
		{Name: "Hi-Viz Orange", Hex: "#FF6600", C: 0, M: 60, Y: 100, K: 0},
	}
}

// NearestReference finds the reference ink closest to the given hex
// literal by RGB distance. ok is false when hex cannot be parsed or
// the table is empty.
func NearestReference(refs []Reference, hex string) (Reference, bool) {
	r, g, b, err := parseHexRGB(hex)
	if err != nil {
		return Reference{}, false
	}
	best := -1
	bestDist := 0
	for i, ref := range refs {
		rr, rg, rb, rerr := parseHexRGB(ref.Hex)
		if rerr != nil {
			continue
		}
		d := sq(rr-r) + sq(rg-g) + sq(rb-b)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return Reference{}, false
	}
	return refs[best], true
}

func sq(v int) int { return v * v }
