// Package geometry extracts content bounds from vector markup.
//
// The parser measures where the ink actually is: it accumulates
// extremal coordinates from visible drawable primitives, filters out
// conversion-pipeline artifacts, and rejects numeric noise through
// plausibility windows. The bounds it produces are distinct from -
// and usually tighter than - the document's declared frame.
package geometry

import (
	"log/slog"

	"github.com/printforge/preflight/markup"
	"github.com/printforge/preflight/model"
)

// Config names the heuristic thresholds the parser runs with. The
// defaults were calibrated against trace-pipeline output and print-page
// exports; alternate sets can be injected for testing.
type Config struct {
	// LargeFormatThreshold is the declared-frame extent, in user
	// units, above which a document is treated as large-format.
	// Print-page documents need a much wider plausible-coordinate
	// window than small logo artwork.
	LargeFormatThreshold float64 `yaml:"large_format_threshold"`

	// SuspiciousPathMaxLen is the path-data length below which a path
	// is a filtering candidate. SuspiciousPathMaxLenLarge applies to
	// large-format documents, which legitimately contain many short
	// strokes, so the cutoff is lower there.
	SuspiciousPathMaxLen      int `yaml:"suspicious_path_max_len"`
	SuspiciousPathMaxLenLarge int `yaml:"suspicious_path_max_len_large"`

	// Plausibility windows. Coordinates outside the active window are
	// discarded as numeric noise.
	PlausibleMin      float64 `yaml:"plausible_min"`
	PlausibleMax      float64 `yaml:"plausible_max"`
	PlausibleMinLarge float64 `yaml:"plausible_min_large"`
	PlausibleMaxLarge float64 `yaml:"plausible_max_large"`

	// Rescan window used when a large-format scan finds nothing. It
	// permits negative coordinates: outlined-font glyph control points
	// legitimately extend past the nominal page box.
	RescanMin float64 `yaml:"rescan_min"`
	RescanMax float64 `yaml:"rescan_max"`

	// EdgeTolerance is how close a coordinate must be to an axis edge
	// to count as sitting exactly on it.
	EdgeTolerance float64 `yaml:"edge_tolerance"`
}

// DefaultConfig returns the calibrated default thresholds.
func DefaultConfig() Config {
	return Config{
		LargeFormatThreshold:      600,
		SuspiciousPathMaxLen:      30,
		SuspiciousPathMaxLenLarge: 10,
		PlausibleMin:              -50,
		PlausibleMax:              1500,
		PlausibleMinLarge:         0,
		PlausibleMaxLarge:         5000,
		RescanMin:                 -5000,
		RescanMax:                 10000,
		EdgeTolerance:             0.001,
	}
}

// IsLargeFormat reports whether a declared frame exceeds the
// large-format threshold in either axis.
func (c Config) IsLargeFormat(frame model.Frame) bool {
	return frame.Exceeds(c.LargeFormatThreshold)
}

// Diagnostics counts what the parser saw and what it excluded. The
// counts never affect the result; they exist so callers can log or
// surface why bounds came out the way they did.
type Diagnostics struct {
	Primitives           int
	SuspiciousPaths      int
	RelativeCommands     int
	MalformedPaths       int
	DiscardedCoordinates int
	Rescanned            bool
	FromClip             bool
}

// Parser computes content bounds from vector markup. It is stateless
// and safe for concurrent use.
type Parser struct {
	cfg Config
}

// NewParser returns a parser using the given thresholds.
func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

type window struct {
	min, max float64
}

func (w window) contains(v float64) bool {
	return v >= w.min && v <= w.max
}

// Bounds computes the content bounds of vector markup. The declared
// frame may be zero, in which case the document's own frame is used.
// It never fails: unreadable markup degrades to nil bounds with a
// diagnostic log entry.
func (p *Parser) Bounds(text string, declared model.Frame, largeFormat bool) (*model.GeometryBounds, Diagnostics) {
	var diag Diagnostics

	doc, err := markup.Parse(text)
	if err != nil {
		slog.Debug("geometry: markup unreadable, treating as no content", "error", err)
		return nil, diag
	}
	if declared.IsZero() {
		declared = doc.Frame()
	}

	win := window{p.cfg.PlausibleMin, p.cfg.PlausibleMax}
	if largeFormat {
		win = window{p.cfg.PlausibleMinLarge, p.cfg.PlausibleMaxLarge}
	}

	// Clip regions typically encode the intended crop more reliably
	// than raw path soup, so clip geometry wins when it is usable.
	if clips := doc.ClipPaths(); len(clips) > 0 {
		acc := newAccumulator(win)
		for _, clip := range clips {
			for _, child := range clip.Children() {
				p.accumulate(child, declared, largeFormat, acc, &diag)
			}
		}
		if b := acc.bounds(); b != nil {
			diag.FromClip = true
			diag.DiscardedCoordinates += acc.discarded
			return b, diag
		}
	}

	acc := newAccumulator(win)
	p.scan(doc.Root(), declared, largeFormat, acc, &diag)
	b := acc.bounds()
	diag.DiscardedCoordinates += acc.discarded

	if b == nil && largeFormat {
		// One rescan with the wide window that permits negatives.
		diag.Rescanned = true
		slog.Debug("geometry: no plausible coordinates, rescanning with wide window",
			"min", p.cfg.RescanMin, "max", p.cfg.RescanMax)
		acc = newAccumulator(window{p.cfg.RescanMin, p.cfg.RescanMax})
		p.scan(doc.Root(), declared, largeFormat, acc, &diag)
		b = acc.bounds()
		diag.DiscardedCoordinates += acc.discarded
	}

	return b, diag
}

// nonRenderedTags are containers whose children do not draw directly.
var nonRenderedTags = []string{"defs", "clippath", "mask", "symbol", "pattern", "marker"}

// scan walks the element tree accumulating visible drawable geometry.
func (p *Parser) scan(e markup.Element, declared model.Frame, largeFormat bool, acc *accumulator, diag *Diagnostics) {
	for _, tag := range nonRenderedTags {
		if e.Is(tag) {
			return
		}
	}
	if isDrawable(e) && !e.Hidden() {
		p.accumulate(e, declared, largeFormat, acc, diag)
	}
	for _, child := range e.Children() {
		p.scan(child, declared, largeFormat, acc, diag)
	}
}

func isDrawable(e markup.Element) bool {
	return e.Is("rect") || e.Is("circle") || e.Is("path")
}

// accumulate extracts a single primitive's extremal coordinates.
func (p *Parser) accumulate(e markup.Element, declared model.Frame, largeFormat bool, acc *accumulator, diag *Diagnostics) {
	switch {
	case e.Is("rect"):
		w, wok := e.Float("width")
		h, hok := e.Float("height")
		if !wok || !hok || w <= 0 || h <= 0 {
			return
		}
		x, _ := e.Float("x")
		y, _ := e.Float("y")
		diag.Primitives++
		acc.addX(x, x+w)
		acc.addY(y, y+h)

	case e.Is("circle"):
		r, rok := e.Float("r")
		if !rok || r <= 0 {
			return
		}
		cx, _ := e.Float("cx")
		cy, _ := e.Float("cy")
		diag.Primitives++
		acc.addX(cx-r, cx+r)
		acc.addY(cy-r, cy+r)

	case e.Is("path"):
		d := e.Attr("d")
		if d == "" {
			return
		}
		pd, err := parsePathData(d)
		if err != nil {
			diag.MalformedPaths++
			slog.Debug("geometry: skipping malformed path data", "error", err)
			return
		}
		pc := extractPathCoords(pd)
		diag.RelativeCommands += pc.relative
		if len(pc.xs) == 0 && len(pc.ys) == 0 {
			return
		}
		if p.suspicious(d, pc, declared, largeFormat) {
			diag.SuspiciousPaths++
			return
		}
		diag.Primitives++
		acc.addX(pc.xs...)
		acc.addY(pc.ys...)
	}
}

// suspicious reports whether a path looks like a rendering artifact of
// the conversion pipeline: very short path data whose coordinates sit
// exactly on the axis edges (0 or the declared frame extent).
func (p *Parser) suspicious(d string, pc pathCoords, declared model.Frame, largeFormat bool) bool {
	cutoff := p.cfg.SuspiciousPathMaxLen
	if largeFormat {
		cutoff = p.cfg.SuspiciousPathMaxLenLarge
	}
	if len(d) >= cutoff {
		return false
	}
	for _, x := range pc.xs {
		if !p.onEdge(x, declared.Width) {
			return false
		}
	}
	for _, y := range pc.ys {
		if !p.onEdge(y, declared.Height) {
			return false
		}
	}
	return true
}

func (p *Parser) onEdge(v, extent float64) bool {
	if v >= -p.cfg.EdgeTolerance && v <= p.cfg.EdgeTolerance {
		return true
	}
	return extent > 0 && v >= extent-p.cfg.EdgeTolerance && v <= extent+p.cfg.EdgeTolerance
}

// accumulator tracks per-axis extrema, discarding values outside its
// plausibility window.
type accumulator struct {
	win                    window
	minX, maxX, minY, maxY float64
	haveX, haveY           bool
	discarded              int
}

func newAccumulator(win window) *accumulator {
	return &accumulator{win: win}
}

func (a *accumulator) addX(vals ...float64) {
	for _, v := range vals {
		if !a.win.contains(v) {
			a.discarded++
			continue
		}
		if !a.haveX || v < a.minX {
			a.minX = v
		}
		if !a.haveX || v > a.maxX {
			a.maxX = v
		}
		a.haveX = true
	}
}

func (a *accumulator) addY(vals ...float64) {
	for _, v := range vals {
		if !a.win.contains(v) {
			a.discarded++
			continue
		}
		if !a.haveY || v < a.minY {
			a.minY = v
		}
		if !a.haveY || v > a.maxY {
			a.maxY = v
		}
		a.haveY = true
	}
}

func (a *accumulator) bounds() *model.GeometryBounds {
	if !a.haveX || !a.haveY {
		return nil
	}
	return model.NewGeometryBounds(a.minX, a.minY, a.maxX, a.maxY)
}
