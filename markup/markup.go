// Package markup provides structural access to SVG artwork documents.
//
// It wraps golang.org/x/net/html, which parses SVG as foreign content
// and tolerates the malformed markup that automatic trace pipelines
// routinely emit. The package answers structural questions (declared
// frame, element inventory, visibility, clip usage) and leaves
// coordinate extraction to the geometry package.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/printforge/preflight/model"
)

// Document is a parsed SVG document.
type Document struct {
	raw  string
	root *html.Node // the <svg> element
}

// Parse parses SVG markup. It returns an error only when no svg root
// element can be found; malformed children are tolerated.
func Parse(text string) (*Document, error) {
	node, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	root := findSVGRoot(node)
	if root == nil {
		return nil, fmt.Errorf("no svg root element found")
	}
	return &Document{raw: text, root: root}, nil
}

// Raw returns the original markup text.
func (d *Document) Raw() string {
	return d.raw
}

// Root returns the svg root element.
func (d *Document) Root() Element {
	return Element{node: d.root}
}

func findSVGRoot(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "svg") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findSVGRoot(c); found != nil {
			return found
		}
	}
	return nil
}

// Element is a single element inside the document.
type Element struct {
	node *html.Node
}

// Tag returns the element's tag name as parsed.
func (e Element) Tag() string {
	return e.node.Data
}

// Is reports whether the element's tag matches name, ignoring case.
func (e Element) Is(name string) bool {
	return strings.EqualFold(e.node.Data, name)
}

// Attr returns the value of the named attribute, ignoring case and
// namespace prefixes (so "href" matches xlink:href). It returns the
// empty string when the attribute is absent.
func (e Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e Element) HasAttr(name string) bool {
	for _, a := range e.node.Attr {
		if strings.EqualFold(a.Key, name) {
			return true
		}
	}
	return false
}

// Float returns the named attribute parsed as a number, ignoring a
// trailing unit suffix. ok is false when the attribute is absent or
// not numeric.
func (e Element) Float(name string) (float64, bool) {
	return parseLength(e.Attr(name))
}

// styleValue extracts one declaration from the element's inline style.
func (e Element) styleValue(property string) string {
	style := e.Attr("style")
	if style == "" {
		return ""
	}
	for _, decl := range strings.Split(style, ";") {
		key, val, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), property) {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// paint resolves a presentation property from the attribute or inline
// style, attribute first.
func (e Element) paint(property string) string {
	if v := e.Attr(property); v != "" {
		return strings.TrimSpace(v)
	}
	return e.styleValue(property)
}

// Hidden reports whether the element is marked invisible: no fill and
// no stroke, zero opacity, or an explicit hidden flag. SVG defaults
// stroke to none, so an element with fill="none" and no stroke
// attribute draws nothing.
func (e Element) Hidden() bool {
	if strings.EqualFold(e.paint("display"), "none") {
		return true
	}
	if strings.EqualFold(e.paint("visibility"), "hidden") {
		return true
	}
	if op := e.paint("opacity"); op != "" {
		if v, err := strconv.ParseFloat(op, 64); err == nil && v == 0 {
			return true
		}
	}
	fill := strings.ToLower(e.paint("fill"))
	stroke := strings.ToLower(e.paint("stroke"))
	noFill := fill == "none" || fill == "transparent"
	noStroke := stroke == "" || stroke == "none"
	return noFill && noStroke
}

// Children returns the element's direct child elements.
func (e Element) Children() []Element {
	var out []Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, Element{node: c})
		}
	}
	return out
}

// Walk visits every element under the svg root in document order.
// Returning false from fn stops the walk.
func (d *Document) Walk(fn func(Element) bool) {
	walk(d.root, fn)
}

func walk(n *html.Node, fn func(Element) bool) bool {
	if n.Type == html.ElementNode {
		if !fn(Element{node: n}) {
			return false
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// Elements returns every element whose tag matches one of the given
// names, ignoring case.
func (d *Document) Elements(names ...string) []Element {
	var out []Element
	d.Walk(func(e Element) bool {
		for _, name := range names {
			if e.Is(name) {
				out = append(out, e)
				break
			}
		}
		return true
	})
	return out
}

// ClipPaths returns the document's clipPath elements. Clip regions
// typically encode the intended crop more reliably than raw path soup.
func (d *Document) ClipPaths() []Element {
	return d.Elements("clippath")
}

// Frame returns the declared frame from the root width/height
// attributes, falling back to the viewBox extent. A zero Frame means
// the document declares no usable frame.
func (d *Document) Frame() model.Frame {
	root := Element{node: d.root}
	w, wok := root.Float("width")
	h, hok := root.Float("height")
	if wok && hok && w > 0 && h > 0 {
		return model.Frame{Width: w, Height: h}
	}
	if _, _, vw, vh, ok := d.ViewBox(); ok {
		return model.Frame{Width: vw, Height: vh}
	}
	return model.Frame{}
}

// ViewBox returns the parsed viewBox of the root element.
func (d *Document) ViewBox() (minX, minY, w, h float64, ok bool) {
	raw := Element{node: d.root}.Attr("viewbox")
	if raw == "" {
		return 0, 0, 0, 0, false
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) != 4 {
		return 0, 0, 0, 0, false
	}
	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return 0, 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], vals[3], true
}

// parseLength parses a numeric attribute value, tolerating a trailing
// unit suffix such as px, pt or mm.
func parseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
