package markup

import (
	"path/filepath"
	"strings"

	"github.com/printforge/preflight/model"
)

// vectorTags are the substantive drawing primitives counted as vector
// content. Container and defs elements are deliberately excluded.
var vectorTags = []string{
	"path", "rect", "circle", "ellipse", "line", "polyline", "polygon", "text", "tspan",
}

// Inventory summarizes what a document draws with.
type Inventory struct {
	Images model.RasterInventory
	Vector model.VectorInventory

	// PathCount and ClipRuleCount feed the structural-path exception:
	// when the only paths are clipping scaffolding, they are framing,
	// not artwork.
	PathCount     int
	ClipRuleCount int
}

// Inventory walks the document and tallies bitmap references and
// vector primitives.
func (d *Document) Inventory() Inventory {
	var inv Inventory
	formats := map[string]bool{}
	types := map[string]bool{}

	d.Walk(func(e Element) bool {
		tag := strings.ToLower(e.Tag())
		switch tag {
		case "image":
			inv.Images.Count++
			if f := imageFormat(e.Attr("href")); f != "" && !formats[f] {
				formats[f] = true
				inv.Images.Formats = append(inv.Images.Formats, f)
			}
			return true
		}
		for _, vt := range vectorTags {
			if tag == vt {
				inv.Vector.Count++
				if !types[tag] {
					types[tag] = true
					inv.Vector.Types = append(inv.Vector.Types, tag)
				}
				break
			}
		}
		if tag == "path" {
			inv.PathCount++
		}
		if e.HasAttr("clip-rule") {
			inv.ClipRuleCount++
		}
		return true
	})

	return inv
}

// HasRaster reports whether the document embeds bitmap content.
func (inv Inventory) HasRaster() bool {
	return inv.Images.Count > 0
}

// SubstantiveVector reports whether the document's vector content is
// real artwork. When a bitmap is present and the only vector content
// is paths within the clip-rule allowance (path count at most
// clip-rule occurrences plus one), those paths are framing, not
// artwork.
func (inv Inventory) SubstantiveVector() bool {
	if inv.Vector.Count == 0 {
		return false
	}
	if !inv.HasRaster() {
		return true
	}
	if inv.Vector.Count > inv.PathCount {
		// Non-path primitives are never clipping scaffolding.
		return true
	}
	return inv.PathCount > inv.ClipRuleCount+1
}

// imageFormat derives a bitmap format name from an image reference,
// which is either a data URI or a file reference.
func imageFormat(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "data:") {
		mime := href[len("data:"):]
		if idx := strings.IndexAny(mime, ";,"); idx >= 0 {
			mime = mime[:idx]
		}
		if _, sub, ok := strings.Cut(mime, "/"); ok {
			return strings.ToLower(sub)
		}
		return ""
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(href), "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	return ext
}
