// Package colors detects and tallies color usage in vector markup and
// carries the color-workflow rules for print production.
//
// Vector artwork keeps its CMYK definitions end to end; raster artwork
// is converted. The tally feeds the preflight report's color-space
// verdict, and the reference table names detected colors against known
// production inks.
package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Space is a detected color space.
type Space string

const (
	SpaceRGB     Space = "rgb"
	SpaceCMYK    Space = "cmyk"
	SpaceSpot    Space = "spot"
	SpaceUnknown Space = "unknown"
)

var (
	hexRe  = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	rgbRe  = regexp.MustCompile(`rgba?\([^)]*\)`)
	cmykRe = regexp.MustCompile(`(?i)device-cmyk\([^)]*\)|\bcmyk\b`)
	spotRe = regexp.MustCompile(`(?i)\bpantone\b|\bspot\b|\bpms\b`)
)

// Tally counts color definitions by family within markup text.
type Tally struct {
	CMYK int
	RGB  int
	Spot int
	// Literals holds the distinct color literals encountered, in
	// first-seen order.
	Literals []string
}

// Scan tallies color definitions in raw markup text. RGB covers hex
// literals and rgb()/rgba() functions; CMYK covers device-cmyk() and
// cmyk-tagged definitions.
func Scan(text string) Tally {
	var t Tally
	seen := map[string]bool{}

	add := func(lit string) {
		if !seen[lit] {
			seen[lit] = true
			t.Literals = append(t.Literals, lit)
		}
	}

	for _, m := range hexRe.FindAllString(text, -1) {
		t.RGB++
		add(strings.ToLower(m))
	}
	for _, m := range rgbRe.FindAllString(text, -1) {
		t.RGB++
		add(m)
	}
	for _, m := range cmykRe.FindAllString(text, -1) {
		t.CMYK++
		if strings.Contains(m, "(") {
			add(m)
		}
	}
	t.Spot = len(spotRe.FindAllString(text, -1))

	return t
}

// Space returns the dominant color space of the tally. CMYK wins ties:
// any deliberate CMYK tagging outweighs incidental RGB literals only
// when it is at least as frequent.
func (t Tally) Space() Space {
	switch {
	case t.CMYK > 0 && t.CMYK >= t.RGB:
		return SpaceCMYK
	case t.RGB > 0:
		return SpaceRGB
	case t.Spot > 0:
		return SpaceSpot
	default:
		return SpaceUnknown
	}
}

// RGBToCMYK converts 8-bit RGB to CMYK percentages.
func RGBToCMYK(r, g, b int) (c, m, y, k int) {
	if r == 0 && g == 0 && b == 0 {
		return 0, 0, 0, 100
	}

	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	cf := 1 - rf
	mf := 1 - gf
	yf := 1 - bf

	kf := cf
	if mf < kf {
		kf = mf
	}
	if yf < kf {
		kf = yf
	}

	if kf == 1 {
		cf, mf, yf = 0, 0, 0
	} else {
		cf = (cf - kf) / (1 - kf)
		mf = (mf - kf) / (1 - kf)
		yf = (yf - kf) / (1 - kf)
	}

	round := func(v float64) int { return int(v*100 + 0.5) }
	return round(cf), round(mf), round(yf), round(kf)
}

// HexToCMYK converts a hex color literal to CMYK percentages.
func HexToCMYK(hex string) (c, m, y, k int, err error) {
	r, g, b, err := parseHexRGB(hex)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	c, m, y, k = RGBToCMYK(r, g, b)
	return c, m, y, k, nil
}

// parseHexRGB parses #rgb or #rrggbb literals.
func parseHexRGB(hex string) (r, g, b int, err error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	var vals [3]int
	for i := 0; i < 3; i++ {
		v, perr := strconv.ParseInt(hex[i*2:i*2+2], 16, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
		}
		vals[i] = int(v)
	}
	return vals[0], vals[1], vals[2], nil
}
