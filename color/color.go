/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color converts CSS colors to OKLCH and measures perceptual distance.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// AchromaticThreshold is the chroma below which hue is undefined.
// Undefined hues are reported as 0.
const AchromaticThreshold = 1e-4

// gamutEpsilon absorbs float error when testing sRGB components against [0, 1].
const gamutEpsilon = 1e-7

// ErrInvalidColor indicates a value that cannot be read as a color.
var ErrInvalidColor = errors.New("invalid color")

// okLCHPattern matches oklch() strings, including the ones this package writes.
var okLCHPattern = regexp.MustCompile(`^oklch\(\s*([-+]?[0-9]*\.?[0-9]+(?:e[-+]?[0-9]+)?)(%?)\s+([-+]?[0-9]*\.?[0-9]+(?:e[-+]?[0-9]+)?)\s+([-+]?[0-9]*\.?[0-9]+(?:e[-+]?[0-9]+)?)(?:deg)?\s*(?:/\s*[0-9.]+%?\s*)?\)$`)

// OkLCH is a color in the cylindrical OKLCH space.
// L is in [0, 1], C is non-negative and H is in degrees [0, 360).
type OkLCH struct {
	L float64
	C float64
	H float64
}

// Parse reads a hex, named or functional CSS color, or an oklch() string.
func Parse(value string) (OkLCH, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return OkLCH{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}

	if m := okLCHPattern.FindStringSubmatch(s); m != nil {
		return parseOkLCH(m)
	}

	if strings.HasPrefix(s, "var(") {
		return OkLCH{}, fmt.Errorf("%w: %q is a variable reference", ErrInvalidColor, value)
	}

	c, err := csscolorparser.Parse(s)
	if err != nil {
		return OkLCH{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
	}

	return FromRGB(colorful.Color{R: c.R, G: c.G, B: c.B}), nil
}

func parseOkLCH(m []string) (OkLCH, error) {
	l, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return OkLCH{}, fmt.Errorf("%w: lightness %q", ErrInvalidColor, m[1])
	}
	if m[2] == "%" {
		l /= 100
	}
	c, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return OkLCH{}, fmt.Errorf("%w: chroma %q", ErrInvalidColor, m[3])
	}
	h, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return OkLCH{}, fmt.Errorf("%w: hue %q", ErrInvalidColor, m[4])
	}
	return OkLCH{L: l, C: math.Max(c, 0), H: normalizeHue(h)}, nil
}

// FromRGB converts an sRGB color to OKLCH.
func FromRGB(c colorful.Color) OkLCH {
	l, ch, h := c.OkLch()
	if ch < AchromaticThreshold {
		h = 0
	}
	return OkLCH{L: l, C: math.Max(ch, 0), H: normalizeHue(h)}
}

// InGamut reports whether the color can be rendered in sRGB.
func (c OkLCH) InGamut() bool {
	rgb := colorful.OkLch(c.L, c.C, c.H)
	return inUnit(rgb.R) && inUnit(rgb.G) && inUnit(rgb.B)
}

func inUnit(v float64) bool {
	return v >= -gamutEpsilon && v <= 1+gamutEpsilon
}

// ClampChroma returns the color with chroma reduced to the largest value
// renderable in sRGB for its lightness and hue.
func ClampChroma(c OkLCH) OkLCH {
	if c.InGamut() {
		return c
	}
	lo, hi := 0.0, c.C
	for hi-lo > 1e-6 {
		mid := (lo + hi) / 2
		if (OkLCH{L: c.L, C: mid, H: c.H}).InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return OkLCH{L: c.L, C: lo, H: c.H}
}

// String formats the color as oklch(L C H) with L and C to three decimals
// and H to one decimal.
func (c OkLCH) String() string {
	l := round(c.L, 3)
	ch := round(c.C, 3)
	h := round(c.H, 1)
	if h >= 360 {
		h = 0
	}
	return fmt.Sprintf("oklch(%s %s %s)",
		strconv.FormatFloat(l, 'f', 3, 64),
		strconv.FormatFloat(ch, 'f', 3, 64),
		strconv.FormatFloat(h, 'f', 1, 64))
}

// ToOkLCH converts a color string to its clamped oklch() form.
func ToOkLCH(value string) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}
	return ClampChroma(c).String(), nil
}

// Distance is the euclidean distance in (L, C, H/360).
func Distance(a, b OkLCH) float64 {
	dl := a.L - b.L
	dc := a.C - b.C
	dh := (a.H - b.H) / 360
	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// round rounds half away from zero and folds negative zero.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}
