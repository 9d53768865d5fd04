package linview

import (
	"math"
	"strconv"
	"strings"
)

// Vec2 is a 2D vector used for world positions, screen positions, and
// directions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// GridMode selects which grid overlays the renderer draws.
type GridMode uint8

const (
	GridOriginal    GridMode = iota // grid at its animated (interpolated) position
	GridTransformed                 // grid under the full transform, lower opacity
	GridBoth                        // both overlays
)

// Next cycles to the following grid mode, wrapping after GridBoth.
func (g GridMode) Next() GridMode {
	switch g {
	case GridOriginal:
		return GridTransformed
	case GridTransformed:
		return GridBoth
	default:
		return GridOriginal
	}
}

// String returns a short label for display.
func (g GridMode) String() string {
	switch g {
	case GridOriginal:
		return "original"
	case GridTransformed:
		return "transformed"
	case GridBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nonFiniteGlyph is shown in place of NaN or infinite values.
const nonFiniteGlyph = "—"

// FormatScalar renders v with fixed decimal precision. Non-finite values
// (NaN, ±Inf) render as a dash glyph instead of failing.
func FormatScalar(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nonFiniteGlyph
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// ParseScalar converts numeric text to a float64. Malformed input is treated
// as zero rather than propagating a parse failure.
func ParseScalar(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
