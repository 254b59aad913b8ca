package toggle

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA returns the color as a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB" (alpha first, as Android color
// resources are written). The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	a := uint64(0xff)
	if len(h) == 8 {
		a = v >> 24
	}
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input. Intended for
// package-level color constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("toggle: " + err.Error())
	}
	return c
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Decoration selects an optional glyph drawn inside the thumb.
type Decoration uint8

const (
	DecorationNone      Decoration = iota // plain thumb
	DecorationCheckmark                   // checkmark that grows with the thumb while on
)

// String returns the lowercase name used by flags and test scripts.
func (d Decoration) String() string {
	switch d {
	case DecorationCheckmark:
		return "checkmark"
	default:
		return "none"
	}
}

// ParseDecoration maps "none" or "checkmark" to a Decoration.
func ParseDecoration(s string) (Decoration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DecorationNone, nil
	case "checkmark", "check":
		return DecorationCheckmark, nil
	}
	return DecorationNone, fmt.Errorf("unknown decoration %q", s)
}

// PointerPhase identifies a step of a pointer gesture.
type PointerPhase uint8

const (
	PointerDown   PointerPhase = iota // button pressed or finger touched
	PointerMove                       // moved while pressed
	PointerUp                         // released
	PointerCancel                     // gesture aborted by the host
)

// String returns the phase name.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
