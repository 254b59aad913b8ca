package toggle

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shadowSteps is the number of stacked rings that approximate the blurred
// thumb shadow.
const shadowSteps = 4

type shadowRing struct {
	radius float64
	color  Color
}

// shadowRings splits the shadow into concentric translucent circles, widest
// first. Their stacked alpha approaches ShadowColor.A at the thumb edge.
func shadowRings(g Geometry) [shadowSteps]shadowRing {
	var rings [shadowSteps]shadowRing
	a := g.ShadowColor.A / shadowSteps
	for i := range rings {
		f := 1 - float64(i)/shadowSteps
		rings[i] = shadowRing{
			radius: g.ShadowRadius + g.ShadowBlur*f,
			color:  g.ShadowColor.WithAlpha(a),
		}
	}
	return rings
}

type shapeKind uint8

const (
	shapeRect shapeKind = iota
	shapeCircle
	shapeLine
)

// shape is one filled primitive of a switch frame.
type shape struct {
	kind   shapeKind
	x0, y0 float64 // rect origin, circle center or line start
	x1, y1 float64 // rect size or line end
	r      float64 // circle radius or line width
	aa     bool
	color  Color
}

// contains reports whether (x, y) lies inside the filled area of s.
func (s shape) contains(x, y float64) bool {
	switch s.kind {
	case shapeRect:
		return x >= s.x0 && x < s.x0+s.x1 && y >= s.y0 && y < s.y0+s.y1
	case shapeCircle:
		return math.Hypot(x-s.x0, y-s.y0) <= s.r
	case shapeLine:
		dx, dy := s.x1-s.x0, s.y1-s.y0
		t := 0.0
		if l2 := dx*dx + dy*dy; l2 > 0 {
			t = clamp01(((x-s.x0)*dx + (y-s.y0)*dy) / l2)
		}
		return math.Hypot(x-(s.x0+t*dx), y-(s.y0+t*dy)) <= s.r/2
	}
	return false
}

// geometryShapes lists the primitives of g in paint order with the origin at
// (ox, oy): track, thumb shadow, thumb, then the optional checkmark.
func geometryShapes(g Geometry, ox, oy float64) []shape {
	shapes := make([]shape, 0, 16)
	shapes = roundedRectShapes(shapes, ox+g.Track.X, oy+g.Track.Y, g.Track.Width, g.Track.Height, g.TrackRadius, g.TrackColor)

	for _, ring := range shadowRings(g) {
		shapes = append(shapes, shape{kind: shapeCircle, x0: ox + g.Shadow.X, y0: oy + g.Shadow.Y,
			r: ring.radius, aa: true, color: ring.color})
	}
	shapes = append(shapes, shape{kind: shapeCircle, x0: ox + g.ThumbCenter.X, y0: oy + g.ThumbCenter.Y,
		r: g.ThumbRadius, aa: true, color: g.ThumbColor})

	if g.ShowCheckmark {
		for i := 0; i < len(g.Checkmark)-1; i++ {
			a, b := g.Checkmark[i], g.Checkmark[i+1]
			shapes = append(shapes, shape{kind: shapeLine, x0: ox + a.X, y0: oy + a.Y, x1: ox + b.X, y1: oy + b.Y,
				r: g.CheckmarkWidth, aa: true, color: g.CheckmarkColor})
		}
		// Round the joint so the two strokes meet cleanly.
		j := g.Checkmark[1]
		shapes = append(shapes, shape{kind: shapeCircle, x0: ox + j.X, y0: oy + j.Y,
			r: g.CheckmarkWidth / 2, aa: true, color: g.CheckmarkColor})
	}
	return shapes
}

// roundedRectShapes appends a rectangle whose corners are quarter circles of
// radius r (clamped to half the shorter side).
func roundedRectShapes(shapes []shape, x, y, w, h, r float64, c Color) []shape {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return append(shapes, shape{kind: shapeRect, x0: x, y0: y, x1: w, y1: h, color: c})
	}
	shapes = append(shapes, shape{kind: shapeRect, x0: x + r, y0: y, x1: w - 2*r, y1: h, aa: true, color: c})
	if h-2*r > 0 {
		shapes = append(shapes, shape{kind: shapeRect, x0: x, y0: y + r, x1: w, y1: h - 2*r, aa: true, color: c})
	}
	for _, p := range [4]Vec2{{x + r, y + r}, {x + w - r, y + r}, {x + r, y + h - r}, {x + w - r, y + h - r}} {
		shapes = append(shapes, shape{kind: shapeCircle, x0: p.X, y0: p.Y, r: r, aa: true, color: c})
	}
	return shapes
}

func fillShape(dst *ebiten.Image, s shape) {
	clr := s.color.RGBA()
	switch s.kind {
	case shapeRect:
		vector.DrawFilledRect(dst, float32(s.x0), float32(s.y0), float32(s.x1), float32(s.y1), clr, s.aa)
	case shapeCircle:
		vector.DrawFilledCircle(dst, float32(s.x0), float32(s.y0), float32(s.r), clr, s.aa)
	case shapeLine:
		vector.StrokeLine(dst, float32(s.x0), float32(s.y0), float32(s.x1), float32(s.y1), float32(s.r), clr, s.aa)
	}
}

// Draw renders the switch at its host position.
func (sw *Switch) Draw(dst *ebiten.Image) {
	if sw.disposed || sw.bounds.Width <= 0 || sw.bounds.Height <= 0 {
		return
	}
	DrawGeometry(dst, sw.Geometry(), sw.bounds.X, sw.bounds.Y)
}

// DrawGeometry renders g onto dst with its origin at (ox, oy).
func DrawGeometry(dst *ebiten.Image, g Geometry, ox, oy float64) {
	for _, s := range geometryShapes(g, ox, oy) {
		fillShape(dst, s)
	}
}
