package toggle

import "math"

// Geometry is everything needed to draw one frame of a switch, in the
// switch's local coordinates (origin at the top-left of its box).
type Geometry struct {
	Track       Rect
	TrackRadius float64
	TrackColor  Color

	ThumbCenter Vec2
	ThumbRadius float64
	ThumbColor  Color

	Shadow       Vec2
	ShadowRadius float64
	ShadowBlur   float64
	ShadowColor  Color

	// Checkmark polyline, valid when ShowCheckmark is true.
	ShowCheckmark  bool
	Checkmark      [3]Vec2
	CheckmarkWidth float64
	CheckmarkColor Color
}

// ThumbRadius interpolates between the style's minimum and maximum radius.
func (s Style) ThumbRadius(sizeProgress float64) float64 {
	return lerp(s.ThumbRadiusMin, s.ThumbRadiusMax, clamp01(sizeProgress))
}

// ThumbBounds returns the leftmost and rightmost thumb center X for a track of
// the given width and the current thumb radius. When the track is too narrow
// for both, they collapse to their midpoint.
func (s Style) ThumbBounds(width, radius float64) (left, right float64) {
	left = s.Padding + radius + s.Inset
	right = width - s.Padding - radius - s.Inset
	if left > right {
		mid := (left + right) / 2
		return mid, mid
	}
	return left, right
}

// ThumbX returns the thumb center X for positionProgress.
func (s Style) ThumbX(width, radius, positionProgress float64) float64 {
	left, right := s.ThumbBounds(width, radius)
	return lerp(left, right, clamp01(positionProgress))
}

// ComputeGeometry derives the drawable geometry from the allocated box size,
// the logical state and both progress values. It is a pure function.
func ComputeGeometry(s Style, width, height float64, checked bool, positionProgress, sizeProgress float64) Geometry {
	radius := s.ThumbRadius(sizeProgress)
	cx := s.ThumbX(width, radius, positionProgress)
	cy := height / 2

	g := Geometry{
		Track:        Rect{0, 0, width, height},
		TrackRadius:  height / 2,
		TrackColor:   s.TrackColor(checked),
		ThumbCenter:  Vec2{cx, cy},
		ThumbRadius:  radius,
		ThumbColor:   s.ThumbColor(checked),
		Shadow:       Vec2{cx, cy + s.ShadowDY},
		ShadowRadius: radius,
		ShadowBlur:   s.ShadowBlur,
		ShadowColor:  s.ShadowColor,
	}

	if s.Decoration == DecorationCheckmark && checked && sizeProgress > s.CheckmarkThreshold {
		g.ShowCheckmark = true
		g.Checkmark = checkmarkPoints(cx, cy, radius)
		g.CheckmarkWidth = math.Max(1, radius*0.18)
		g.CheckmarkColor = s.OnTrack
	}
	return g
}

// checkmarkPoints lays out a checkmark proportional to the thumb radius so it
// grows with the thumb instead of appearing at full size.
func checkmarkPoints(cx, cy, r float64) [3]Vec2 {
	return [3]Vec2{
		{cx - 0.45*r, cy + 0.02*r},
		{cx - 0.12*r, cy + 0.33*r},
		{cx + 0.45*r, cy - 0.30*r},
	}
}
