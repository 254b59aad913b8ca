package toggle

// Style holds the fixed visual constants of a switch. Dimensions are in
// density-independent units unless noted; Scaled converts them to pixels.
type Style struct {
	// Preferred box size.
	Width, Height float64

	// Thumb radius at sizeProgress 0 and 1.
	ThumbRadiusMin float64
	ThumbRadiusMax float64

	// Padding between track edge and thumb, in pixels (not density scaled).
	Padding float64

	// Inset nudges the off position rightward and the on position leftward.
	Inset float64

	// Shadow under the thumb: offset, blur radius (pixels) and color.
	ShadowDY    float64
	ShadowBlur  float64
	ShadowColor Color

	OnTrack  Color
	OnThumb  Color
	OffTrack Color
	OffThumb Color

	Decoration Decoration

	// CheckmarkThreshold is the sizeProgress above which the checkmark shows.
	CheckmarkThreshold float64
}

var (
	colorOnTrack  = MustParseHex("#000000")
	colorOnThumb  = ColorWhite
	colorOffTrack = MustParseHex("#808080")
	colorOffThumb = MustParseHex("#F5F5F5")
	colorShadow   = MustParseHex("#1E000000")
)

// ClassicStyle is the plain switch: thumb grows from 12 to 14 units.
func ClassicStyle() Style {
	return Style{
		Width:              52,
		Height:             32,
		ThumbRadiusMin:     12,
		ThumbRadiusMax:     14,
		Padding:            3,
		Inset:              3,
		ShadowDY:           2,
		ShadowBlur:         6,
		ShadowColor:        colorShadow,
		OnTrack:            colorOnTrack,
		OnThumb:            colorOnThumb,
		OffTrack:           colorOffTrack,
		OffThumb:           colorOffThumb,
		Decoration:         DecorationNone,
		CheckmarkThreshold: 0.3,
	}
}

// CheckmarkStyle is the enhanced switch: a smaller resting thumb that grows
// from 8 to 12 units and carries a checkmark while on.
func CheckmarkStyle() Style {
	s := ClassicStyle()
	s.ThumbRadiusMin = 8
	s.ThumbRadiusMax = 12
	s.Decoration = DecorationCheckmark
	return s
}

// Scaled returns a copy with every density-independent dimension multiplied
// by density. Padding and shadow metrics are already pixels and stay as is.
func (s Style) Scaled(density float64) Style {
	if density <= 0 {
		density = 1
	}
	s.Width *= density
	s.Height *= density
	s.ThumbRadiusMin *= density
	s.ThumbRadiusMax *= density
	s.Inset *= density
	return s
}

// TrackColor returns the track color for the given state. Colors snap with
// the logical state; they are never interpolated.
func (s Style) TrackColor(checked bool) Color {
	if checked {
		return s.OnTrack
	}
	return s.OffTrack
}

// ThumbColor returns the thumb color for the given state.
func (s Style) ThumbColor(checked bool) Color {
	if checked {
		return s.OnThumb
	}
	return s.OffThumb
}
