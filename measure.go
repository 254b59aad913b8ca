package toggle

import "math"

// MeasureMode tells a widget how to treat the size offered by its host.
type MeasureMode uint8

const (
	Unspecified MeasureMode = iota // host imposes nothing; use the preferred size
	Exactly                        // host size wins
	AtMost                         // preferred size, capped by the host size
)

// MeasureSpec is one axis of a host size constraint.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// resolveSize applies spec to a preferred pixel size.
func resolveSize(spec MeasureSpec, preferred int) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(spec.Size, preferred)
	default:
		return preferred
	}
}

// PreferredSize returns the switch's preferred size in pixels.
func (sw *Switch) PreferredSize() (w, h int) {
	return int(sw.style.Width), int(sw.style.Height)
}

// Measure resolves the switch size against the host constraints and stores
// it as the allocated box. Geometry is always computed from the stored box.
func (sw *Switch) Measure(width, height MeasureSpec) (w, h int) {
	pw, ph := sw.PreferredSize()
	w = resolveSize(width, pw)
	h = resolveSize(height, ph)
	sw.SetSize(float64(w), float64(h))
	return w, h
}

// SetSize assigns the allocated box directly, bypassing Measure.
func (sw *Switch) SetSize(w, h float64) {
	w = math.Max(0, w)
	h = math.Max(0, h)
	if sw.bounds.Width == w && sw.bounds.Height == h {
		return
	}
	sw.bounds.Width = w
	sw.bounds.Height = h
	sw.requestRedraw()
}
