package settings

import (
	"github.com/fogleman/gg"
	"github.com/go-pkgz/lgr"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/toggle"
)

const (
	selectorRowHeight = 28
	selectorWidth     = 200
	radioRadius       = 7
	radioDotRadius    = 4
	radioStroke       = 2
	radioTextOffset   = 26
)

// Selector is a vertical group of mutually exclusive night-mode options.
// Tapping an unselected option selects it and invokes the select hook;
// SetSelected changes the selection silently.
type Selector struct {
	selected NightMode
	bounds   toggle.Rect
	theme    Theme

	onSelect   func(NightMode)
	invalidate func()
	log        lgr.L

	pressed   bool
	pointerID int
	pressRow  int
}

// NewSelector creates a selector showing selected.
func NewSelector(selected NightMode, onSelect func(NightMode)) *Selector {
	return &Selector{
		selected: selected,
		bounds:   toggle.Rect{Width: selectorWidth, Height: selectorRowHeight * float64(len(nightModes))},
		theme:    LightTheme,
		onSelect: onSelect,
		log:      lgr.NoOp,
	}
}

// Selected returns the current option.
func (s *Selector) Selected() NightMode {
	return s.selected
}

// SetSelected changes the selection without invoking the hook.
func (s *Selector) SetSelected(m NightMode) {
	if s.selected == m {
		return
	}
	s.selected = m
	s.requestRedraw()
}

// Select changes the selection as if the user had tapped m. The hook runs
// only when the selection changes.
func (s *Selector) Select(m NightMode) {
	if s.selected == m {
		return
	}
	s.selected = m
	s.log.Logf("[DEBUG] night mode selected: %s", m)
	s.requestRedraw()
	if s.onSelect != nil {
		s.onSelect(m)
	}
}

// SetTheme recolors the radio buttons and labels.
func (s *Selector) SetTheme(t Theme) {
	s.theme = t
	s.requestRedraw()
}

// SetInvalidate installs the host's redraw hook.
func (s *Selector) SetInvalidate(fn func()) {
	s.invalidate = fn
}

// Bounds returns the selector box in host coordinates.
func (s *Selector) Bounds() toggle.Rect {
	return s.bounds
}

// SetPosition moves the selector.
func (s *Selector) SetPosition(x, y float64) {
	if s.bounds.X == x && s.bounds.Y == y {
		return
	}
	s.bounds.X, s.bounds.Y = x, y
	s.requestRedraw()
}

// rowAt returns the option row containing (x, y), or -1.
func (s *Selector) rowAt(x, y float64) int {
	if !s.bounds.Contains(x, y) {
		return -1
	}
	row := int((y - s.bounds.Y) / selectorRowHeight)
	if row >= len(nightModes) {
		row = len(nightModes) - 1
	}
	return row
}

// HandlePointer selects the row where a tap both started and ended.
func (s *Selector) HandlePointer(ev toggle.PointerEvent) bool {
	switch ev.Phase {
	case toggle.PointerDown:
		row := s.rowAt(ev.X, ev.Y)
		if row < 0 {
			return false
		}
		s.pressed, s.pointerID, s.pressRow = true, ev.PointerID, row
		return true
	case toggle.PointerMove:
		return s.pressed && s.pointerID == ev.PointerID
	case toggle.PointerUp:
		if !s.pressed || s.pointerID != ev.PointerID {
			return false
		}
		s.pressed = false
		if row := s.rowAt(ev.X, ev.Y); row >= 0 && row == s.pressRow {
			s.Select(NightMode(row))
		}
		return true
	case toggle.PointerCancel:
		if !s.pressed || s.pointerID != ev.PointerID {
			return false
		}
		s.pressed = false
		return true
	}
	return false
}

// Update does nothing; the selector does not animate.
func (s *Selector) Update(float32) {}

func (s *Selector) rowOrigin(i int) (cx, cy float64) {
	return s.bounds.X + radioRadius + radioStroke, s.bounds.Y + selectorRowHeight*float64(i) + selectorRowHeight/2
}

// Draw renders one radio button and label per option.
func (s *Selector) Draw(dst *ebiten.Image) {
	for i := range nightModes {
		m := NightMode(i)
		cx, cy := s.rowOrigin(i)
		vector.StrokeCircle(dst, float32(cx), float32(cy), radioRadius, radioStroke, s.theme.Secondary.RGBA(), true)
		if m == s.selected {
			vector.StrokeCircle(dst, float32(cx), float32(cy), radioRadius, radioStroke, s.theme.Accent.RGBA(), true)
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), radioDotRadius, s.theme.Accent.RGBA(), true)
		}
		drawText(dst, m.Label(), s.bounds.X+radioTextOffset, cy-float64(labelFace.Height)/2, s.theme.Text)
	}
}

func (s *Selector) paint(dc *gg.Context) {
	for i := range nightModes {
		m := NightMode(i)
		cx, cy := s.rowOrigin(i)
		ring := s.theme.Secondary
		if m == s.selected {
			ring = s.theme.Accent
		}
		dc.SetLineWidth(radioStroke)
		dc.DrawCircle(cx, cy, radioRadius)
		dc.SetColor(ring.RGBA())
		dc.Stroke()
		if m == s.selected {
			dc.DrawCircle(cx, cy, radioDotRadius)
			dc.SetColor(s.theme.Accent.RGBA())
			dc.Fill()
		}
		paintText(dc, m.Label(), s.bounds.X+radioTextOffset, cy-float64(labelFace.Height)/2, s.theme.Text)
	}
}

func (s *Selector) requestRedraw() {
	if s.invalidate != nil {
		s.invalidate()
	}
}
