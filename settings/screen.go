// Package settings builds a compass settings screen: three preference
// switches and a night-mode selector, bound to a prefs.Store.
package settings

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/go-pkgz/lgr"

	"github.com/phanxgames/toggle"
	"github.com/phanxgames/toggle/prefs"
)

// Preference keys and their defaults.
const (
	KeyTrueNorth      = "true_north"
	KeyHapticFeedback = "haptic_feedback"
	KeyRotation       = "is_rotation_enabled"
	KeyNightMode      = "night_mode"
)

// switchRow describes one boolean preference row.
type switchRow struct {
	key     string
	label   string
	def     bool
	section string
}

var switchRows = []switchRow{
	{KeyTrueNorth, "True north", false, "Compass"},
	{KeyHapticFeedback, "Haptic feedback", true, ""},
	{KeyRotation, "Screen rotation", true, "Display"},
}

const (
	margin        = 16
	rowHeight     = 44
	sectionHeight = 30
)

// Options configures a Screen. The zero value is usable.
type Options struct {
	Width   int          // screen width in pixels; defaults to 360
	Style   toggle.Style // switch style; zero means toggle.ClassicStyle
	Density float64

	// Appearance runs after the user picks a night mode.
	Appearance func(NightMode)

	// Version is shown in the About section when non-empty.
	Version string

	Logger lgr.L
}

// Screen is the settings form. Switch state is loaded from the store once,
// at construction, and written back on every user toggle.
type Screen struct {
	panel    *toggle.Panel
	store    prefs.Store
	log      lgr.L
	width    int
	height   int
	theme    Theme
	switches map[string]*toggle.Switch
	labels   []*Label
	headers  []*Label
	notes    []*Label
	selector *Selector
	appear   func(NightMode)
}

// NewScreen lays out the form on a new panel.
func NewScreen(store prefs.Store, opts Options) *Screen {
	if opts.Width <= 0 {
		opts.Width = 360
	}
	if opts.Logger == nil {
		opts.Logger = lgr.NoOp
	}

	s := &Screen{
		panel:    toggle.NewPanel(),
		store:    store,
		log:      opts.Logger,
		width:    opts.Width,
		theme:    LightTheme,
		switches: make(map[string]*toggle.Switch, len(switchRows)),
		appear:   opts.Appearance,
	}
	s.panel.SetLogger(opts.Logger)

	y := float64(margin)
	for _, row := range switchRows {
		if row.section != "" {
			y = s.addHeader(row.section, y)
		}
		y = s.addSwitchRow(row, opts, y)
	}

	y = s.addHeader("Night mode", y)
	mode, err := ParseNightMode(store.String(KeyNightMode, NightFollowSystem.String()))
	if err != nil {
		s.log.Logf("[WARN] %v, using %s", err, mode)
	}
	s.selector = NewSelector(mode, s.selectNightMode)
	s.selector.log = s.log
	s.panel.Add(s.selector, margin, y)
	y += s.selector.Bounds().Height

	if opts.Version != "" {
		y = s.addHeader("About", y+margin/2)
		l := NewLabel("Version "+opts.Version, s.theme.Secondary)
		s.notes = append(s.notes, l)
		s.panel.Add(l, margin, y)
		y += rowHeight / 2
	}

	s.height = int(y) + margin
	s.SetTheme(LightTheme)
	return s
}

func (s *Screen) addHeader(title string, y float64) float64 {
	h := NewLabel(title, s.theme.Accent)
	s.headers = append(s.headers, h)
	s.panel.Add(h, margin, y+8)
	return y + sectionHeight
}

// addSwitchRow adds a label and a right-aligned switch, applies the stored
// value silently and wires the listener to persist user changes.
func (s *Screen) addSwitchRow(row switchRow, opts Options, y float64) float64 {
	l := NewLabel(row.label, s.theme.Text)
	s.labels = append(s.labels, l)
	s.panel.Add(l, margin, y+(rowHeight-float64(labelFace.Height))/2)

	key := row.key
	sw := toggle.New(toggle.Config{
		Name:    key,
		Checked: s.store.Bool(key, row.def),
		Style:   opts.Style,
		Density: opts.Density,
		Logger:  s.log,
		OnChange: func(checked bool) {
			if err := s.store.SetBool(key, checked); err != nil {
				s.log.Logf("[WARN] failed to save %s: %v", key, err)
			}
		},
	})
	b := sw.Bounds()
	s.switches[key] = sw
	s.panel.Add(sw, float64(s.width)-margin-b.Width, y+(rowHeight-b.Height)/2)
	return y + rowHeight
}

func (s *Screen) selectNightMode(m NightMode) {
	if err := s.store.SetString(KeyNightMode, m.String()); err != nil {
		s.log.Logf("[WARN] failed to save %s: %v", KeyNightMode, err)
	}
	if s.appear != nil {
		s.appear(m)
	}
}

// Panel returns the panel hosting the form, for toggle.Run or a custom game.
func (s *Screen) Panel() *toggle.Panel {
	return s.panel
}

// Size returns the pixel size the form needs.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Switch returns the switch bound to key, or nil.
func (s *Screen) Switch(key string) *toggle.Switch {
	return s.switches[key]
}

// Selector returns the night-mode selector.
func (s *Screen) Selector() *Selector {
	return s.selector
}

// NightMode returns the selected night mode.
func (s *Screen) NightMode() NightMode {
	return s.selector.Selected()
}

// SetTheme recolors the background, labels and selector.
func (s *Screen) SetTheme(t Theme) {
	s.theme = t
	s.panel.ClearColor = t.Background
	for _, l := range s.labels {
		l.Color = t.Text
	}
	for _, h := range s.headers {
		h.Color = t.Accent
	}
	for _, n := range s.notes {
		n.Color = t.Secondary
	}
	s.selector.SetTheme(t)
	s.panel.Invalidate()
}

// Theme returns the active theme.
func (s *Screen) Theme() Theme {
	return s.theme
}

// painter is implemented by widgets that can draw into a gg context.
type painter interface {
	paint(dc *gg.Context)
}

// Snapshot renders the whole form in software, without a game loop.
func (s *Screen) Snapshot() *image.RGBA {
	dc := gg.NewContext(s.width, s.height)
	dc.SetColor(s.theme.Background.RGBA())
	dc.Clear()
	for _, w := range s.panel.Widgets() {
		switch v := w.(type) {
		case *toggle.Switch:
			b := v.Bounds()
			toggle.PaintGeometry(dc, v.Geometry(), b.X, b.Y)
		case painter:
			v.paint(dc)
		}
	}
	return dc.Image().(*image.RGBA)
}

// Close disposes every widget. The store is left open.
func (s *Screen) Close() {
	s.panel.Dispose()
}
