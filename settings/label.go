package settings

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/toggle"
)

// labelFace is the bitmap face shared by every label, on screen and in
// headless snapshots.
var labelFace = basicfont.Face7x13

var screenFace = text.NewGoXFace(labelFace)

// Label is a single line of static text. It ignores pointer input.
type Label struct {
	Text  string
	Color toggle.Color

	x, y       float64
	invalidate func()
}

// NewLabel creates a label in the given color.
func NewLabel(s string, c toggle.Color) *Label {
	return &Label{Text: s, Color: c}
}

// Bounds returns the text box measured with the label face.
func (l *Label) Bounds() toggle.Rect {
	w := font.MeasureString(labelFace, l.Text).Ceil()
	return toggle.Rect{X: l.x, Y: l.y, Width: float64(w), Height: float64(labelFace.Height)}
}

// SetPosition moves the top-left corner of the text box.
func (l *Label) SetPosition(x, y float64) {
	if l.x == x && l.y == y {
		return
	}
	l.x, l.y = x, y
	if l.invalidate != nil {
		l.invalidate()
	}
}

// SetInvalidate installs the host's redraw hook.
func (l *Label) SetInvalidate(fn func()) {
	l.invalidate = fn
}

// HandlePointer never consumes input.
func (l *Label) HandlePointer(toggle.PointerEvent) bool {
	return false
}

// Update does nothing; labels are static.
func (l *Label) Update(float32) {}

// Draw renders the text with ebiten's text package.
func (l *Label) Draw(dst *ebiten.Image) {
	drawText(dst, l.Text, l.x, l.y, l.Color)
}

func (l *Label) paint(dc *gg.Context) {
	paintText(dc, l.Text, l.x, l.y, l.Color)
}

func drawText(dst *ebiten.Image, s string, x, y float64, c toggle.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(dst, s, screenFace, op)
}

// paintText draws s with its top-left corner at (x, y), matching drawText.
func paintText(dc *gg.Context, s string, x, y float64, c toggle.Color) {
	dc.SetFontFace(labelFace)
	dc.SetColor(color.Color(c.RGBA()))
	dc.DrawString(s, x, y+float64(labelFace.Ascent))
}
