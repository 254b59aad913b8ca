package toggle

import (
	"image"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/hajimehoshi/ebiten/v2"
)

// Widget is anything a Panel can lay out, route pointers to, tick and draw.
type Widget interface {
	Bounds() Rect
	SetPosition(x, y float64)
	HandlePointer(ev PointerEvent) bool
	Update(dt float32)
	Draw(dst *ebiten.Image)
}

// invalidatable widgets accept the panel's redraw hook when added.
type invalidatable interface {
	SetInvalidate(fn func())
}

// disposable widgets release resources when the panel is disposed.
type disposable interface {
	Dispose()
}

// Panel is the host surface for switches and other widgets. It owns widget
// order, pointer routing and the redraw flag.
type Panel struct {
	widgets []Widget

	// ClearColor fills the screen before widgets are drawn.
	ClearColor Color

	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string

	dirty        bool
	retainScreen bool
	deviceInput  bool
	frame        uint64

	log   lgr.L
	debug bool

	// Input state
	pointers     [maxPointers]pointerState
	captured     [maxPointers]Widget
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent

	screenshotQueue []string
	capture         func(screen *ebiten.Image) *image.NRGBA
	testRunner      *TestRunner
}

// NewPanel creates an empty panel with a white background.
func NewPanel() *Panel {
	return &Panel{
		ClearColor:    ColorWhite,
		ScreenshotDir: "screenshots",
		dirty:         true,
		deviceInput:   true,
		log:           lgr.NoOp,
		capture:       readScreen,
	}
}

// Add places w at (x, y) on top of the existing widgets. Widgets that accept a
// redraw hook get the panel's Invalidate.
func (p *Panel) Add(w Widget, x, y float64) {
	w.SetPosition(x, y)
	if iw, ok := w.(invalidatable); ok {
		iw.SetInvalidate(p.Invalidate)
	}
	p.widgets = append(p.widgets, w)
	p.Invalidate()
}

// Remove detaches w and drops any pointer capture it holds. The widget is not
// disposed.
func (p *Panel) Remove(w Widget) {
	for i, c := range p.widgets {
		if c != w {
			continue
		}
		copy(p.widgets[i:], p.widgets[i+1:])
		p.widgets[len(p.widgets)-1] = nil
		p.widgets = p.widgets[:len(p.widgets)-1]
		for id := range p.captured {
			if p.captured[id] == w {
				p.captured[id] = nil
			}
		}
		if iw, ok := w.(invalidatable); ok {
			iw.SetInvalidate(nil)
		}
		p.Invalidate()
		return
	}
}

// Widgets returns the widget list in draw order. The returned slice MUST NOT
// be mutated.
func (p *Panel) Widgets() []Widget {
	return p.widgets
}

// Invalidate requests a repaint on the next Draw.
func (p *Panel) Invalidate() {
	p.dirty = true
}

// NeedsRedraw reports whether a repaint is pending.
func (p *Panel) NeedsRedraw() bool {
	return p.dirty
}

// Update processes input and advances widget animations by one tick.
func (p *Panel) Update() {
	p.update(float32(1.0 / float64(ebiten.TPS())))
}

func (p *Panel) update(dt float32) {
	p.frame++
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.processInput()
	for _, w := range p.widgets {
		w.Update(dt)
	}
}

// Draw paints the panel. When the screen is retained between frames (see
// Run) nothing is drawn unless a redraw was requested.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.retainScreen && !p.dirty && len(p.screenshotQueue) == 0 {
		return
	}

	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	screen.Fill(p.ClearColor.RGBA())
	for _, w := range p.widgets {
		w.Draw(screen)
	}
	p.dirty = false

	if p.debug {
		p.debugLog(debugStats{drawTime: time.Since(t0), widgets: len(p.widgets), frame: p.frame})
	}
	p.flushScreenshots(screen)
}

// Dispose disposes every widget that supports it and empties the panel.
func (p *Panel) Dispose() {
	for _, w := range p.widgets {
		if dw, ok := w.(disposable); ok {
			dw.Dispose()
		}
	}
	p.widgets = nil
	p.captured = [maxPointers]Widget{}
	p.injectQueue = nil
}

// SetLogger sets the destination for panel debug output.
func (p *Panel) SetLogger(l lgr.L) {
	if l == nil {
		l = lgr.NoOp
	}
	p.log = l
}

// SetDeviceInput turns reading of the real mouse and touch screen on or off.
// Injected and scripted input keeps working either way.
func (p *Panel) SetDeviceInput(enabled bool) {
	p.deviceInput = enabled
	if !enabled {
		p.cancelAll()
	}
}

// SetDebugMode enables per-frame draw timing in the log.
func (p *Panel) SetDebugMode(enabled bool) {
	p.debug = enabled
}
