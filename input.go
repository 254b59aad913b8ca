package toggle

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// PointerEvent is one step of a pointer gesture delivered to a widget.
// Coordinates are in panel (host) space.
type PointerEvent struct {
	Phase     PointerPhase
	X, Y      float64
	PointerID int
}

// --- Switch gesture handling ---

// gestureState tracks the press a switch has claimed.
type gestureState struct {
	pressed   bool
	pointerID int
}

// HandlePointer feeds one gesture step to the switch and reports whether the
// switch consumed it. A press inside the box claims the gesture; moves of the
// claimed pointer are consumed without effect; a release completes the tap
// and toggles only when it lands inside the box. Cancels and releases
// elsewhere end the gesture silently. There is no drag threshold.
func (sw *Switch) HandlePointer(ev PointerEvent) bool {
	if sw.disposed {
		return false
	}
	g := &sw.gesture
	switch ev.Phase {
	case PointerDown:
		if !sw.bounds.Contains(ev.X, ev.Y) {
			return false
		}
		*g = gestureState{pressed: true, pointerID: ev.PointerID}
		return true
	case PointerMove:
		return g.pressed && g.pointerID == ev.PointerID
	case PointerUp:
		if !g.pressed || g.pointerID != ev.PointerID {
			return false
		}
		*g = gestureState{}
		if sw.bounds.Contains(ev.X, ev.Y) {
			sw.Toggle()
		}
		return true
	case PointerCancel:
		if !g.pressed || g.pointerID != ev.PointerID {
			return false
		}
		*g = gestureState{}
		return true
	}
	return false
}

// --- Panel pointer routing ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// hitTest finds the topmost widget whose bounds contain (x, y). Widgets added
// later are on top.
func (p *Panel) hitTest(x, y float64) Widget {
	for i := len(p.widgets) - 1; i >= 0; i-- {
		if p.widgets[i].Bounds().Contains(x, y) {
			return p.widgets[i]
		}
	}
	return nil
}

// processInput is called from Panel.Update to handle injected, mouse and
// touch input. An injected event replaces device input for its frame.
func (p *Panel) processInput() {
	if p.processInjectedInput() || !p.deviceInput {
		return
	}
	if !ebiten.IsFocused() {
		p.cancelAll()
		return
	}
	p.processMousePointer()
	p.processTouchPointers()
}

// processMousePointer handles the primary mouse button (pointer 0).
func (p *Panel) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (p *Panel) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		p.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release slots whose finger lifted since the last frame.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !activeSlots[i] {
			ps := &p.pointers[i]
			if ps.down {
				p.processPointer(i, ps.lastX, ps.lastY, false)
			}
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *Panel) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer. The
// widget that consumes the press captures the pointer and receives every
// later move and the release, wherever they happen.
func (p *Panel) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &p.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = x, y
		ev := PointerEvent{Phase: PointerDown, X: x, Y: y, PointerID: pointerID}
		if target := p.hitTest(x, y); target != nil && target.HandlePointer(ev) {
			p.captured[pointerID] = target
		}
	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = x, y
		if c := p.captured[pointerID]; c != nil {
			c.HandlePointer(PointerEvent{Phase: PointerMove, X: x, Y: y, PointerID: pointerID})
		}
	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = x, y
		c := p.captured[pointerID]
		p.captured[pointerID] = nil
		if c != nil {
			c.HandlePointer(PointerEvent{Phase: PointerUp, X: x, Y: y, PointerID: pointerID})
		}
	default:
		ps.lastX, ps.lastY = x, y
	}
}

// cancelPointer aborts the gesture of one pointer without a release.
func (p *Panel) cancelPointer(pointerID int) {
	ps := &p.pointers[pointerID]
	if !ps.down {
		return
	}
	ps.down = false
	c := p.captured[pointerID]
	p.captured[pointerID] = nil
	if c != nil {
		p.log.Logf("[DEBUG] pointer %d canceled", pointerID)
		c.HandlePointer(PointerEvent{Phase: PointerCancel, X: ps.lastX, Y: ps.lastY, PointerID: pointerID})
	}
}

// cancelAll aborts every pressed pointer, e.g. when the window loses focus.
func (p *Panel) cancelAll() {
	for i := range p.pointers {
		p.cancelPointer(i)
	}
}
