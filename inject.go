package toggle

// syntheticPointerEvent is one queued pointer step on the mouse pointer.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	cancel  bool
}

// InjectPress queues a press at the given panel coordinates. The event is
// consumed on the next frame's input pass.
func (p *Panel) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move with the button still held. Use it between
// InjectPress and InjectRelease.
func (p *Panel) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at the given panel coordinates.
func (p *Panel) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectCancel queues an abort of the current gesture.
func (p *Panel) InjectCancel() {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{cancel: true})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (p *Panel) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). frames is clamped to at least 2.
func (p *Panel) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	p.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		p.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	p.InjectRelease(toX, toY)
}

// processInjectedInput pops one event and feeds it through the mouse
// pointer. Returns true if an event was consumed.
func (p *Panel) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	if evt.cancel {
		p.cancelPointer(0)
		return true
	}
	p.processPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
