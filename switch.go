package toggle

import (
	"github.com/go-pkgz/lgr"
	"github.com/tanema/gween/ease"
)

// State is the interaction state of a switch.
type State uint8

const (
	StateOff                State = iota // unchecked, at rest
	StateOn                              // checked, at rest
	StateTransitioningToOn               // checked, thumb still moving right
	StateTransitioningToOff              // unchecked, thumb still moving left
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateOn:
		return "on"
	case StateTransitioningToOn:
		return "to-on"
	case StateTransitioningToOff:
		return "to-off"
	}
	return "unknown"
}

// Config configures a Switch at construction time.
type Config struct {
	// Name identifies the switch in logs.
	Name string

	// Checked is the initial state. It is applied at rest, without animation.
	Checked bool

	// Style defaults to ClassicStyle when zero.
	Style Style

	// Density multiplies density-independent dimensions. Defaults to 1.
	Density float64

	// Duration (seconds) and Easing override the transition animation.
	Duration float32
	Easing   ease.TweenFunc

	// OnChange is the initial listener; see SetOnChangeListener.
	OnChange func(checked bool)

	// Invalidate is called whenever the switch needs to be redrawn.
	Invalidate func()

	// Logger receives debug output. Defaults to lgr.NoOp.
	Logger lgr.L
}

// Switch is a self-drawing two-state toggle. The logical state changes
// instantly; the thumb follows with two animated progress values, one for
// its horizontal position and one for its radius.
//
// Switch is not safe for concurrent use. All calls belong on the game loop.
type Switch struct {
	name    string
	checked bool

	// 0 = off layout, 1 = on layout.
	position float64
	size     float64

	anim  animator
	style Style

	// bounds holds the position in host coordinates and the allocated size.
	bounds Rect

	onChange   func(bool)
	invalidate func()
	log        lgr.L

	gesture  gestureState
	disposed bool
}

// New creates a switch at rest in cfg.Checked with its preferred size.
func New(cfg Config) *Switch {
	style := cfg.Style
	if style == (Style{}) {
		style = ClassicStyle()
	}
	style = style.Scaled(cfg.Density)

	sw := &Switch{
		name:       cfg.Name,
		style:      style,
		anim:       newAnimator(cfg.Duration, cfg.Easing),
		onChange:   cfg.OnChange,
		invalidate: cfg.Invalidate,
		log:        cfg.Logger,
	}
	if sw.log == nil {
		sw.log = lgr.NoOp
	}
	sw.checked = cfg.Checked
	sw.position = restValue(cfg.Checked)
	sw.size = sw.position
	sw.bounds.Width, sw.bounds.Height = style.Width, style.Height
	return sw
}

func restValue(checked bool) float64 {
	if checked {
		return 1
	}
	return 0
}

// Name returns the name given at construction.
func (sw *Switch) Name() string {
	return sw.name
}

// IsChecked returns the logical state, not the animated progress.
func (sw *Switch) IsChecked() bool {
	return sw.checked
}

// SetChecked sets the logical state. Setting the current value is a no-op.
// A change starts the transition animation but never invokes the change
// listener; use it to apply persisted values without feedback loops.
func (sw *Switch) SetChecked(checked bool) {
	if sw.disposed || sw.checked == checked {
		return
	}
	sw.checked = checked
	sw.log.Logf("[DEBUG] switch %q set to %v", sw.name, checked)
	sw.animate()
}

// Toggle flips the logical state, starts the transition animation and then
// invokes the change listener exactly once with the new value.
func (sw *Switch) Toggle() {
	if sw.disposed {
		return
	}
	sw.checked = !sw.checked
	sw.log.Logf("[DEBUG] switch %q toggled to %v", sw.name, sw.checked)
	sw.animate()
	if sw.onChange != nil {
		sw.onChange(sw.checked)
	}
}

// SetOnChangeListener replaces the change listener. Pass nil to remove it.
func (sw *Switch) SetOnChangeListener(fn func(checked bool)) {
	sw.onChange = fn
}

// SetInvalidate replaces the redraw hook. Hosts install it when the switch is
// attached to them.
func (sw *Switch) SetInvalidate(fn func()) {
	sw.invalidate = fn
}

// State reports where the switch is in its transition cycle. A switch whose
// progress has not reached its resting value is transitioning, including one
// disposed mid-transition, which stays in that state.
func (sw *Switch) State() State {
	rest := 0.0
	if sw.checked {
		rest = 1
	}
	moving := sw.anim.running() || sw.position != rest || sw.size != rest
	switch {
	case moving && sw.checked:
		return StateTransitioningToOn
	case moving:
		return StateTransitioningToOff
	case sw.checked:
		return StateOn
	default:
		return StateOff
	}
}

// Progress returns the animated position and size progress, each in [0, 1].
func (sw *Switch) Progress() (position, size float64) {
	return sw.position, sw.size
}

// Style returns the density-scaled style in use.
func (sw *Switch) Style() Style {
	return sw.style
}

// Bounds returns the switch box in host coordinates.
func (sw *Switch) Bounds() Rect {
	return sw.bounds
}

// SetPosition moves the switch within its host.
func (sw *Switch) SetPosition(x, y float64) {
	if sw.bounds.X == x && sw.bounds.Y == y {
		return
	}
	sw.bounds.X, sw.bounds.Y = x, y
	sw.requestRedraw()
}

// Geometry returns the current frame's geometry in local coordinates.
func (sw *Switch) Geometry() Geometry {
	return ComputeGeometry(sw.style, sw.bounds.Width, sw.bounds.Height,
		sw.checked, sw.position, sw.size)
}

// Update advances the transition animation by dt seconds and requests a
// redraw for every tick that moved the thumb.
func (sw *Switch) Update(dt float32) {
	if sw.disposed {
		return
	}
	if sw.anim.update(dt) {
		sw.requestRedraw()
	}
}

// Dispose cancels the animation and detaches the listener and redraw hook.
// A disposed switch ignores every later state change and tick.
func (sw *Switch) Dispose() {
	if sw.disposed {
		return
	}
	sw.anim.cancel()
	sw.disposed = true
	sw.onChange = nil
	sw.invalidate = nil
	sw.gesture = gestureState{}
}

// IsDisposed reports whether Dispose has been called.
func (sw *Switch) IsDisposed() bool {
	return sw.disposed
}

// animate restarts both progress tracks toward the current logical state.
func (sw *Switch) animate() {
	sw.anim.start(&sw.position, &sw.size, restValue(sw.checked))
	sw.requestRedraw()
}

func (sw *Switch) requestRedraw() {
	if sw.invalidate != nil {
		sw.invalidate()
	}
}
