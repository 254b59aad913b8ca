package toggle

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultDuration is the transition length in seconds (300ms).
	DefaultDuration float32 = 0.3
)

// DefaultEasing decelerates: fast start, slow settle. Equivalent to a
// factor-1 decelerate interpolator, 1-(1-t)^2.
var DefaultEasing ease.TweenFunc = ease.OutQuad

// progressTrack is one animated progress value. The tween writes into field
// on every tick until it finishes or the track is canceled.
type progressTrack struct {
	tween  *gween.Tween
	field  *float64
	target float64
}

func (t *progressTrack) active() bool {
	return t.tween != nil
}

// step advances the track and reports whether it is still running.
func (t *progressTrack) step(dt float32) bool {
	if t.tween == nil {
		return false
	}
	val, finished := t.tween.Update(dt)
	*t.field = approach(*t.field, float64(val), t.target)
	if finished {
		t.tween = nil
		return false
	}
	return true
}

// approach limits an eased value to the span between the current value and
// the target. Overshooting or oscillating curves then hold at the target
// instead of passing it or swinging back.
func approach(current, val, target float64) float64 {
	if target >= current {
		return math.Min(math.Max(val, current), target)
	}
	return math.Max(math.Min(val, current), target)
}

// animator owns the position and size tracks of a switch. Both are started,
// canceled and advanced together so there is never more than one running
// tween per property.
//
// There is no global animation manager; the owner calls update each frame.
type animator struct {
	position progressTrack
	size     progressTrack

	duration float32
	easing   ease.TweenFunc
}

func newAnimator(duration float32, easing ease.TweenFunc) animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == nil {
		easing = DefaultEasing
	}
	return animator{duration: duration, easing: easing}
}

// start cancels any running tweens and animates both fields from their
// current values to target.
func (a *animator) start(position, size *float64, target float64) {
	a.cancel()
	a.position = progressTrack{
		tween:  gween.New(float32(*position), float32(target), a.duration, a.easing),
		field:  position,
		target: target,
	}
	a.size = progressTrack{
		tween:  gween.New(float32(*size), float32(target), a.duration, a.easing),
		field:  size,
		target: target,
	}
}

// cancel drops both tracks. A canceled track never writes its field again.
func (a *animator) cancel() {
	a.position = progressTrack{}
	a.size = progressTrack{}
}

// running reports whether either track is still animating.
func (a *animator) running() bool {
	return a.position.active() || a.size.active()
}

// update advances both tracks by dt seconds. It returns true if any field was
// written this tick.
func (a *animator) update(dt float32) bool {
	if !a.running() {
		return false
	}
	a.position.step(dt)
	a.size.step(dt)
	return true
}
