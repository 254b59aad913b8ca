package toggle

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimatorDefaults(t *testing.T) {
	a := newAnimator(0, nil)
	if a.duration != DefaultDuration {
		t.Errorf("duration = %v, want %v", a.duration, DefaultDuration)
	}
	if a.easing == nil {
		t.Error("easing not defaulted")
	}
	if a.running() {
		t.Error("new animator is running")
	}
	if a.update(0.1) {
		t.Error("idle update reported a tick")
	}
}

func TestAnimatorWritesBothFields(t *testing.T) {
	var pos, size float64
	a := newAnimator(0.3, ease.Linear)
	a.start(&pos, &size, 1)

	if !a.update(0.15) {
		t.Fatal("update reported no tick")
	}
	if math.Abs(pos-0.5) > 1e-6 || math.Abs(size-0.5) > 1e-6 {
		t.Errorf("linear halfway = (%v, %v), want (0.5, 0.5)", pos, size)
	}

	a.update(0.15)
	if pos != 1 || size != 1 {
		t.Errorf("finished = (%v, %v), want (1, 1)", pos, size)
	}
	if a.running() {
		t.Error("animator still running after duration")
	}
}

func TestAnimatorStartCancelsPrevious(t *testing.T) {
	var pos, size float64
	a := newAnimator(0.3, ease.Linear)
	a.start(&pos, &size, 1)
	a.update(0.15)

	a.start(&pos, &size, 0)
	a.update(0.15)
	if math.Abs(pos-0.25) > 1e-6 {
		t.Errorf("reversed halfway = %v, want 0.25", pos)
	}
	a.update(0.2)
	if pos != 0 || size != 0 {
		t.Errorf("reversed end = (%v, %v), want (0, 0)", pos, size)
	}
}

func TestAnimatorCancelFreezesFields(t *testing.T) {
	var pos, size float64
	a := newAnimator(0.3, nil)
	a.start(&pos, &size, 1)
	a.update(0.1)
	frozen := pos

	a.cancel()
	if a.update(0.1) {
		t.Error("canceled animator ticked")
	}
	if pos != frozen {
		t.Errorf("canceled track wrote %v over %v", pos, frozen)
	}
}

func TestCustomDurationAndEasing(t *testing.T) {
	sw := New(Config{Duration: 1, Easing: ease.Linear})
	sw.SetChecked(true)
	sw.Update(0.3)
	pos, _ := sw.Progress()
	if math.Abs(pos-0.3) > 1e-6 {
		t.Errorf("position = %v, want 0.3", pos)
	}
	if sw.State() != StateTransitioningToOn {
		t.Errorf("state = %v, want to-on", sw.State())
	}
}

func TestApproachHoldsBetweenCurrentAndTarget(t *testing.T) {
	tests := []struct {
		current, val, target, want float64
	}{
		{0.2, 0.5, 1, 0.5},
		{0.2, 1.1, 1, 1},
		{0.2, 0.1, 1, 0.2},
		{0.8, 0.5, 0, 0.5},
		{0.8, -0.1, 0, 0},
		{0.8, 0.9, 0, 0.8},
		{1, 1, 1, 1},
	}
	for _, tt := range tests {
		if got := approach(tt.current, tt.val, tt.target); got != tt.want {
			t.Errorf("approach(%v, %v, %v) = %v, want %v", tt.current, tt.val, tt.target, got, tt.want)
		}
	}
}

func TestOvershootingEasingStaysInRange(t *testing.T) {
	for name, fn := range map[string]ease.TweenFunc{
		"OutBack":    ease.OutBack,
		"OutElastic": ease.OutElastic,
		"InBack":     ease.InBack,
	} {
		sw := New(Config{Easing: fn})
		for _, target := range []bool{true, false} {
			sw.SetChecked(target)
			prevPos, prevSize := sw.Progress()
			for i := 0; i < 40; i++ {
				sw.Update(0.01)
				pos, size := sw.Progress()
				if pos < 0 || pos > 1 || size < 0 || size > 1 {
					t.Fatalf("%s to %v: tick %d progress (%v, %v) left [0, 1]", name, target, i, pos, size)
				}
				if target && (pos < prevPos || size < prevSize) || !target && (pos > prevPos || size > prevSize) {
					t.Fatalf("%s to %v: tick %d moved away from target (%v, %v) -> (%v, %v)",
						name, target, i, prevPos, prevSize, pos, size)
				}
				prevPos, prevSize = pos, size
			}
			want := 0.0
			if target {
				want = 1
			}
			if prevPos != want || prevSize != want {
				t.Errorf("%s to %v: settled at (%v, %v), want %v", name, target, prevPos, prevSize, want)
			}
		}
	}
}
