package toggle

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// topColorAt returns the color of the last shape painted over (x, y).
func topColorAt(shapes []shape, x, y float64) (Color, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].contains(x, y) {
			return shapes[i].color, true
		}
	}
	return Color{}, false
}

func TestGeometryShapesOnColors(t *testing.T) {
	style := ClassicStyle()
	g := ComputeGeometry(style, 52, 32, true, 1, 1)
	shapes := geometryShapes(g, 0, 0)

	if c, ok := topColorAt(shapes, 4, 16); !ok || c != style.OnTrack {
		t.Errorf("track end = %v (hit %v), want on track color", c, ok)
	}
	if c, ok := topColorAt(shapes, g.ThumbCenter.X, g.ThumbCenter.Y); !ok || c != style.OnThumb {
		t.Errorf("thumb center = %v (hit %v), want on thumb color", c, ok)
	}
	if _, ok := topColorAt(shapes, 0, 0); ok {
		t.Error("rounded corner (0, 0) is painted")
	}
}

func TestGeometryShapesOffColors(t *testing.T) {
	style := ClassicStyle()
	g := ComputeGeometry(style, 52, 32, false, 0, 0)
	shapes := geometryShapes(g, 0, 0)

	if c, _ := topColorAt(shapes, 48, 16); c != style.OffTrack {
		t.Errorf("track end = %v, want off track color", c)
	}
	if c, _ := topColorAt(shapes, 18, 16); c != style.OffThumb {
		t.Errorf("thumb center = %v, want off thumb color", c)
	}
}

func TestGeometryShapesOffset(t *testing.T) {
	style := ClassicStyle()
	g := ComputeGeometry(style, 52, 32, true, 1, 1)
	shapes := geometryShapes(g, 100, 40)

	if c, ok := topColorAt(shapes, 104, 56); !ok || c != style.OnTrack {
		t.Errorf("offset track end = %v (hit %v), want on track color", c, ok)
	}
	if _, ok := topColorAt(shapes, 4, 16); ok {
		t.Error("shape painted at the unshifted origin")
	}
}

func TestGeometryShapesPaintOrder(t *testing.T) {
	g := ComputeGeometry(CheckmarkStyle(), 52, 32, true, 1, 1)
	shapes := geometryShapes(g, 0, 0)

	// track (one rect, four corners), shadow rings, thumb, two strokes, joint
	if want := 1 + 4 + shadowSteps + 1 + 3; len(shapes) != want {
		t.Fatalf("shapes = %d, want %d", len(shapes), want)
	}
	thumb := shapes[1+4+shadowSteps]
	if thumb.kind != shapeCircle || thumb.color != g.ThumbColor || thumb.r != g.ThumbRadius {
		t.Errorf("thumb shape = %+v", thumb)
	}
	if c, _ := topColorAt(shapes, 32, 19); c != g.CheckmarkColor {
		t.Errorf("checkmark stroke = %v, want %v", c, g.CheckmarkColor)
	}

	plain := geometryShapes(ComputeGeometry(ClassicStyle(), 52, 32, true, 1, 1), 0, 0)
	for _, s := range plain {
		if s.kind == shapeLine {
			t.Fatal("classic style emitted a checkmark stroke")
		}
	}
}

func TestShapeContains(t *testing.T) {
	tests := []struct {
		name string
		s    shape
		x, y float64
		want bool
	}{
		{"rect inside", shape{kind: shapeRect, x0: 0, y0: 0, x1: 10, y1: 5}, 9.5, 4, true},
		{"rect right edge", shape{kind: shapeRect, x0: 0, y0: 0, x1: 10, y1: 5}, 10, 2, false},
		{"circle edge", shape{kind: shapeCircle, x0: 5, y0: 5, r: 3}, 8, 5, true},
		{"circle outside", shape{kind: shapeCircle, x0: 5, y0: 5, r: 3}, 8, 8, false},
		{"line on stroke", shape{kind: shapeLine, x0: 0, y0: 0, x1: 10, y1: 0, r: 2}, 5, 0.9, true},
		{"line off stroke", shape{kind: shapeLine, x0: 0, y0: 0, x1: 10, y1: 0, r: 2}, 5, 1.5, false},
		{"line past end", shape{kind: shapeLine, x0: 0, y0: 0, x1: 10, y1: 0, r: 2}, 11.5, 0, false},
	}
	for _, tt := range tests {
		if got := tt.s.contains(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: contains(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawGeometryOntoImage(t *testing.T) {
	screen := ebiten.NewImage(128, 64)
	// Should not panic
	DrawGeometry(screen, ComputeGeometry(CheckmarkStyle(), 52, 32, true, 1, 1), 10, 10)
	DrawGeometry(screen, ComputeGeometry(ClassicStyle(), 52, 32, false, 0.5, 0.5), 60, 10)
}

func TestSwitchDrawSkipsEmptyOrDisposed(t *testing.T) {
	screen := ebiten.NewImage(64, 64)
	sw := New(Config{})
	sw.Draw(screen)

	sw.SetSize(0, 0)
	sw.Draw(screen)

	sw.SetSize(52, 32)
	sw.Dispose()
	sw.Draw(screen)
}
