package toggle

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"after-click", "after-click"},
		{"night mode/on", "night_mode_on"},
		{"v1.2", "v1.2"},
		{"../../etc", ".._.._etc"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}
	img := unpremultiply(pixels, 3, 1)

	if c := img.NRGBAAt(0, 0); c.R != 255 || c.G != 127 || c.B != 0 || c.A != 128 {
		t.Errorf("pixel 0 = %v", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("pixel 1 = %v", c)
	}
	if c := img.NRGBAAt(2, 0); c.A != 0 {
		t.Errorf("pixel 2 = %v", c)
	}
}

func TestScreenshotQueuesLabel(t *testing.T) {
	p := newTestPanel()
	p.Screenshot("a")
	p.Screenshot("b")
	if len(p.screenshotQueue) != 2 {
		t.Errorf("queue = %v", p.screenshotQueue)
	}
}
