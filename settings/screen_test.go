package settings

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/toggle"
	"github.com/phanxgames/toggle/prefs"
)

// countingStore records writes made through it.
type countingStore struct {
	prefs.Store
	writes []string
}

func (c *countingStore) SetBool(key string, v bool) error {
	c.writes = append(c.writes, fmt.Sprintf("%s=%v", key, v))
	return c.Store.SetBool(key, v)
}

func (c *countingStore) SetString(key, v string) error {
	c.writes = append(c.writes, fmt.Sprintf("%s=%s", key, v))
	return c.Store.SetString(key, v)
}

// brokenStore reads defaults and fails every write.
type brokenStore struct {
	prefs.Store
}

func (brokenStore) SetBool(string, bool) error     { return assert.AnError }
func (brokenStore) SetString(string, string) error { return assert.AnError }

type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *logRecorder) Logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func newStore(t *testing.T) *countingStore {
	t.Helper()
	p, err := prefs.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return &countingStore{Store: p}
}

// click injects a tap at the center of r and runs the two frames it takes.
func click(p *toggle.Panel, r toggle.Rect) {
	c := r.Center()
	p.InjectClick(c.X, c.Y)
	p.Update()
	p.Update()
}

func TestScreenDefaults(t *testing.T) {
	store := newStore(t)
	s := NewScreen(store, Options{})
	defer s.Close()

	assert.False(t, s.Switch(KeyTrueNorth).IsChecked())
	assert.True(t, s.Switch(KeyHapticFeedback).IsChecked())
	assert.True(t, s.Switch(KeyRotation).IsChecked())
	assert.Equal(t, NightFollowSystem, s.NightMode())
	assert.Empty(t, store.writes, "building the screen must not write preferences")
	assert.Nil(t, s.Switch("unknown"))
}

func TestScreenLoadsStoredValuesAtRest(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Store.SetBool(KeyTrueNorth, true))
	require.NoError(t, store.Store.SetBool(KeyHapticFeedback, false))
	require.NoError(t, store.Store.SetString(KeyNightMode, "yes"))

	s := NewScreen(store, Options{})
	defer s.Close()

	tn := s.Switch(KeyTrueNorth)
	assert.True(t, tn.IsChecked())
	assert.Equal(t, toggle.StateOn, tn.State(), "persisted value is applied without animation")
	assert.False(t, s.Switch(KeyHapticFeedback).IsChecked())
	assert.Equal(t, NightYes, s.NightMode())
	assert.Empty(t, store.writes)
}

func TestScreenUnknownNightModeFallsBack(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Store.SetString(KeyNightMode, "sometimes"))
	rec := &logRecorder{}

	s := NewScreen(store, Options{Logger: rec})
	defer s.Close()

	assert.Equal(t, NightFollowSystem, s.NightMode())
	require.NotEmpty(t, rec.lines)
	assert.Contains(t, rec.lines[0], `[WARN] unknown night mode "sometimes"`)
}

func TestScreenClickPersistsSwitch(t *testing.T) {
	store := newStore(t)
	s := NewScreen(store, Options{})
	defer s.Close()
	p := s.Panel()
	p.SetDeviceInput(false)

	click(p, s.Switch(KeyTrueNorth).Bounds())
	assert.True(t, s.Switch(KeyTrueNorth).IsChecked())
	assert.Equal(t, []string{"true_north=true"}, store.writes)
	assert.True(t, store.Bool(KeyTrueNorth, false))

	click(p, s.Switch(KeyHapticFeedback).Bounds())
	assert.False(t, store.Bool(KeyHapticFeedback, true))
	assert.Equal(t, []string{"true_north=true", "haptic_feedback=false"}, store.writes)
}

func TestScreenSetCheckedDoesNotPersist(t *testing.T) {
	store := newStore(t)
	s := NewScreen(store, Options{})
	defer s.Close()

	s.Switch(KeyRotation).SetChecked(false)
	assert.Empty(t, store.writes)
	assert.True(t, store.Bool(KeyRotation, true))
}

func TestScreenRapidTogglesPersistLastValue(t *testing.T) {
	store := newStore(t)
	s := NewScreen(store, Options{})
	defer s.Close()

	sw := s.Switch(KeyTrueNorth)
	sw.Toggle()
	sw.Toggle()
	sw.Toggle()
	assert.Len(t, store.writes, 3)
	assert.True(t, store.Bool(KeyTrueNorth, false))
}

func TestScreenWriteFailureKeepsUIState(t *testing.T) {
	p, err := prefs.Open("", nil)
	require.NoError(t, err)
	rec := &logRecorder{}
	s := NewScreen(brokenStore{Store: p}, Options{Logger: rec})
	defer s.Close()

	sw := s.Switch(KeyTrueNorth)
	sw.Toggle()
	assert.True(t, sw.IsChecked())

	s.Selector().Select(NightYes)
	assert.Equal(t, NightYes, s.NightMode())

	var warns []string
	for _, l := range rec.lines {
		if len(l) > 6 && l[:6] == "[WARN]" {
			warns = append(warns, l)
		}
	}
	require.Len(t, warns, 2)
	assert.Contains(t, warns[0], "failed to save true_north")
	assert.Contains(t, warns[1], "failed to save night_mode")
}

func TestScreenSelectorPersistsAndCallsAppearance(t *testing.T) {
	store := newStore(t)
	var applied []NightMode
	s := NewScreen(store, Options{Appearance: func(m NightMode) { applied = append(applied, m) }})
	defer s.Close()
	p := s.Panel()
	p.SetDeviceInput(false)

	b := s.Selector().Bounds()
	// third row: Dark
	p.InjectClick(b.X+20, b.Y+selectorRowHeight*2+selectorRowHeight/2)
	p.Update()
	p.Update()

	assert.Equal(t, NightYes, s.NightMode())
	assert.Equal(t, "yes", store.String(KeyNightMode, ""))
	assert.Equal(t, []NightMode{NightYes}, applied)

	// selecting the current option again changes nothing
	s.Selector().Select(NightYes)
	assert.Len(t, applied, 1)
	assert.Equal(t, []string{"night_mode=yes"}, store.writes)
}

func TestScreenSetTheme(t *testing.T) {
	s := NewScreen(newStore(t), Options{Version: "1.2.0"})
	defer s.Close()

	s.SetTheme(DarkTheme)
	assert.Equal(t, DarkTheme, s.Theme())
	assert.Equal(t, DarkTheme.Background, s.Panel().ClearColor)
	assert.True(t, s.Panel().NeedsRedraw())
	for _, l := range s.labels {
		assert.Equal(t, DarkTheme.Text, l.Color)
	}
	for _, n := range s.notes {
		assert.Equal(t, DarkTheme.Secondary, n.Color)
	}
}

func TestScreenLayout(t *testing.T) {
	s := NewScreen(newStore(t), Options{Width: 400})
	defer s.Close()

	w, h := s.Size()
	assert.Equal(t, 400, w)
	assert.Positive(t, h)

	var prevY float64
	for _, key := range []string{KeyTrueNorth, KeyHapticFeedback, KeyRotation} {
		b := s.Switch(key).Bounds()
		assert.InDelta(t, 400-margin, b.X+b.Width, 1e-9, "%s is right aligned", key)
		assert.Greater(t, b.Y, prevY, "%s is below the previous row", key)
		prevY = b.Y
		assert.LessOrEqual(t, b.Y+b.Height, float64(h))
	}
	sb := s.Selector().Bounds()
	assert.Greater(t, sb.Y, prevY)
	assert.LessOrEqual(t, sb.Y+sb.Height, float64(h))
}

func TestScreenCheckmarkStyle(t *testing.T) {
	s := NewScreen(newStore(t), Options{Style: toggle.CheckmarkStyle(), Density: 1})
	defer s.Close()
	assert.Equal(t, toggle.DecorationCheckmark, s.Switch(KeyTrueNorth).Style().Decoration)
}

func TestScreenSnapshot(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Store.SetBool(KeyTrueNorth, true))
	s := NewScreen(store, Options{})
	defer s.Close()

	img := s.Snapshot()
	w, h := s.Size()
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())

	// checked switch: black track left of its thumb
	b := s.Switch(KeyTrueNorth).Bounds()
	px := img.RGBAAt(int(b.X)+4, int(b.Y+b.Height/2))
	assert.Equal(t, uint8(0), px.R)
	assert.Equal(t, uint8(255), px.A)

	// background
	bg := img.RGBAAt(w-2, 2)
	assert.Equal(t, uint8(255), bg.R)

	s.SetTheme(DarkTheme)
	bg = s.Snapshot().RGBAAt(w-2, 2)
	assert.Equal(t, uint8(0x12), bg.R)
}

func TestScreenCloseDisposesSwitches(t *testing.T) {
	s := NewScreen(newStore(t), Options{Logger: lgr.NoOp})
	sw := s.Switch(KeyTrueNorth)
	s.Close()
	assert.True(t, sw.IsDisposed())
}
