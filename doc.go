// Package toggle is an animated on/off switch for [Ebitengine] settings
// screens.
//
// A [Switch] draws itself: a fully rounded track, a circular thumb with a soft
// shadow and, for the checkmark style, a checkmark that grows with the thumb.
// Its logical state changes instantly while the thumb follows with two
// animated progress values (position and radius) driven by [gween] tweens.
//
// # Quick start
//
//	panel := toggle.NewPanel()
//	sw := toggle.New(toggle.Config{Name: "haptics", Checked: true})
//	sw.SetOnChangeListener(func(on bool) { prefs.SetBool("haptic_feedback", on) })
//	panel.Add(sw, 24, 24)
//	toggle.Run(panel, toggle.RunConfig{Title: "Settings", Width: 320, Height: 240})
//
// For full control, implement [ebiten.Game] yourself and call [Panel.Update]
// and [Panel.Draw] directly.
//
// # State changes
//
// [Switch.Toggle] flips the state and notifies the listener exactly once.
// [Switch.SetChecked] applies a value without notifying, so a host can load
// persisted state without feedback loops. Both restart the animation from
// wherever the thumb currently is; setting the current value does nothing.
//
// # Input
//
// A [Panel] routes mouse and touch input. The widget that accepts a press
// captures that pointer until release; a switch toggles only when the release
// lands inside it. Tests drive input with [Panel.InjectClick] and friends or
// with a JSON script loaded by [LoadTestScript].
//
// # Headless rendering
//
// [RenderImage] rasterises a [Geometry] with gg, which needs no GPU, for
// snapshots and documentation images.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package toggle
