package toggle

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`

	// drag endpoints
	FromX float64 `json:"fromX,omitempty"`
	FromY float64 `json:"fromY,omitempty"`
	ToX   float64 `json:"toX,omitempty"`
	ToY   float64 `json:"toY,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true, "drag": true,
	"cancel": true, "wait": true, "screenshot": true,
}

// TestRunner replays scripted pointer input and screenshots across frames.
// Attach it with Panel.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script such as
//
//	{"steps": [{"action": "click", "x": 40, "y": 20}, {"action": "wait", "frames": 20}]}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. Its step runs at the start of each Update.
func (p *Panel) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether every step has executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(p *Panel) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "cancel":
		p.InjectCancel()
	case "screenshot":
		p.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
