package hyperspace

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scenarioScript is the top-level JSON structure for a scenario script.
type scenarioScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptTarget is what a scenario script drives: a host that can be hidden,
// resized and captured.
type ScriptTarget interface {
	SetHidden(hidden bool)
	Resize(width, height float64)
	Screenshot(label string)
}

// ScriptRunner sequences host events and screenshots across frames for
// automated visual checks of the reveal and pause behavior.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scenario script. Supported actions are
// "wait" (frames), "hide", "show", "resize" (width, height) and
// "screenshot" (label).
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scenario script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "wait", "hide", "show", "screenshot":
		case "resize":
			if !(st.Width > 0) || !(st.Height > 0) {
				return nil, fmt.Errorf("parse scenario script: step %d: resize needs positive width and height", i)
			}
		default:
			return nil, fmt.Errorf("parse scenario script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, applying at most one action to t.
func (r *ScriptRunner) Step(t ScriptTarget) {
	if r.done {
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
	case "screenshot":
		t.Screenshot(st.Label)
	case "hide":
		t.SetHidden(true)
	case "show":
		t.SetHidden(false)
	case "resize":
		t.Resize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
