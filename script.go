package twig

import (
	"encoding/json"
	"fmt"
)

// InputTarget is what scripted input drives. *Ui implements it.
type InputTarget interface {
	SetViewport(size Size)
	SetMousePosition(x, y int, ok bool)
	SetMousePressed(pressed bool)
}

// scriptStep is a single action of an input script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// inputScript is the top-level JSON structure of a script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// InputScript is a parsed sequence of pointer and viewport actions, in pixel
// coordinates, used to drive a Ui without a window. Supported actions:
//
//	{"action": "move", "x": 10, "y": 20}
//	{"action": "leave"}
//	{"action": "press"}
//	{"action": "release"}
//	{"action": "click", "x": 10, "y": 20}   // move, press, release
//	{"action": "viewport", "width": 800, "height": 600}
type InputScript struct {
	steps []scriptStep
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "leave", "press", "release", "click":
		case "viewport":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse input script: step %d: viewport %dx%d is empty", i, st.Width, st.Height)
			}
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// Len returns the number of steps.
func (s *InputScript) Len() int {
	return len(s.steps)
}

// Run applies every step to t in order.
func (s *InputScript) Run(t InputTarget) {
	for _, st := range s.steps {
		switch st.Action {
		case "move":
			t.SetMousePosition(st.X, st.Y, true)
		case "leave":
			t.SetMousePosition(0, 0, false)
		case "press":
			t.SetMousePressed(true)
		case "release":
			t.SetMousePressed(false)
		case "click":
			Click(t, st.X, st.Y)
		case "viewport":
			t.SetViewport(Size{st.Width, st.Height})
		}
	}
}

// Click moves the pointer to (x, y) in pixels, then presses and releases the
// button there. Consumes three updates.
func Click(t InputTarget, x, y int) {
	t.SetMousePosition(x, y, true)
	t.SetMousePressed(true)
	t.SetMousePressed(false)
}
