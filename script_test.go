package twig

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// recorder is an InputTarget that logs every call.
type recorder struct {
	calls []string
}

func (r *recorder) SetViewport(s Size) {
	r.calls = append(r.calls, fmt.Sprintf("viewport %dx%d", s.Width, s.Height))
}

func (r *recorder) SetMousePosition(x, y int, ok bool) {
	r.calls = append(r.calls, fmt.Sprintf("move %d,%d %v", x, y, ok))
}

func (r *recorder) SetMousePressed(p bool) {
	r.calls = append(r.calls, fmt.Sprintf("pressed %v", p))
}

func TestLoadInputScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "viewport", "width": 640, "height": 480},
			{"action": "move", "x": 10, "y": 20},
			{"action": "press"},
			{"action": "release"},
			{"action": "click", "x": 5, "y": 6},
			{"action": "leave"}
		]
	}`)
	script, err := LoadInputScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Len() != 6 {
		t.Fatalf("Len = %d, want 6", script.Len())
	}

	var r recorder
	script.Run(&r)
	want := []string{
		"viewport 640x480",
		"move 10,20 true",
		"pressed true",
		"pressed false",
		"move 5,6 true",
		"pressed true",
		"pressed false",
		"move 0,0 false",
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v\nwant %v", r.calls, want)
	}
}

func TestLoadInputScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse input script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "drag"}]}`, `unknown action "drag"`},
		{"empty viewport", `{"steps": [{"action": "viewport", "width": 0, "height": 10}]}`, "is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInputScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestScriptDrivesUi(t *testing.T) {
	a := newLeaf("a", 0.1, 0.1)
	a.emit = true
	u := New[string](&relay{box: hbox(newLeaf("pad", 0.1, 0.1), a)}, testViewport)

	var got []string
	u.SetEventStore(EventFunc[string](func(ev string) { got = append(got, ev) }))

	script, err := LoadInputScript([]byte(`{"steps": [{"action": "click", "x": 460, "y": 285}]}`))
	if err != nil {
		t.Fatal(err)
	}
	before := u.Updates()
	script.Run(u)

	if u.Updates() != before+3 {
		t.Errorf("click took %d updates, want 3", u.Updates()-before)
	}
	// The leaf reports on every update the pointer is over it.
	if !reflect.DeepEqual(got, []string{"1:a", "1:a", "1:a"}) {
		t.Errorf("events = %v", got)
	}
}
