package drift

import (
	"encoding/json"
	"fmt"
)

// tourStep represents a single action in a tour script.
type tourStep struct {
	Action  string  `json:"action"`
	Y       float64 `json:"y,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Key     string  `json:"key,omitempty"`
	Message string  `json:"message,omitempty"`
}

// tourScript is the top-level JSON structure for a tour script.
type tourScript struct {
	Steps []tourStep `json:"steps"`
}

// TourTarget is the page surface a Tour drives, one action per step.
type TourTarget interface {
	// TourScroll starts a smooth scroll to the given content offset.
	TourScroll(y, seconds float64)
	// TourKey feeds a named key press (e.g. "Enter", "Escape").
	TourKey(name string)
	// TourToast shows a toast with the given message.
	TourToast(message string)
	// TourRain toggles the glyph rain overlay.
	TourRain(active bool)
}

// Tour sequences scripted page actions across frames for automated demos
// and visual testing. Call Step once per frame with the target page.
type Tour struct {
	steps     []tourStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTourScript parses a JSON tour script.
func LoadTourScript(jsonData []byte) (*Tour, error) {
	var script tourScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse tour script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse tour script: no steps")
	}
	return &Tour{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *Tour) Done() bool {
	return r.done
}

// Step advances the tour by one frame, executing at most one action.
func (r *Tour) Step(target TourTarget) {
	if r.done {
		return
	}
	// Count down wait frames.
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
	case "scroll":
		target.TourScroll(st.Y, st.Seconds)
	case "key":
		target.TourKey(st.Key)
	case "toast":
		target.TourToast(st.Message)
	case "rain":
		target.TourRain(st.Key != "off")
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
