package drift

import "testing"

// recordingTarget captures tour actions for assertions.
type recordingTarget struct {
	scrolls []float64
	keys    []string
	toasts  []string
	rains   []bool
}

func (r *recordingTarget) TourScroll(y, seconds float64) { r.scrolls = append(r.scrolls, y) }
func (r *recordingTarget) TourKey(name string)           { r.keys = append(r.keys, name) }
func (r *recordingTarget) TourToast(message string)      { r.toasts = append(r.toasts, message) }
func (r *recordingTarget) TourRain(active bool)          { r.rains = append(r.rains, active) }

func TestLoadTourScriptErrors(t *testing.T) {
	if _, err := LoadTourScript([]byte("not json")); err == nil {
		t.Error("malformed JSON should error")
	}
	if _, err := LoadTourScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script should error")
	}
}

func TestTourExecutesStepsInOrder(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "scroll", "y": 1200, "seconds": 0.5},
		{"action": "wait", "frames": 3},
		{"action": "key", "key": "Enter"},
		{"action": "toast", "message": "hello"},
		{"action": "rain", "key": "on"},
		{"action": "rain", "key": "off"}
	]}`)
	tour, err := LoadTourScript(script)
	if err != nil {
		t.Fatalf("LoadTourScript() error: %v", err)
	}

	target := &recordingTarget{}
	frames := 0
	for !tour.Done() {
		tour.Step(target)
		frames++
		if frames > 100 {
			t.Fatal("tour did not finish")
		}
	}

	if len(target.scrolls) != 1 || target.scrolls[0] != 1200 {
		t.Errorf("scrolls = %v, want [1200]", target.scrolls)
	}
	if len(target.keys) != 1 || target.keys[0] != "Enter" {
		t.Errorf("keys = %v, want [Enter]", target.keys)
	}
	if len(target.toasts) != 1 || target.toasts[0] != "hello" {
		t.Errorf("toasts = %v, want [hello]", target.toasts)
	}
	if len(target.rains) != 2 || !target.rains[0] || target.rains[1] {
		t.Errorf("rains = %v, want [true false]", target.rains)
	}
}

func TestTourWaitConsumesFrames(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "wait", "frames": 5},
		{"action": "key", "key": "F"}
	]}`)
	tour, err := LoadTourScript(script)
	if err != nil {
		t.Fatal(err)
	}

	target := &recordingTarget{}
	// The wait consumes 5 frames, the key fires on the 6th.
	for i := 0; i < 5; i++ {
		tour.Step(target)
		if len(target.keys) != 0 {
			t.Fatalf("key fired during wait at frame %d", i)
		}
	}
	tour.Step(target)
	if len(target.keys) != 1 {
		t.Error("key should fire after the wait")
	}
}

func TestTourDoneStopsExecuting(t *testing.T) {
	tour, err := LoadTourScript([]byte(`{"steps": [{"action": "key", "key": "A"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	target := &recordingTarget{}
	for i := 0; i < 10; i++ {
		tour.Step(target)
	}
	if !tour.Done() {
		t.Error("tour should be done")
	}
	if len(target.keys) != 1 {
		t.Errorf("keys = %v, want a single press", target.keys)
	}
}
