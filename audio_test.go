package drift

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSineWaveDurationAndBounds(t *testing.T) {
	d := 100 * time.Millisecond
	tone := newSineWave(440, d, chimeSampleRate)

	samples := drain(t, tone)
	want := chimeSampleRate.N(d)
	if len(samples) != want {
		t.Errorf("sample count = %d, want %d", len(samples), want)
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d = %v, outside [-1, 1]", i, s)
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono-duplicated: %v", i, s)
		}
	}
}

func TestSineWaveStartsAtZeroPhase(t *testing.T) {
	tone := newSineWave(440, 10*time.Millisecond, chimeSampleRate)
	buf := make([][2]float64, 1)
	tone.Stream(buf)
	assertNear(t, "first sample", buf[0][0], 0)
}

func TestEnvelopeRampsAttackAndRelease(t *testing.T) {
	d := 100 * time.Millisecond
	note := noteStreamer(440, d)

	samples := drain(t, note)
	if len(samples) == 0 {
		t.Fatal("expected samples")
	}

	// The first and last samples sit at the ends of the ramps.
	first := samples[0][0]
	last := samples[len(samples)-1][0]
	if first < -0.01 || first > 0.01 {
		t.Errorf("attack start = %f, want ~0", first)
	}
	if last < -0.05 || last > 0.05 {
		t.Errorf("release end = %f, want ~0", last)
	}
}

func TestChimeDisabledIsSilent(t *testing.T) {
	c := NewChime(false)
	// Must not initialize the speaker or panic in a headless environment.
	c.Ding()
	c.Arpeggio()
	if c.initialized {
		t.Error("disabled chime must not initialize audio")
	}
}

func TestSineWaveErrIsNil(t *testing.T) {
	tone := newSineWave(440, time.Millisecond, chimeSampleRate)
	if err := tone.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}
