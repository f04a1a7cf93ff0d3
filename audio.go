package drift

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// sineWave generates a fixed-duration sine tone.
type sineWave struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// newSineWave creates a sine streamer at freq Hz lasting d.
func newSineWave(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sineWave{freq: freq, duration: rate.N(d), rate: rate}
}

func (o *sineWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sineWave) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps so notes
// start and end without clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// newEnvelope wraps s with attack/release ramps over a total duration.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		switch {
		case e.position < e.attack:
			gain = float64(e.position) / float64(e.attack)
		case e.position > e.total-e.release:
			remaining := e.total - e.position
			if remaining < 0 {
				remaining = 0
			}
			gain = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Chime plays short synthesized notification sounds. The speaker is
// initialized lazily on the first play; initialization failure silences the
// chime permanently, since audio here is purely decorative.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	disabled    bool
}

// NewChime creates a Chime. When enabled is false every play is a no-op.
func NewChime(enabled bool) *Chime {
	return &Chime{
		mixer:    &beep.Mixer{},
		disabled: !enabled,
	}
}

// Ding plays a single short high note, used for the toast.
func (c *Chime) Ding() {
	c.play(880)
}

// Arpeggio plays a rising four-note figure, used for the easter egg.
func (c *Chime) Arpeggio() {
	c.play(523.25, 659.25, 783.99, 1046.50)
}

// play queues the given note frequencies in sequence on the mixer.
func (c *Chime) play(freqs ...float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disabled {
		return
	}
	if !c.initialized {
		if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(50*time.Millisecond)); err != nil {
			c.disabled = true
			return
		}
		speaker.Play(c.mixer)
		c.initialized = true
	}

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = noteStreamer(f, 110*time.Millisecond)
	}
	seq := beep.Seq(notes...)

	speaker.Lock()
	c.mixer.Add(&effects.Volume{Streamer: seq, Base: 2, Volume: -1.5})
	speaker.Unlock()
}

// noteStreamer builds one enveloped sine note.
func noteStreamer(freq float64, d time.Duration) beep.Streamer {
	tone := newSineWave(freq, d, chimeSampleRate)
	return newEnvelope(tone, d, 8*time.Millisecond, 30*time.Millisecond, chimeSampleRate)
}
