package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"orbit-defense/internal/event"
)

type recorder struct{ played [][]byte }

func (r *recorder) Play(pcm []byte) { r.played = append(r.played, pcm) }

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestRenderLength(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	pcm := Render(Effects[event.Shoot].Streamer(rate))
	// 100 ms of stereo 16-bit frames.
	if want := rate.N(100*time.Millisecond) * 4; len(pcm) != want {
		t.Errorf("len(pcm) = %d, want %d", len(pcm), want)
	}
}

func TestToneRamps(t *testing.T) {
	exp := Tone{FreqStart: 400, FreqEnd: 100}
	if got := exp.ramp(400, 100, 0.5); got != 200 {
		t.Errorf("exponential midpoint = %v, want 200", got)
	}
	lin := Tone{Ramp: RampLinear}
	if got := lin.ramp(300, 50, 0.5); got != 175 {
		t.Errorf("linear midpoint = %v, want 175", got)
	}
	if got := exp.ramp(0.2, 0, 0.5); got != 0.1 {
		t.Errorf("ramp to zero = %v, want 0.1", got)
	}
}

func TestOscillatorRange(t *testing.T) {
	for _, w := range []Waveform{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		for p := 0.0; p < 1; p += 0.01 {
			if v := oscillate(w, p); v < -1 || v > 1 {
				t.Fatalf("wave %d at phase %v = %v", w, p, v)
			}
		}
	}
}

func TestEnginePlaysOnEvents(t *testing.T) {
	out := &recorder{}
	e := NewEngine(out, nil, 1)
	d := event.NewDispatcher()
	e.Attach(d)

	d.Publish(event.Shoot, nil)
	d.Publish(event.WaveStarted, 1)
	d.Publish(event.GameOver, 0)
	if len(out.played) != 2 {
		t.Fatalf("played %d sounds, want 2", len(out.played))
	}

	e.Detach(d)
	d.Publish(event.Hit, nil)
	if len(out.played) != 2 {
		t.Errorf("detached engine still plays")
	}
}

func TestMusicCadence(t *testing.T) {
	out := &recorder{}
	clock := &stepClock{now: time.Unix(10, 0)}
	e := NewEngine(out, clock, 1)

	e.Update(true)
	e.Update(true)
	if len(out.played) != 1 {
		t.Fatalf("notes = %d, want 1", len(out.played))
	}
	clock.now = clock.now.Add(600 * time.Millisecond)
	e.Update(true)
	clock.now = clock.now.Add(600 * time.Millisecond)
	e.Update(false)
	if len(out.played) != 2 {
		t.Errorf("notes = %d, want 2 (inactive sessions are silent)", len(out.played))
	}
}
